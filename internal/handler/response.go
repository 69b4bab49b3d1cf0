package handler

import (
	"errors"
	"net/http"

	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Response 统一响应格式
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LedgerErrorResponse 按账本错误类别映射HTTP状态码
func LedgerErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrUnauthorized), errors.Is(err, ledger.ErrNotAContributor):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrInvalidState):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrTransferFailed):
		ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
