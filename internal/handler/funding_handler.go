package handler

import (
	"net/http"
	"strconv"

	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/gin-gonic/gin"
)

type FundingHandler struct {
	ledger *ledger.Ledger
}

func NewFundingHandler(l *ledger.Ledger) *FundingHandler {
	return &FundingHandler{ledger: l}
}

// FundProjectRequest 注资请求
type FundProjectRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// FundProject 向项目注资
func (h *FundingHandler) FundProject(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req FundProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ledger.FundProject(id, req.Amount, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "project funded", nil)
}

// GetContribution 查询调用者在某项目的未提取贡献
func (h *FundingHandler) GetContribution(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	amount, err := h.ledger.GetContribution(id, caller)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"amount": amount})
}
