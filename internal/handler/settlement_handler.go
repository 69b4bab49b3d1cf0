package handler

import (
	"net/http"
	"strconv"

	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	ledger *ledger.Ledger
}

func NewSettlementHandler(l *ledger.Ledger) *SettlementHandler {
	return &SettlementHandler{ledger: l}
}

// CloseProject 关闭项目
func (h *SettlementHandler) CloseProject(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.ledger.CloseProject(id, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "project closed", nil)
}

// WithdrawRequest 提取请求
type WithdrawRequest struct {
	// StillFund为true时退款转赠给项目创建者
	StillFund bool `json:"still_fund"`
}

// Withdraw 提取贡献
func (h *SettlementHandler) Withdraw(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ledger.Withdraw(id, req.StillFund, caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "withdraw completed", nil)
}
