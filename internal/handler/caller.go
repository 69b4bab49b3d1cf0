package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// CallerHeader 身份网关注入的调用方地址头
const CallerHeader = "X-Caller-Address"

// callerAddress 获取已认证的调用方地址。身份认证由上游网关完成，
// 这里只校验地址格式。
func callerAddress(c *gin.Context) (string, bool) {
	caller := c.GetHeader(CallerHeader)
	if caller == "" {
		ErrorResponse(c, http.StatusUnauthorized, "missing caller address")
		return "", false
	}
	if !common.IsHexAddress(caller) {
		ErrorResponse(c, http.StatusUnauthorized, "invalid caller address")
		return "", false
	}
	return common.HexToAddress(caller).Hex(), true
}
