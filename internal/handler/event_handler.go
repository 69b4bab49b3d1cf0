package handler

import (
	"net/http"
	"strconv"

	"github.com/MCalenda/FundMeNow/internal/event"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	outbox *event.Outbox
}

func NewEventHandler(outbox *event.Outbox) *EventHandler {
	return &EventHandler{outbox: outbox}
}

// AckEventsRequest 事件确认请求
type AckEventsRequest struct {
	Ids []int64 `json:"ids" binding:"required,min=1"`
}

// GetEvents 拉取未投递事件
func (h *EventHandler) GetEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "invalid limit")
		return
	}

	events, err := h.outbox.Pull(limit)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "", events)
}

// AckEvents 确认事件已投递，确认过的事件到保留期后由清理任务回收
func (h *EventHandler) AckEvents(c *gin.Context) {
	var req AckEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	acked, err := h.outbox.Ack(req.Ids)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "events acknowledged", gin.H{"acked": acked})
}
