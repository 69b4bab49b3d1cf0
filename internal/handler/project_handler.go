package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MCalenda/FundMeNow/internal/ledger"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	ledger *ledger.Ledger
}

func NewProjectHandler(l *ledger.Ledger) *ProjectHandler {
	return &ProjectHandler{ledger: l}
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	EndDate     int64  `json:"end_date"` // unix秒
	Target      int64  `json:"target" binding:"min=0"`
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.ledger.CreateProject(req.Name, req.Description, time.Unix(req.EndDate, 0), req.Target, caller)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "project created", gin.H{"id": id})
}

// GetProjects 按创建顺序获取所有项目
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.ledger.GetAllProjects()
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := h.ledger.GetProject(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"project": project})
}

// GetProjectCount 当前已分配的最大项目ID
func (h *ProjectHandler) GetProjectCount(c *gin.Context) {
	count, err := h.ledger.ProjectCount()
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// GetProjectStats 获取项目统计信息
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	stats, err := h.ledger.GetProjectStats(id)
	if err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}
