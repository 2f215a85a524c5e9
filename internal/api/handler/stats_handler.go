package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/mood-community/pkg/response"
)

// GetStats 获取全站统计
// @Summary 全站统计（六路并发标量查询汇合）
// @Tags 统计
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	response.Success(c, h.statsSvc.Overview(c.Request.Context()))
}
