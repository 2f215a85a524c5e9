package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/pkg/logger"
	"github.com/d60-Lab/mood-community/pkg/response"
)

type likeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ToggleLike 点赞/取消点赞
// @Summary 点赞开关（已赞则取消，未赞则点上）
// @Tags 点赞
// @Accept json
// @Produce json
// @Param moodId path string true "心情ID"
// @Param request body likeRequest true "点赞用户"
// @Success 200 {object} map[string]any
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/moods/{moodId}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少用户ID")
		return
	}
	liked, err := h.likeSvc.Toggle(c.Request.Context(), c.Param("moodId"), req.UserID)
	if err != nil {
		logger.Error("切换点赞失败", zap.Error(err))
		response.InternalError(c, "点赞失败")
		return
	}
	msg := "取消点赞成功"
	if liked {
		msg = "点赞成功"
	}
	response.Success(c, gin.H{"liked": liked, "message": msg})
}

// LikeStatus 查询点赞状态
// @Summary 某用户对某条心情的点赞状态
// @Tags 点赞
// @Produce json
// @Param moodId path string true "心情ID"
// @Param userId path string true "用户ID"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} response.Error
// @Router /api/moods/{moodId}/like-status/{userId} [get]
func (h *Handler) LikeStatus(c *gin.Context) {
	liked, err := h.likeSvc.Status(c.Request.Context(), c.Param("moodId"), c.Param("userId"))
	if err != nil {
		logger.Error("检查点赞状态失败", zap.Error(err))
		response.InternalError(c, "检查点赞状态失败")
		return
	}
	response.Success(c, gin.H{"liked": liked})
}
