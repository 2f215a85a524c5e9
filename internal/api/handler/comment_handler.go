package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/pkg/logger"
	"github.com/d60-Lab/mood-community/pkg/response"
)

type commentRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddComment 添加评论
// @Summary 给某条心情添加评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param moodId path string true "心情ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/moods/{moodId}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必要参数")
		return
	}
	commentID, err := h.commentSvc.Add(c.Request.Context(), c.Param("moodId"), req.UserID, req.Content)
	if err != nil {
		logger.Error("添加评论失败", zap.Error(err))
		response.InternalError(c, "添加评论失败")
		return
	}
	response.Success(c, gin.H{"commentId": commentID, "message": "评论添加成功"})
}

// ListComments 获取评论列表
// @Summary 某条心情的全部评论（时间正序）
// @Tags 评论
// @Produce json
// @Param moodId path string true "心情ID"
// @Success 200 {array} model.CommentItem
// @Failure 500 {object} response.Error
// @Router /api/moods/{moodId}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	rows, err := h.commentSvc.ListByMood(c.Request.Context(), c.Param("moodId"))
	if err != nil {
		logger.Error("获取评论失败", zap.Error(err))
		response.InternalError(c, "获取评论失败")
		return
	}
	response.Success(c, rows)
}
