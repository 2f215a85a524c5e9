package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/internal/service"
	"github.com/d60-Lab/mood-community/pkg/logger"
	"github.com/d60-Lab/mood-community/pkg/response"
)

type moodRequest struct {
	UserID string `json:"userId" binding:"required"`
	// score 必填但不限范围，指针区分 0 与缺失
	Score    *int   `json:"score" binding:"required"`
	Text     string `json:"text" binding:"required"`
	IsPublic *bool  `json:"isPublic"`
}

type privacyRequest struct {
	UserID   string `json:"userId" binding:"required"`
	IsPublic *bool  `json:"isPublic" binding:"required"`
}

// CreateMood 提交心情记录
// @Summary 提交心情（分数 + 文本，isPublic 缺省为公开）
// @Tags 心情
// @Accept json
// @Produce json
// @Param request body moodRequest true "心情内容"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/moods [post]
func (h *Handler) CreateMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必要参数")
		return
	}
	moodID, err := h.moodSvc.Submit(c.Request.Context(), req.UserID, *req.Score, req.Text, req.IsPublic)
	if err != nil {
		logger.Error("保存心情记录失败", zap.Error(err))
		response.InternalError(c, "保存心情记录失败")
		return
	}
	response.Success(c, gin.H{"moodId": moodID, "message": "心情记录保存成功"})
}

// PublicFeed 获取公开心情流
// @Summary 公开心情流（分页，时间倒序，带点赞/评论计数）
// @Tags 心情
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {array} model.PublicMood
// @Failure 500 {object} response.Error
// @Router /api/moods/public [get]
func (h *Handler) PublicFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.moodSvc.PublicFeed(c.Request.Context(), page, limit)
	if err != nil {
		logger.Error("获取心情记录失败", zap.Error(err))
		response.InternalError(c, "获取心情记录失败")
		return
	}
	response.Success(c, rows)
}

// UserFeed 获取某用户的全部心情
// @Summary 用户心情流（含私密，不分页）
// @Tags 心情
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {array} model.UserMood
// @Failure 500 {object} response.Error
// @Router /api/moods/user/{userId} [get]
func (h *Handler) UserFeed(c *gin.Context) {
	rows, err := h.moodSvc.UserFeed(c.Request.Context(), c.Param("userId"))
	if err != nil {
		logger.Error("获取用户心情记录失败", zap.Error(err))
		response.InternalError(c, "获取用户心情记录失败")
		return
	}
	response.Success(c, rows)
}

// UpdatePrivacy 更新可见性
// @Summary 更新心情可见性（仅所有者）
// @Tags 心情
// @Accept json
// @Produce json
// @Param moodId path string true "心情ID"
// @Param request body privacyRequest true "新的可见性"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/moods/{moodId}/privacy [put]
func (h *Handler) UpdatePrivacy(c *gin.Context) {
	var req privacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必要参数")
		return
	}
	err := h.moodSvc.UpdatePrivacy(c.Request.Context(), c.Param("moodId"), req.UserID, *req.IsPublic)
	switch {
	case errors.Is(err, service.ErrMoodNotFound):
		response.NotFound(c, "记录不存在")
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, "无权限修改该记录")
	case err != nil:
		logger.Error("更新隐私设置失败", zap.Error(err))
		response.InternalError(c, "更新隐私设置失败")
	default:
		response.Success(c, gin.H{"message": "隐私设置更新成功"})
	}
}
