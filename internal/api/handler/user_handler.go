package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/pkg/logger"
	"github.com/d60-Lab/mood-community/pkg/response"
)

// CreateUser 创建匿名用户
// @Summary 创建用户（服务端生成标识，无凭证）
// @Tags 用户
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} response.Error
// @Router /api/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	userID, err := h.userSvc.Register(c.Request.Context())
	if err != nil {
		logger.Error("创建用户失败", zap.Error(err))
		response.InternalError(c, "创建用户失败")
		return
	}
	response.Success(c, gin.H{"userId": userID, "message": "用户创建成功"})
}
