package handler

import (
	"github.com/d60-Lab/mood-community/internal/service"
)

// Handler 持有全部业务服务，按资源拆分在各文件中实现
type Handler struct {
	userSvc    service.UserService
	moodSvc    service.MoodService
	likeSvc    service.LikeService
	commentSvc service.CommentService
	statsSvc   service.StatsService
}

func New(
	userSvc service.UserService,
	moodSvc service.MoodService,
	likeSvc service.LikeService,
	commentSvc service.CommentService,
	statsSvc service.StatsService,
) *Handler {
	return &Handler{
		userSvc:    userSvc,
		moodSvc:    moodSvc,
		likeSvc:    likeSvc,
		commentSvc: commentSvc,
		statsSvc:   statsSvc,
	}
}
