package service

import (
	"context"

	"github.com/d60-Lab/mood-community/internal/repository"
)

// UserService 匿名用户注册：无输入，产出一个新标识
type UserService interface {
	Register(ctx context.Context) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context) (string, error) {
	return s.userRepo.Create(ctx)
}
