package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

type UserRepository interface {
	// Create 生成新用户并返回其 ID
	Create(ctx context.Context) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context) (string, error) {
	u := &model.User{ID: uuid.New().String()}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return "", err
	}
	return u.ID, nil
}
