package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, moodID, userID, content string) (string, error)
	// ListByMood 按创建时间正序（最早的在前），与动态流的倒序相反
	ListByMood(ctx context.Context, moodID string) ([]*model.CommentItem, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, moodID, userID, content string) (string, error) {
	c := &model.Comment{
		ID:      uuid.New().String(),
		MoodID:  moodID,
		UserID:  userID,
		Content: content,
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *commentRepository) ListByMood(ctx context.Context, moodID string) ([]*model.CommentItem, error) {
	rows := make([]*model.CommentItem, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id", "content", "created_at").
		Where("mood_id = ?", moodID).
		Order("created_at ASC").
		Scan(&rows).Error
	return rows, err
}
