package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

type LikeRepository interface {
	Exists(ctx context.Context, moodID, userID string) (bool, error)
	// Create 普通插入，不做 ON CONFLICT 吞并：并发重复点赞由
	// ux_like_mood_user 唯一键直接报错兜底
	Create(ctx context.Context, moodID, userID string) error
	Delete(ctx context.Context, moodID, userID string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Exists(ctx context.Context, moodID, userID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("mood_id = ? AND user_id = ?", moodID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, moodID, userID string) error {
	l := &model.Like{ID: uuid.New().String(), MoodID: moodID, UserID: userID}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *likeRepository) Delete(ctx context.Context, moodID, userID string) error {
	return r.db.WithContext(ctx).
		Where("mood_id = ? AND user_id = ?", moodID, userID).
		Delete(&model.Like{}).Error
}
