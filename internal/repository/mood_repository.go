package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

type MoodRepository interface {
	Create(ctx context.Context, userID string, score int, text string, isPublic bool) (string, error)
	// PublicFeed 公开动态流，按创建时间倒序，带点赞/评论计数
	PublicFeed(ctx context.Context, offset, limit int) ([]*model.PublicMood, error)
	// UserFeed 某用户的全部动态（含私密），不分页
	UserFeed(ctx context.Context, userID string) ([]*model.UserMood, error)
	// UpdatePrivacy 仅当 (id, user_id) 同时命中才更新，返回命中行数
	UpdatePrivacy(ctx context.Context, moodID, userID string, isPublic bool) (int64, error)
	Exists(ctx context.Context, moodID string) (bool, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository { return &moodRepository{db: db} }

func (r *moodRepository) Create(ctx context.Context, userID string, score int, text string, isPublic bool) (string, error) {
	m := &model.Mood{
		ID:       uuid.New().String(),
		UserID:   userID,
		Score:    score,
		Text:     text,
		IsPublic: isPublic,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return "", err
	}
	return m.ID, nil
}

// COUNT(DISTINCT ...) 是必须的：likes 和 comments 双重 LEFT JOIN 会把行数相乘
const publicFeedSQL = `
SELECT
    m.id,
    m.score,
    m.text,
    m.created_at,
    COUNT(DISTINCT l.id) AS like_count,
    COUNT(DISTINCT c.id) AS comment_count
FROM moods m
LEFT JOIN likes l ON l.mood_id = m.id
LEFT JOIN comments c ON c.mood_id = m.id
WHERE m.is_public = ?
GROUP BY m.id
ORDER BY m.created_at DESC
LIMIT ? OFFSET ?`

func (r *moodRepository) PublicFeed(ctx context.Context, offset, limit int) ([]*model.PublicMood, error) {
	rows := make([]*model.PublicMood, 0)
	err := r.db.WithContext(ctx).Raw(publicFeedSQL, true, limit, offset).Scan(&rows).Error
	return rows, err
}

const userFeedSQL = `
SELECT
    m.id,
    m.score,
    m.text,
    m.is_public,
    m.created_at,
    COUNT(DISTINCT l.id) AS like_count,
    COUNT(DISTINCT c.id) AS comment_count
FROM moods m
LEFT JOIN likes l ON l.mood_id = m.id
LEFT JOIN comments c ON c.mood_id = m.id
WHERE m.user_id = ?
GROUP BY m.id
ORDER BY m.created_at DESC`

func (r *moodRepository) UserFeed(ctx context.Context, userID string) ([]*model.UserMood, error) {
	rows := make([]*model.UserMood, 0)
	err := r.db.WithContext(ctx).Raw(userFeedSQL, userID).Scan(&rows).Error
	return rows, err
}

func (r *moodRepository) UpdatePrivacy(ctx context.Context, moodID, userID string, isPublic bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Mood{}).
		Where("id = ? AND user_id = ?", moodID, userID).
		Update("is_public", isPublic)
	return res.RowsAffected, res.Error
}

func (r *moodRepository) Exists(ctx context.Context, moodID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Mood{}).
		Where("id = ?", moodID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
