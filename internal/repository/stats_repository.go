package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

// StatsRepository 六个独立的标量统计查询
type StatsRepository interface {
	CountMoods(ctx context.Context) (int64, error)
	CountPublicMoods(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	// AvgPublicScore 公开心情的平均分，无公开心情时返回 nil
	AvgPublicScore(ctx context.Context) (*float64, error)
	CountLikes(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository { return &statsRepository{db: db} }

func (r *statsRepository) CountMoods(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Mood{}).Count(&cnt).Error
	return cnt, err
}

func (r *statsRepository) CountPublicMoods(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Mood{}).Where("is_public = ?", true).Count(&cnt).Error
	return cnt, err
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&cnt).Error
	return cnt, err
}

func (r *statsRepository) AvgPublicScore(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&model.Mood{}).
		Select("AVG(score)").
		Where("is_public = ?", true).
		Scan(&avg).Error
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (r *statsRepository) CountLikes(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Count(&cnt).Error
	return cnt, err
}

func (r *statsRepository) CountComments(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Count(&cnt).Error
	return cnt, err
}
