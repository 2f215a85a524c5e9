package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/mood-community/internal/cache"
	"github.com/d60-Lab/mood-community/internal/model"
	"github.com/d60-Lab/mood-community/internal/repository"
)

var (
	ErrMoodNotFound = errors.New("mood not found")
	ErrNotOwner     = errors.New("mood not owned by user")
)

const defaultFeedLimit = 20

type MoodService interface {
	// Submit 新建心情；isPublic 为 nil 时按 schema 默认值取公开
	Submit(ctx context.Context, userID string, score int, text string, isPublic *bool) (string, error)
	PublicFeed(ctx context.Context, page, limit int) ([]*model.PublicMood, error)
	UserFeed(ctx context.Context, userID string) ([]*model.UserMood, error)
	// UpdatePrivacy 仅限所有者；区分 ErrMoodNotFound / ErrNotOwner
	UpdatePrivacy(ctx context.Context, moodID, userID string, isPublic bool) error
}

type moodService struct {
	moodRepo repository.MoodRepository
	cache    *cache.FeedCache // 可为 nil（未启用 redis）
}

func NewMoodService(moodRepo repository.MoodRepository, feedCache *cache.FeedCache) MoodService {
	return &moodService{moodRepo: moodRepo, cache: feedCache}
}

func (s *moodService) Submit(ctx context.Context, userID string, score int, text string, isPublic *bool) (string, error) {
	pub := true
	if isPublic != nil {
		pub = *isPublic
	}
	id, err := s.moodRepo.Create(ctx, userID, score, text, pub)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return id, nil
}

func (s *moodService) PublicFeed(ctx context.Context, page, limit int) ([]*model.PublicMood, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if s.cache != nil {
		if rows, ok := s.cache.GetPublicFeed(ctx, page, limit); ok {
			return rows, nil
		}
	}
	rows, err := s.moodRepo.PublicFeed(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetPublicFeed(ctx, page, limit, rows)
	}
	return rows, nil
}

func (s *moodService) UserFeed(ctx context.Context, userID string) ([]*model.UserMood, error) {
	return s.moodRepo.UserFeed(ctx, userID)
}

func (s *moodService) UpdatePrivacy(ctx context.Context, moodID, userID string, isPublic bool) error {
	rows, err := s.moodRepo.UpdatePrivacy(ctx, moodID, userID, isPublic)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 谓词更新没命中：区分“不存在”与“不是你的”
		exists, err := s.moodRepo.Exists(ctx, moodID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMoodNotFound
		}
		return ErrNotOwner
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}
