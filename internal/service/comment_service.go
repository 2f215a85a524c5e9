package service

import (
	"context"

	"github.com/d60-Lab/mood-community/internal/cache"
	"github.com/d60-Lab/mood-community/internal/model"
	"github.com/d60-Lab/mood-community/internal/repository"
)

type CommentService interface {
	// Add 不校验 mood 是否存在，沿用旧版行为
	Add(ctx context.Context, moodID, userID, content string) (string, error)
	ListByMood(ctx context.Context, moodID string) ([]*model.CommentItem, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	cache       *cache.FeedCache
}

func NewCommentService(commentRepo repository.CommentRepository, feedCache *cache.FeedCache) CommentService {
	return &commentService{commentRepo: commentRepo, cache: feedCache}
}

func (s *commentService) Add(ctx context.Context, moodID, userID, content string) (string, error) {
	id, err := s.commentRepo.Create(ctx, moodID, userID, content)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return id, nil
}

func (s *commentService) ListByMood(ctx context.Context, moodID string) ([]*model.CommentItem, error) {
	return s.commentRepo.ListByMood(ctx, moodID)
}
