package service

import (
	"context"

	"github.com/d60-Lab/mood-community/internal/cache"
	"github.com/d60-Lab/mood-community/internal/repository"
)

type LikeService interface {
	// Toggle 点赞/取消点赞二合一，返回切换后的状态
	Toggle(ctx context.Context, moodID, userID string) (bool, error)
	Status(ctx context.Context, moodID, userID string) (bool, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	cache    *cache.FeedCache
}

func NewLikeService(likeRepo repository.LikeRepository, feedCache *cache.FeedCache) LikeService {
	return &likeService{likeRepo: likeRepo, cache: feedCache}
}

// Toggle 先查后写，两步之间不可串行化；同一 (mood, user) 的并发重复
// 点赞最终撞上唯一键，丢失的那次以插入错误收场而不是落成两行
func (s *likeService) Toggle(ctx context.Context, moodID, userID string) (bool, error) {
	exists, err := s.likeRepo.Exists(ctx, moodID, userID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.likeRepo.Delete(ctx, moodID, userID); err != nil {
			return false, err
		}
		s.invalidate(ctx)
		return false, nil
	}
	if err := s.likeRepo.Create(ctx, moodID, userID); err != nil {
		return false, err
	}
	s.invalidate(ctx)
	return true, nil
}

func (s *likeService) Status(ctx context.Context, moodID, userID string) (bool, error) {
	return s.likeRepo.Exists(ctx, moodID, userID)
}

func (s *likeService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
