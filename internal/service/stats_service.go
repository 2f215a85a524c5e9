package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/internal/cache"
	"github.com/d60-Lab/mood-community/internal/repository"
	"github.com/d60-Lab/mood-community/pkg/logger"
)

// StatsService 六路标量统计的扇出/汇合
type StatsService interface {
	// Overview 永远返回一个对象：失败的子查询记日志后从结果中省略，
	// 不影响其余键，也不向调用方报错
	Overview(ctx context.Context) map[string]any
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     *cache.FeedCache
}

func NewStatsService(statsRepo repository.StatsRepository, feedCache *cache.FeedCache) StatsService {
	return &statsService{statsRepo: statsRepo, cache: feedCache}
}

func (s *statsService) Overview(ctx context.Context) map[string]any {
	if s.cache != nil {
		if stats, ok := s.cache.GetStats(ctx); ok {
			return stats
		}
	}

	type query struct {
		key string
		run func(context.Context) (any, error)
	}
	queries := []query{
		{"totalMoods", func(ctx context.Context) (any, error) { return s.statsRepo.CountMoods(ctx) }},
		{"publicMoods", func(ctx context.Context) (any, error) { return s.statsRepo.CountPublicMoods(ctx) }},
		{"totalUsers", func(ctx context.Context) (any, error) { return s.statsRepo.CountUsers(ctx) }},
		{"avgScore", func(ctx context.Context) (any, error) { return s.statsRepo.AvgPublicScore(ctx) }},
		{"totalLikes", func(ctx context.Context) (any, error) { return s.statsRepo.CountLikes(ctx) }},
		{"totalComments", func(ctx context.Context) (any, error) { return s.statsRepo.CountComments(ctx) }},
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	stats := make(map[string]any, len(queries))
	for _, q := range queries {
		wg.Add(1)
		go func(q query) {
			defer wg.Done()
			val, err := q.run(ctx)
			if err != nil {
				logger.Warn("统计子查询失败", zap.String("key", q.key), zap.Error(err))
				return
			}
			mu.Lock()
			stats[q.key] = val
			mu.Unlock()
		}(q)
	}
	wg.Wait()

	if s.cache != nil {
		s.cache.SetStats(ctx, stats)
	}
	return stats
}
