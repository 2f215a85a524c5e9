package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mood-community/internal/model"
	"github.com/d60-Lab/mood-community/internal/repository"
)

func TestStatsOverviewMergesAllKeys(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db), nil)
	ctx := context.Background()

	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, db.Create(&model.User{ID: id}).Error)
	}
	require.NoError(t, db.Create(&model.Mood{ID: "m1", UserID: "u1", Score: 4, Text: "a", IsPublic: true}).Error)
	require.NoError(t, db.Create(&model.Mood{ID: "m2", UserID: "u2", Score: 8, Text: "b", IsPublic: true}).Error)
	require.NoError(t, db.Create(&model.Mood{ID: "m3", UserID: "u2", Score: 2, Text: "c", IsPublic: false}).Error)
	require.NoError(t, db.Create(&model.Like{ID: "l1", MoodID: "m1", UserID: "u2"}).Error)
	require.NoError(t, db.Create(&model.Comment{ID: "c1", MoodID: "m1", UserID: "u3", Content: "x"}).Error)

	stats := svc.Overview(ctx)
	require.Len(t, stats, 6)
	assert.EqualValues(t, 3, stats["totalMoods"])
	assert.EqualValues(t, 2, stats["publicMoods"])
	assert.EqualValues(t, 3, stats["totalUsers"])
	assert.EqualValues(t, 1, stats["totalLikes"])
	assert.EqualValues(t, 1, stats["totalComments"])
	avg, ok := stats["avgScore"].(*float64)
	require.True(t, ok)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.0, *avg, 1e-9)
}

func TestStatsOverviewNullAvgWhenNoPublicMoods(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db), nil)

	stats := svc.Overview(context.Background())
	require.Contains(t, stats, "avgScore")
	assert.Nil(t, stats["avgScore"])
	assert.EqualValues(t, 0, stats["totalMoods"])
}

// failingStatsRepo 让单个子查询报错，验证失败键被静默省略
type failingStatsRepo struct {
	repository.StatsRepository
}

func (f *failingStatsRepo) CountLikes(ctx context.Context) (int64, error) {
	return 0, errors.New("boom")
}

func TestStatsOverviewOmitsFailedKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(&failingStatsRepo{repository.NewStatsRepository(db)}, nil)

	stats := svc.Overview(context.Background())
	assert.NotContains(t, stats, "totalLikes")
	assert.Contains(t, stats, "totalMoods")
	assert.Contains(t, stats, "totalUsers")
	assert.Contains(t, stats, "totalComments")
	assert.Len(t, stats, 5)
}
