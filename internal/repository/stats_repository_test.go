package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository(db)
	likeRepo := NewLikeRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")
	seedUser(t, db, "u3")
	base := time.Now().Add(-time.Hour)
	m1 := seedMood(t, db, "m1", u1, 4, true, base)
	seedMood(t, db, "m2", u1, 8, true, base.Add(time.Minute))
	seedMood(t, db, "m3", u2, 10, false, base.Add(2*time.Minute))

	require.NoError(t, likeRepo.Create(ctx, m1, u2))
	_, err := commentRepo.Create(ctx, m1, u2, "加油")
	require.NoError(t, err)
	_, err = commentRepo.Create(ctx, m1, u1, "谢谢")
	require.NoError(t, err)

	moods, err := repo.CountMoods(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, moods)

	public, err := repo.CountPublicMoods(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, public)

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, users)

	likes, err := repo.CountLikes(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)

	comments, err := repo.CountComments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, comments)

	// 平均分只算公开心情：(4+8)/2
	avg, err := repo.AvgPublicScore(ctx)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 6.0, *avg, 1e-9)
}

func TestAvgPublicScoreEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	avg, err := repo.AvgPublicScore(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg)

	// 只有私密心情时同样为 nil
	uid := seedUser(t, db, "u1")
	seedMood(t, db, "m1", uid, 9, false, time.Now())
	avg, err = repo.AvgPublicScore(ctx)
	require.NoError(t, err)
	assert.Nil(t, avg)
}
