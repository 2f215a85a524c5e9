package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mood-community/internal/model"
)

func TestLikeCreateExistsDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	uid := seedUser(t, db, "u1")
	mid := seedMood(t, db, "m1", uid, 5, true, time.Now())

	ok, err := repo.Exists(ctx, mid, uid)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, mid, uid))
	ok, err = repo.Exists(ctx, mid, uid)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, mid, uid))
	ok, err = repo.Exists(ctx, mid, uid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLikeUniquePerMoodUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	uid := seedUser(t, db, "u1")
	mid := seedMood(t, db, "m1", uid, 5, true, time.Now())

	require.NoError(t, repo.Create(ctx, mid, uid))
	// 唯一键把并发竞态的失败方变成插入错误，而不是第二行
	err := repo.Create(ctx, mid, uid)
	require.Error(t, err)

	var cnt int64
	require.NoError(t, db.Model(&model.Like{}).Where("mood_id = ? AND user_id = ?", mid, uid).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}
