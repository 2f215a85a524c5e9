package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mood-community/internal/model"
	"github.com/d60-Lab/mood-community/internal/repository"
)

func TestLikeToggleSequence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(repository.NewLikeRepository(db), nil)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.User{ID: "u1"}).Error)
	require.NoError(t, db.Create(&model.Mood{ID: "m1", UserID: "u1", Score: 5, Text: "hi", IsPublic: true}).Error)

	// 赞 → 取消 → 再赞
	liked, err := svc.Toggle(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.Toggle(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.False(t, liked)

	liked, err = svc.Toggle(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeStatusParity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(repository.NewLikeRepository(db), nil)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.User{ID: "u1"}).Error)
	require.NoError(t, db.Create(&model.Mood{ID: "m1", UserID: "u1", Score: 5, Text: "hi", IsPublic: true}).Error)

	// N 次切换后 liked == (N 为奇数)
	for n := 1; n <= 6; n++ {
		_, err := svc.Toggle(ctx, "m1", "u1")
		require.NoError(t, err)
		liked, err := svc.Status(ctx, "m1", "u1")
		require.NoError(t, err)
		assert.Equal(t, n%2 == 1, liked, "after %d toggles", n)
	}
}
