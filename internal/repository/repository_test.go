package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/mood-community/internal/model"
)

func setupTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Mood{}, &model.Like{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t testing.TB, db *gorm.DB, id string) string {
	t.Helper()
	require.NoError(t, db.Create(&model.User{ID: id}).Error)
	return id
}

// seedMood 用显式 created_at 控制排序
func seedMood(t testing.TB, db *gorm.DB, id, userID string, score int, public bool, at time.Time) string {
	t.Helper()
	m := &model.Mood{
		ID:        id,
		UserID:    userID,
		Score:     score,
		Text:      fmt.Sprintf("mood %s", id),
		IsPublic:  public,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(m).Error)
	return id
}
