package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/d60-Lab/mood-community/internal/model"
)

// 压公开流的三表聚合查询：N 条心情、随机点赞/评论下翻第一页的成本
func BenchmarkPublicFeed(b *testing.B) {
	db := setupTestDB(b)
	repo := NewMoodRepository(db)
	ctx := context.Background()

	const users = 50
	const moodsPerUser = 40

	uids := make([]string, users)
	for i := range uids {
		uids[i] = seedUser(b, db, fmt.Sprintf("u%03d", i))
	}
	base := time.Now().Add(-24 * time.Hour)
	mids := make([]string, 0, users*moodsPerUser)
	for i, uid := range uids {
		for j := 0; j < moodsPerUser; j++ {
			id := fmt.Sprintf("m%03d-%03d", i, j)
			seedMood(b, db, id, uid, rand.Intn(10)+1, j%4 != 0, base.Add(time.Duration(i*moodsPerUser+j)*time.Second))
			mids = append(mids, id)
		}
	}
	likes := make([]model.Like, 0, len(mids))
	comments := make([]model.Comment, 0, len(mids))
	for k, mid := range mids {
		if k%3 == 0 {
			likes = append(likes, model.Like{ID: fmt.Sprintf("l%05d", k), MoodID: mid, UserID: uids[k%users]})
		}
		if k%5 == 0 {
			comments = append(comments, model.Comment{ID: fmt.Sprintf("c%05d", k), MoodID: mid, UserID: uids[k%users], Content: "好"})
		}
	}
	if err := db.CreateInBatches(&likes, 500).Error; err != nil {
		b.Fatalf("seed likes: %v", err)
	}
	if err := db.CreateInBatches(&comments, 500).Error; err != nil {
		b.Fatalf("seed comments: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.PublicFeed(ctx, 0, 20); err != nil {
			b.Fatalf("feed: %v", err)
		}
	}
}
