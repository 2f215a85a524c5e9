// 本地造数工具：生成 N 个用户、每人 M 条心情，外加随机点赞与评论，
// 方便手工调接口和压公开流查询。
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/d60-Lab/mood-community/config"
	"github.com/d60-Lab/mood-community/internal/repository"
	"github.com/d60-Lab/mood-community/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)

	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	nUsers := envInt("USERS", 20)
	nMoods := envInt("MOODS", 10)

	ctx := context.Background()
	texts := []string{"今天很开心", "一般般", "有点累", "超级棒的一天", "想静静"}

	userIDs := make([]string, 0, nUsers)
	moodIDs := make([]string, 0, nUsers*nMoods)
	for i := 0; i < nUsers; i++ {
		uid := must(userRepo.Create(ctx))
		userIDs = append(userIDs, uid)
		for j := 0; j < nMoods; j++ {
			public := rand.Intn(4) > 0 // 约 1/4 私密
			mid := must(moodRepo.Create(ctx, uid, rand.Intn(10)+1, texts[rand.Intn(len(texts))], public))
			moodIDs = append(moodIDs, mid)
		}
	}

	likes, comments := 0, 0
	for _, mid := range moodIDs {
		for _, uid := range userIDs {
			if rand.Intn(5) == 0 {
				if err := likeRepo.Create(ctx, mid, uid); err == nil {
					likes++
				}
			}
			if rand.Intn(10) == 0 {
				must(commentRepo.Create(ctx, mid, uid, "说得好"))
				comments++
			}
		}
	}

	fmt.Printf("seeded: %d users, %d moods, %d likes, %d comments\n",
		len(userIDs), len(moodIDs), likes, comments)
}
