package model

import "time"

// Like 点赞记录
type Like struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	MoodID string `gorm:"type:varchar(36);index:idx_like_mood;uniqueIndex:ux_like_mood_user;not null"`
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:ux_like_mood_user"`
	// 复合唯一键，同一用户对同一条心情至多一个赞
	// ux_like_mood_user = (mood_id, user_id)
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Like) TableName() string { return "likes" }
