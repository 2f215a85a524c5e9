package model

import "time"

// Mood 心情记录（分数 + 文本 + 可见性）
type Mood struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"type:varchar(36);index:idx_mood_user"`
	Score     int       `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	IsPublic  bool      `gorm:"not null;default:true;index:idx_mood_public"`
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP"`
}

func (Mood) TableName() string { return "moods" }

// PublicMood 公开动态流的行（含点赞/评论计数）
type PublicMood struct {
	ID           string    `json:"id"`
	Score        int       `json:"score"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// UserMood 用户个人动态流的行（额外带可见性）
type UserMood struct {
	ID           string    `json:"id"`
	Score        int       `json:"score"`
	Text         string    `json:"text"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}
