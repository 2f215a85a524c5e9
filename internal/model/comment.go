package model

import "time"

// Comment 评论（只增不改不删）
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	MoodID    string    `gorm:"type:varchar(36);index:idx_comment_mood;not null"`
	UserID    string    `gorm:"type:varchar(36);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string { return "comments" }

// CommentItem 评论列表的行（不回传作者）
type CommentItem struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
