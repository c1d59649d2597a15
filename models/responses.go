package models

import "time"

// UserResponse 用户响应结构体
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ChatMessageResponse 聊天消息响应结构体
type ChatMessageResponse struct {
	ID              string    `json:"id"`
	Message         string    `json:"message"`
	SenderType      string    `json:"senderType"`
	EmotionDetected string    `json:"emotionDetected,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MoodEntryResponse 心情记录响应结构体
type MoodEntryResponse struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// CrisisResource 危机求助资源
type CrisisResource struct {
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	URL    string `json:"url"`
}

// ChatStatsResponse 聊天统计响应结构体
type ChatStatsResponse struct {
	TotalMessages    int64            `json:"totalMessages"`
	UserMessages     int64            `json:"userMessages"`
	BotMessages      int64            `json:"botMessages"`
	CrisisCount      int64            `json:"crisisCount"`
	EmotionBreakdown map[string]int64 `json:"emotionBreakdown"`
}
