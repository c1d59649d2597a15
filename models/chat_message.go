package models

import "time"

// 消息发送方类型
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage 聊天消息模型
type ChatMessage struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(50);index" json:"user_id"`
	Message         string    `gorm:"type:text" json:"message"`
	SenderType      string    `gorm:"type:varchar(10)" json:"senderType"`
	EmotionDetected string    `gorm:"type:varchar(20)" json:"emotionDetected"`
	CreatedAt       time.Time `json:"createdAt"`
}
