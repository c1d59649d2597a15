package models

import "time"

// EmotionCategories 预设回复支持的情绪分类
var EmotionCategories = []string{"general", "anxiety", "depression", "stress", "grief", "anger", "loneliness"}

// CannedResponse 管理员预设回复模板
type CannedResponse struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	AdminID         string    `gorm:"type:varchar(50);index" json:"admin_id"`
	TriggerKeyword  string    `gorm:"type:varchar(100)" json:"trigger_keyword"`
	ResponseText    string    `gorm:"type:text" json:"response_text"`
	EmotionCategory string    `gorm:"type:varchar(30)" json:"emotion_category"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsValidEmotionCategory 检查情绪分类是否有效
func IsValidEmotionCategory(category string) bool {
	for _, c := range EmotionCategories {
		if c == category {
			return true
		}
	}
	return false
}
