package models

import (
	"fmt"
	"time"
)

// MoodLabels 心情分数对应的标签，1=Terrible ... 5=Great
var MoodLabels = [5]string{"Terrible", "Bad", "Okay", "Good", "Great"}

// MoodEntry 心情记录模型，只追加不修改
type MoodEntry struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Score     int       `json:"score"`
	Label     string    `gorm:"type:varchar(20)" json:"label"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateMoodScore 校验心情分数是否在1-5范围内
func ValidateMoodScore(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("心情分数必须在1到5之间，当前为%d", score)
	}
	return nil
}

// MoodLabelForScore 根据分数返回对应的标签，分数必须已通过校验
func MoodLabelForScore(score int) string {
	return MoodLabels[score-1]
}
