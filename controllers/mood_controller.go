package controllers

import (
	"SoulSyncGo/config"
	"SoulSyncGo/models"
	"SoulSyncGo/services"
	"SoulSyncGo/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type MoodController struct{}

// CreateMood 新增一条心情记录，记录只追加不修改
func (mc *MoodController) CreateMood(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 分数校验在入口完成，统计函数不处理非法数据
	if err := models.ValidateMoodScore(req.Score); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
		return
	}

	entry := models.MoodEntry{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Score:     req.Score,
		Label:     models.MoodLabelForScore(req.Score),
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("保存心情记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save mood entry"})
		return
	}

	c.JSON(http.StatusOK, models.MoodEntryResponse{
		ID:        entry.ID,
		Score:     entry.Score,
		Label:     entry.Label,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	})
}

// ListMoods 按时间正序返回当前用户的全部心情记录
func (mc *MoodController) ListMoods(c *gin.Context) {
	uid := c.GetString("uid")

	entries, err := loadMoodEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mood entries"})
		return
	}

	responses := make([]models.MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = models.MoodEntryResponse{
			ID:        entry.ID,
			Score:     entry.Score,
			Label:     entry.Label,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// GetMoodStats 全量重算当前用户的心情统计
func (mc *MoodController) GetMoodStats(c *gin.Context) {
	uid := c.GetString("uid")

	entries, err := loadMoodEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mood entries"})
		return
	}

	stats := services.CalculateMoodStats(entries, time.Now())
	c.JSON(http.StatusOK, stats)
}

// loadMoodEntries 读取用户的全部心情记录，时间正序
func loadMoodEntries(uid string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at asc").Find(&entries).Error; err != nil {
		config.Logger.Errorw("读取心情记录失败", "error", err, "uid", uid)
		return nil, err
	}
	return entries, nil
}
