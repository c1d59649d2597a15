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

type AdminController struct{}

// CreateResponse 创建预设回复模板
func (ac *AdminController) CreateResponse(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateCannedResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.EmotionCategory
	if category == "" {
		category = "general"
	}
	if !models.IsValidEmotionCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emotion category"})
		return
	}

	response := models.CannedResponse{
		ID:              utils.GenerateID(),
		AdminID:         uid,
		TriggerKeyword:  req.TriggerKeyword,
		ResponseText:    req.ResponseText,
		EmotionCategory: category,
		CreatedAt:       time.Now(),
	}
	if err := config.DB.Create(&response).Error; err != nil {
		config.Logger.Errorw("创建预设回复失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create response"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListResponses 获取当前管理员的预设回复，按创建时间倒序
func (ac *AdminController) ListResponses(c *gin.Context) {
	uid := c.GetString("uid")

	var responses []models.CannedResponse
	if err := config.DB.Where("admin_id = ?", uid).
		Order("created_at desc").Find(&responses).Error; err != nil {
		config.Logger.Errorw("读取预设回复失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses})
}

// DeleteResponse 删除一条预设回复模板
func (ac *AdminController) DeleteResponse(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Where("id = ? AND admin_id = ?", id, uid).Delete(&models.CannedResponse{})
	if result.Error != nil {
		config.Logger.Errorw("删除预设回复失败", "error", result.Error, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete response"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GetChatStats 从聊天记录计算全局统计
func (ac *AdminController) GetChatStats(c *gin.Context) {
	var stats models.ChatStatsResponse

	if err := config.DB.Model(&models.ChatMessage{}).Count(&stats.TotalMessages).Error; err != nil {
		config.Logger.Errorw("统计消息总数失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	config.DB.Model(&models.ChatMessage{}).Where("sender_type = ?", models.SenderUser).Count(&stats.UserMessages)
	config.DB.Model(&models.ChatMessage{}).Where("sender_type = ?", models.SenderBot).Count(&stats.BotMessages)
	config.DB.Model(&models.ChatMessage{}).Where("emotion_detected = ?", services.EmotionCrisis).Count(&stats.CrisisCount)

	// 按情绪标签分组统计
	type emotionCount struct {
		EmotionDetected string
		Count           int64
	}
	var counts []emotionCount
	config.DB.Model(&models.ChatMessage{}).
		Select("emotion_detected, count(*) as count").
		Where("sender_type = ? AND emotion_detected != ''", models.SenderUser).
		Group("emotion_detected").Scan(&counts)

	stats.EmotionBreakdown = make(map[string]int64, len(counts))
	for _, ec := range counts {
		stats.EmotionBreakdown[ec.EmotionDetected] = ec.Count
	}

	c.JSON(http.StatusOK, stats)
}
