package controllers

import (
	"SoulSyncGo/config"
	"SoulSyncGo/models"
	"SoulSyncGo/services"
	"SoulSyncGo/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *services.ChatService
}

func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// historyKey 用户对话总结在Redis中的键
func historyKey(uid string) string {
	return fmt.Sprintf("history:%s", uid)
}

// SendMessage 处理聊天请求，流式返回AI回复
func (c *ChatController) SendMessage(ctx *gin.Context) {
	// 获取用户信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uidStr := uid.(string)

	var chatRequest models.ChatRequest
	if err := ctx.ShouldBindJSON(&chatRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 对原始用户消息做情绪分类，不依赖模型返回
	emotion, isCrisis := services.ClassifyEmotion(chatRequest.Message)

	// 先读取历史对话，避免把本条消息重复传给模型
	var history []models.ChatMessage
	if err := config.DB.Where("user_id = ?", uidStr).
		Order("created_at desc").Limit(50).Find(&history).Error; err != nil {
		config.Logger.Errorw("读取对话记录失败", "error", err, "uid", uidStr)
	}
	reverseMessages(history)

	// 保存用户消息
	userMessage := models.ChatMessage{
		ID:              utils.GenerateID(),
		UserID:          uidStr,
		Message:         chatRequest.Message,
		SenderType:      models.SenderUser,
		EmotionDetected: emotion,
		CreatedAt:       time.Now(),
	}
	if err := config.DB.Create(&userMessage).Error; err != nil {
		config.Logger.Errorw("保存用户消息失败", "error", err, "uid", uidStr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	// 设置流式响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("X-Accel-Buffering", "no") // 禁用 Nginx 缓冲
	ctx.Header("X-Emotion-Detected", emotion)
	if isCrisis {
		ctx.Header("X-Crisis-Detected", "true")
	}

	// 先查预设回复模板，命中则直接返回，不调用模型
	if reply, ok := c.matchCannedReply(chatRequest.Message); ok {
		c.writeBotReply(ctx, uidStr, reply)
		return
	}

	// 从 Redis 中获取对话历史总结
	historySummary, err := config.RedisClient.Get(ctx, historyKey(uidStr)).Result()
	if err != nil {
		config.Logger.Debugw("未获取到对话历史总结",
			"error", err,
			"uid", uidStr,
		)
	}

	// 处理聊天请求
	stream, err := c.chatService.GenerateReply(ctx, chatRequest.Message, historySummary, history)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process chat: " + err.Error(),
		})
		return
	}

	// 发送流式响应
	var fullResponse strings.Builder
	for chunk := range stream {
		_, err := ctx.Writer.Write([]byte(chunk))
		if err != nil {
			config.Logger.Errorw("写入响应失败", "error", err, "uid", uidStr)
			return
		}
		ctx.Writer.Flush() // 确保每个块都被立即发送
		fullResponse.WriteString(chunk)
	}

	// 保存AI回复
	botMessage := models.ChatMessage{
		ID:         utils.GenerateID(),
		UserID:     uidStr,
		Message:    fullResponse.String(),
		SenderType: models.SenderBot,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&botMessage).Error; err != nil {
		config.Logger.Errorw("保存AI回复失败", "error", err, "uid", uidStr)
	}

	// 异步更新对话总结，失败不影响本次请求
	go c.refreshHistorySummary(uidStr, historySummary,
		fmt.Sprintf("User: %s\nAssistant: %s", chatRequest.Message, fullResponse.String()))
}

// matchCannedReply 在管理员预设回复中查找触发词命中的模板
func (c *ChatController) matchCannedReply(message string) (string, bool) {
	var responses []models.CannedResponse
	if err := config.DB.Order("created_at desc").Find(&responses).Error; err != nil {
		config.Logger.Errorw("读取预设回复失败", "error", err)
		return "", false
	}

	triggers := make([]string, len(responses))
	for i, r := range responses {
		triggers[i] = r.TriggerKeyword
	}

	if idx, ok := services.MatchCannedResponse(message, triggers); ok {
		return responses[idx].ResponseText, true
	}
	return "", false
}

// writeBotReply 将一条完整回复写给客户端并保存
func (c *ChatController) writeBotReply(ctx *gin.Context, uid, reply string) {
	if _, err := ctx.Writer.Write([]byte(reply)); err != nil {
		config.Logger.Errorw("写入响应失败", "error", err, "uid", uid)
		return
	}
	ctx.Writer.Flush()

	botMessage := models.ChatMessage{
		ID:         utils.GenerateID(),
		UserID:     uid,
		Message:    reply,
		SenderType: models.SenderBot,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&botMessage).Error; err != nil {
		config.Logger.Errorw("保存AI回复失败", "error", err, "uid", uid)
	}
}

// refreshHistorySummary 请求模型更新对话总结并写回Redis
func (c *ChatController) refreshHistorySummary(uid, previousSummary, latestDialogue string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := c.chatService.SummarizeHistory(ctx, previousSummary, latestDialogue)
	if err != nil {
		config.Logger.Errorw("更新对话总结失败", "error", err, "uid", uid)
		return
	}

	if err := config.RedisClient.Set(ctx, historyKey(uid), summary, 24*time.Hour).Err(); err != nil {
		config.Logger.Errorw("写入对话总结失败", "error", err, "uid", uid)
	}
}

// GetMessages 获取最近的聊天记录
func (c *ChatController) GetMessages(ctx *gin.Context) {
	uid := ctx.GetString("uid")

	var messages []models.ChatMessage
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").Limit(50).Find(&messages).Error; err != nil {
		config.Logger.Errorw("读取聊天记录失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	reverseMessages(messages)

	responses := make([]models.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = models.ChatMessageResponse{
			ID:              msg.ID,
			Message:         msg.Message,
			SenderType:      msg.SenderType,
			EmotionDetected: msg.EmotionDetected,
			CreatedAt:       msg.CreatedAt,
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": responses})
}

// GetCrisisResources 获取危机求助资源列表
func (c *ChatController) GetCrisisResources(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"resources": services.CrisisResources})
}

// reverseMessages 将降序查询结果翻转为时间正序
func reverseMessages(messages []models.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
