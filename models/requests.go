package models

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChatRequest 聊天请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// CreateMoodRequest 心情记录创建请求结构体
// 分数范围由入口处的ValidateMoodScore统一校验，缺省的0也走同一条路径
type CreateMoodRequest struct {
	Score int    `json:"score"`
	Notes string `json:"notes"`
}

// CreateCannedResponseRequest 预设回复创建请求结构体
type CreateCannedResponseRequest struct {
	TriggerKeyword  string `json:"trigger_keyword" binding:"required"`
	ResponseText    string `json:"response_text" binding:"required"`
	EmotionCategory string `json:"emotion_category"`
}
