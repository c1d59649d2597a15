package controllers

import (
	"SoulSyncGo/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SelfCareController struct{}

// GetQuote 随机返回一条鼓励语录
func (sc *SelfCareController) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": services.RandomQuote()})
}

// GetTips 返回自我照顾小贴士列表
func (sc *SelfCareController) GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": services.WellnessTips})
}

// GetBreathingPlan 返回方块呼吸练习的阶段方案
func (sc *SelfCareController) GetBreathingPlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"phases": services.BreathingPlan,
		"cycles": 4,
	})
}
