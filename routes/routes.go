package routes

import (
	"SoulSyncGo/controllers"
	"SoulSyncGo/middleware"
	"SoulSyncGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, chatService *services.ChatService) {
	authController := controllers.AuthController{}
	chatController := controllers.NewChatController(chatService)
	moodController := controllers.MoodController{}
	userController := controllers.UserController{}
	adminController := controllers.AdminController{}
	selfCareController := controllers.SelfCareController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// Chat 相关接口
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat/messages", chatController.GetMessages)
		private.GET("/chat/crisis-resources", chatController.GetCrisisResources)

		// 心情记录接口
		private.POST("/moods", moodController.CreateMood)
		private.GET("/moods", moodController.ListMoods)
		private.GET("/moods/stats", moodController.GetMoodStats)

		// 自我照顾内容接口
		private.GET("/selfcare/quote", selfCareController.GetQuote)
		private.GET("/selfcare/tips", selfCareController.GetTips)
		private.GET("/selfcare/breathing", selfCareController.GetBreathingPlan)

		private.GET("/user", userController.GetUser)
	}

	// 管理路由组（需要认证和内部令牌）
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.InternalAuthMiddleware())
	{
		admin.POST("/responses", adminController.CreateResponse)
		admin.GET("/responses", adminController.ListResponses)
		admin.DELETE("/responses/:id", adminController.DeleteResponse)
		admin.GET("/stats", adminController.GetChatStats)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
