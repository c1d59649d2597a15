package services

import (
	"math/rand"

	"SoulSyncGo/models"
)

// WellnessQuotes 心理健康鼓励语录
var WellnessQuotes = []string{
	"You are stronger than you think. Every challenge you overcome makes you more resilient.",
	"Progress, not perfection. Small steps forward are still steps in the right direction.",
	"Your mental health is a priority, not a luxury. Take care of yourself.",
	"It's okay to not be okay. What matters is that you're reaching out and seeking support.",
	"You deserve kindness, especially from yourself. Practice self-compassion today.",
	"Healing is not linear. Be patient and gentle with yourself on difficult days.",
	"Your feelings are valid. Allow yourself to feel without judgment.",
	"You are not alone in this. Many people understand what you're going through.",
	"Taking a break is not giving up. Rest is part of the journey to wellness.",
	"You have survived 100% of your worst days. You are capable of getting through this.",
	"Anxiety is just a feeling, not a fact. This moment will pass.",
	"Your worth is not determined by your productivity. You are enough as you are.",
	"Asking for help is a sign of strength, not weakness.",
	"Every day is a new opportunity to take care of yourself.",
	"You are doing better than you think. Give yourself credit for trying.",
}

// WellnessTip 自我照顾小贴士
type WellnessTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WellnessTips 自我照顾小贴士列表
var WellnessTips = []WellnessTip{
	{"Practice Mindfulness", "Spend 5-10 minutes daily focusing on your breath and present moment awareness."},
	{"Move Your Body", "Gentle exercise like walking, yoga, or stretching can improve mood and reduce stress."},
	{"Connect with Others", "Reach out to friends or family. Social connection is vital for mental health."},
	{"Limit Screen Time", "Take breaks from screens, especially before bed, to reduce anxiety and improve sleep."},
	{"Practice Gratitude", "Write down 3 things you're grateful for each day to shift your perspective."},
	{"Get Quality Sleep", "Aim for 7-9 hours of sleep. A consistent sleep schedule supports mental wellness."},
	{"Eat Nourishing Foods", "Fuel your body with nutritious foods that support brain health and mood."},
	{"Set Boundaries", "Learn to say no to protect your energy and mental health."},
}

// BreathingPhase 呼吸练习的单个阶段
type BreathingPhase struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Duration int    `json:"duration"` // 秒
}

// BreathingPlan 方块呼吸法：吸气、屏息、呼气各4秒
var BreathingPlan = []BreathingPhase{
	{"inhale", "Breathe In", 4},
	{"hold", "Hold", 4},
	{"exhale", "Breathe Out", 4},
}

// RandomQuote 随机返回一条语录
func RandomQuote() string {
	return WellnessQuotes[rand.Intn(len(WellnessQuotes))]
}

// CrisisResources 危机求助热线，检测到危机时返回给客户端
var CrisisResources = []models.CrisisResource{
	{Name: "National Suicide Prevention Lifeline", Number: "988", URL: "https://988lifeline.org"},
	{Name: "Crisis Text Line", Number: "Text HOME to 741741", URL: "https://www.crisistextline.org"},
	{Name: "International Association for Suicide Prevention", URL: "https://www.iasp.info/resources/Crisis_Centres/"},
}
