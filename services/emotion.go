package services

import "strings"

// 情绪标签
const (
	EmotionCrisis  = "crisis"
	EmotionSad     = "sad"
	EmotionAnxious = "anxious"
	EmotionAngry   = "angry"
	EmotionHappy   = "happy"
	EmotionCalm    = "calm"
	EmotionNeutral = "neutral"
)

// emotionCategory 一个情绪分类及其关键词列表
type emotionCategory struct {
	label    string
	keywords []string
}

// crisisKeywords 危机关键词，命中任意一个即判定为危机，优先级最高
var crisisKeywords = []string{
	"suicide", "suicidal", "suicde", "kill myself", "end my life", "want to die",
	"don't want to live", "self harm", "self-harm", "hurt myself", "cutting",
	"overdose", "end it all", "no reason to live", "better off dead", "kill me",
	"take my life", "harm myself", "death", "dying", "hopeless",
}

// emotionCategories 非危机情绪分类，按固定顺序匹配，命中第一个即返回
var emotionCategories = []emotionCategory{
	{EmotionSad, []string{
		"sad", "depressed", "depression", "down", "unhappy", "miserable", "lonely",
		"crying", "cry", "tears", "heartbroken", "grief", "loss", "empty", "numb",
		"worthless", "useless", "failure", "hate myself", "broken",
	}},
	{EmotionAnxious, []string{
		"anxious", "anxiety", "worried", "worry", "nervous", "stressed", "stress",
		"overwhelmed", "panic", "panicking", "scared", "fear", "afraid", "terrified",
		"can't breathe", "heart racing", "trembling", "shaking", "restless",
	}},
	{EmotionAngry, []string{
		"angry", "frustrated", "mad", "furious", "irritated", "annoyed", "rage",
		"hate", "resentment", "bitter", "upset", "pissed", "enraged",
	}},
	{EmotionHappy, []string{
		"happy", "great", "wonderful", "excited", "amazing", "love", "joy", "joyful",
		"grateful", "thankful", "blessed", "content", "pleased", "delighted", "glad",
	}},
	{EmotionCalm, []string{
		"calm", "peaceful", "relaxed", "serene", "tranquil", "at peace", "centered",
		"grounded", "balanced", "mindful", "present",
	}},
}

// ClassifyEmotion 根据关键词匹配对消息进行情绪分类
// 匹配不区分大小写，使用子串包含而非分词，宁可误报不可漏报
// 危机关键词优先于其他所有分类，无任何匹配时返回neutral
func ClassifyEmotion(message string) (string, bool) {
	lower := strings.ToLower(message)

	// 危机检测优先，任何其他情绪都不能覆盖危机判定
	for _, keyword := range crisisKeywords {
		if strings.Contains(lower, keyword) {
			return EmotionCrisis, true
		}
	}

	for _, category := range emotionCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.label, false
			}
		}
	}

	return EmotionNeutral, false
}

// MatchCannedResponse 在预设回复模板中查找触发词命中消息的第一条
// 触发词同样按不区分大小写的子串匹配
func MatchCannedResponse(message string, triggers []string) (int, bool) {
	lower := strings.ToLower(message)
	for i, trigger := range triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(trigger)) {
			return i, true
		}
	}
	return -1, false
}
