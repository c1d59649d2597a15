package services

import (
	"math"
	"sort"
	"time"

	"SoulSyncGo/models"
)

// TrendPoint 心情趋势图的单个数据点
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Label string `json:"label"`
}

// MoodStats 心情统计结果
type MoodStats struct {
	TotalEntries  int          `json:"totalEntries"`
	Average       float64      `json:"average"`
	Best          int          `json:"best"`
	Worst         int          `json:"worst"`
	CurrentStreak int          `json:"currentStreak"`
	TotalDays     int          `json:"totalDays"`
	Distribution  map[int]int  `json:"distribution"`
	Trend         []TrendPoint `json:"trend"`
}

// trendLimit 趋势图只取最近的30条记录
const trendLimit = 30

// CalculateMoodStats 从完整的心情记录序列计算全部统计指标
// 每次变更后全量重算，不维护增量状态
func CalculateMoodStats(entries []models.MoodEntry, now time.Time) MoodStats {
	stats := MoodStats{
		TotalEntries: len(entries),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		Trend:        []TrendPoint{},
	}
	if len(entries) == 0 {
		return stats
	}

	sum := 0
	best := entries[0].Score
	worst := entries[0].Score
	for _, entry := range entries {
		sum += entry.Score
		if entry.Score > best {
			best = entry.Score
		}
		if entry.Score < worst {
			worst = entry.Score
		}
		stats.Distribution[entry.Score]++
	}

	// 平均值保留一位小数
	stats.Average = math.Round(float64(sum)/float64(len(entries))*10) / 10
	stats.Best = best
	stats.Worst = worst
	stats.CurrentStreak = CalculateStreak(entries, now)
	stats.TotalDays = CalculateTotalDays(entries)
	stats.Trend = buildTrend(entries)

	return stats
}

// CalculateStreak 计算截至now的连续打卡天数
// 同一天的多条记录只算一天，最近一次记录不在今天或昨天则连续中断，返回0
func CalculateStreak(entries []models.MoodEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	uniqueDates := uniqueDays(entries)

	// 按日期降序排列，最新的在前
	sort.Slice(uniqueDates, func(i, j int) bool {
		return uniqueDates[i].After(uniqueDates[j])
	})

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	mostRecent := uniqueDates[0]
	if !mostRecent.Equal(today) && !mostRecent.Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(uniqueDates); i++ {
		expected := uniqueDates[i-1].AddDate(0, 0, -1)
		if uniqueDates[i].Equal(expected) {
			streak++
		} else {
			break
		}
	}

	return streak
}

// CalculateTotalDays 计算至少有一条记录的不同日历天数
func CalculateTotalDays(entries []models.MoodEntry) int {
	return len(uniqueDays(entries))
}

// uniqueDays 将记录折叠为去重后的本地日历日集合
func uniqueDays(entries []models.MoodEntry) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, entry := range entries {
		day := startOfDay(entry.CreatedAt)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days
}

// startOfDay 取本地时区当天零点，天的边界是本地午夜而不是滚动24小时窗口
func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// buildTrend 取最近trendLimit条记录按时间顺序生成趋势点
func buildTrend(entries []models.MoodEntry) []TrendPoint {
	start := 0
	if len(entries) > trendLimit {
		start = len(entries) - trendLimit
	}

	points := make([]TrendPoint, 0, len(entries)-start)
	for _, entry := range entries[start:] {
		points = append(points, TrendPoint{
			Date:  entry.CreatedAt.Local().Format("Jan 2"),
			Score: entry.Score,
			Label: entry.Label,
		})
	}
	return points
}
