package services

import (
	"reflect"
	"testing"
	"time"

	"SoulSyncGo/models"
)

// testNow 固定的"现在"，避免用例受真实时间影响
var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

func entryAt(t *testing.T, score int, at time.Time) models.MoodEntry {
	t.Helper()
	return models.MoodEntry{
		ID:        "test-" + at.Format(time.RFC3339Nano),
		Score:     score,
		Label:     models.MoodLabelForScore(score),
		CreatedAt: at,
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestCalculateMoodStatsEmpty(t *testing.T) {
	stats := CalculateMoodStats(nil, testNow)

	if stats.Average != 0 {
		t.Errorf("empty average = %v, want 0", stats.Average)
	}
	if stats.Best != 0 || stats.Worst != 0 {
		t.Errorf("empty best/worst = %d/%d, want 0/0", stats.Best, stats.Worst)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("empty streak = %d, want 0", stats.CurrentStreak)
	}
	if stats.TotalDays != 0 {
		t.Errorf("empty totalDays = %d, want 0", stats.TotalDays)
	}
	if len(stats.Trend) != 0 {
		t.Errorf("empty trend has %d points", len(stats.Trend))
	}
}

func TestCalculateMoodStatsAverage(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, 2, daysAgo(1)),
		entryAt(t, 4, daysAgo(0)),
	}
	stats := CalculateMoodStats(entries, testNow)
	if stats.Average != 3.0 {
		t.Errorf("average = %v, want 3.0", stats.Average)
	}

	// 平均值保留一位小数
	entries = append(entries, entryAt(t, 4, daysAgo(0)))
	stats = CalculateMoodStats(entries, testNow)
	if stats.Average != 3.3 {
		t.Errorf("average = %v, want 3.3", stats.Average)
	}
}

func TestCalculateMoodStatsBestWorst(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, 3, daysAgo(2)),
		entryAt(t, 5, daysAgo(1)),
		entryAt(t, 1, daysAgo(0)),
	}
	stats := CalculateMoodStats(entries, testNow)
	if stats.Best != 5 {
		t.Errorf("best = %d, want 5", stats.Best)
	}
	if stats.Worst != 1 {
		t.Errorf("worst = %d, want 1", stats.Worst)
	}
}

func TestCalculateStreakConsecutive(t *testing.T) {
	// 前天、昨天、今天各有记录，连续3天
	entries := []models.MoodEntry{
		entryAt(t, 3, daysAgo(2)),
		entryAt(t, 4, daysAgo(1)),
		entryAt(t, 5, daysAgo(0)),
	}
	if streak := CalculateStreak(entries, testNow); streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestCalculateStreakGap(t *testing.T) {
	// 前天缺勤，只有昨天和今天算连续
	entries := []models.MoodEntry{
		entryAt(t, 3, daysAgo(3)),
		entryAt(t, 4, daysAgo(1)),
		entryAt(t, 5, daysAgo(0)),
	}
	if streak := CalculateStreak(entries, testNow); streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestCalculateStreakBroken(t *testing.T) {
	// 最近一条记录既不是今天也不是昨天，连续中断
	entries := []models.MoodEntry{
		entryAt(t, 3, daysAgo(5)),
	}
	if streak := CalculateStreak(entries, testNow); streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestCalculateStreakAnchoredOnYesterday(t *testing.T) {
	// 今天还没打卡，但昨天有记录，连续仍然有效
	entries := []models.MoodEntry{
		entryAt(t, 3, daysAgo(2)),
		entryAt(t, 4, daysAgo(1)),
	}
	if streak := CalculateStreak(entries, testNow); streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestCalculateStreakSameDayDeduplicated(t *testing.T) {
	// 同一天多条记录只算一天，不能虚增连续天数
	entries := []models.MoodEntry{
		entryAt(t, 2, daysAgo(1)),
		entryAt(t, 3, daysAgo(0).Add(-2*time.Hour)),
		entryAt(t, 4, daysAgo(0).Add(-1*time.Hour)),
		entryAt(t, 5, daysAgo(0)),
	}
	if streak := CalculateStreak(entries, testNow); streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestCalculateStreakMidnightBoundary(t *testing.T) {
	// 23:59和次日00:01只差两分钟，但属于两个打卡日
	lateNight := time.Date(2025, 6, 14, 23, 59, 0, 0, time.Local)
	earlyMorning := time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local)
	entries := []models.MoodEntry{
		entryAt(t, 3, lateNight),
		entryAt(t, 4, earlyMorning),
	}
	if streak := CalculateStreak(entries, testNow); streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestCalculateTotalDays(t *testing.T) {
	// 同一天两条记录只算一个正念日
	entries := []models.MoodEntry{
		entryAt(t, 2, daysAgo(0).Add(-3*time.Hour)),
		entryAt(t, 4, daysAgo(0)),
	}
	if total := CalculateTotalDays(entries); total != 1 {
		t.Errorf("totalDays = %d, want 1", total)
	}

	// 不要求连续，中断的天也计入
	entries = append(entries, entryAt(t, 3, daysAgo(10)))
	if total := CalculateTotalDays(entries); total != 2 {
		t.Errorf("totalDays = %d, want 2", total)
	}
}

func TestCalculateMoodStatsSingleEntry(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, 4, daysAgo(0)),
	}
	stats := CalculateMoodStats(entries, testNow)

	if stats.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", stats.CurrentStreak)
	}
	if stats.TotalDays != 1 {
		t.Errorf("totalDays = %d, want 1", stats.TotalDays)
	}
	if stats.Average != 4.0 {
		t.Errorf("average = %v, want 4.0", stats.Average)
	}
	if stats.Best != 4 || stats.Worst != 4 {
		t.Errorf("best/worst = %d/%d, want 4/4", stats.Best, stats.Worst)
	}
}

func TestCalculateMoodStatsDistribution(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, 1, daysAgo(2)),
		entryAt(t, 3, daysAgo(1)),
		entryAt(t, 3, daysAgo(0).Add(-time.Hour)),
		entryAt(t, 5, daysAgo(0)),
	}
	stats := CalculateMoodStats(entries, testNow)

	want := map[int]int{1: 1, 2: 0, 3: 2, 4: 0, 5: 1}
	if !reflect.DeepEqual(stats.Distribution, want) {
		t.Errorf("distribution = %v, want %v", stats.Distribution, want)
	}
}

func TestCalculateMoodStatsTrend(t *testing.T) {
	// 超过30条时只取最近30条，且保持时间正序
	var entries []models.MoodEntry
	for i := 40; i >= 1; i-- {
		entries = append(entries, entryAt(t, i%5+1, daysAgo(i)))
	}
	stats := CalculateMoodStats(entries, testNow)

	if len(stats.Trend) != 30 {
		t.Fatalf("trend has %d points, want 30", len(stats.Trend))
	}
	first := daysAgo(30).Format("Jan 2")
	last := daysAgo(1).Format("Jan 2")
	if stats.Trend[0].Date != first {
		t.Errorf("trend starts at %q, want %q", stats.Trend[0].Date, first)
	}
	if stats.Trend[len(stats.Trend)-1].Date != last {
		t.Errorf("trend ends at %q, want %q", stats.Trend[len(stats.Trend)-1].Date, last)
	}
}

func TestCalculateMoodStatsIdempotent(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, 2, daysAgo(2)),
		entryAt(t, 4, daysAgo(1)),
		entryAt(t, 5, daysAgo(0)),
	}

	first := CalculateMoodStats(entries, testNow)
	second := CalculateMoodStats(entries, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("stats differ across identical computations:\n%+v\n%+v", first, second)
	}
}
