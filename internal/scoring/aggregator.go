// Package scoring 根据扁平的作答记录计算总体与按课程的成绩统计。
// 所有函数都是纯函数，可并发调用。
package scoring

import (
	"math"

	"cyberedu_admin/internal/model"
)

type Band string

const (
	BandPass    Band = "pass"
	BandWarning Band = "warning"
	BandFail    Band = "fail"
)

const (
	passThreshold    = 70
	warningThreshold = 50
)

// BandOf 成绩档位：>=70 通过，>=50 警告，其余不及格
func BandOf(percentage int) Band {
	switch {
	case percentage >= passThreshold:
		return BandPass
	case percentage >= warningThreshold:
		return BandWarning
	default:
		return BandFail
	}
}

func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func OverallScore(answers []model.AnswerRecord) model.ScoreSummary {
	correct := 0
	for _, a := range answers {
		if a.IsCorrect.True() {
			correct++
		}
	}
	total := len(answers)
	return model.ScoreSummary{
		Correct:    correct,
		Total:      total,
		Percentage: percentage(correct, total),
	}
}

// CourseBreakdown 按课程名分组，顺序为课程名首次出现的顺序
func CourseBreakdown(answers []model.AnswerRecord) []model.CourseBreakdown {
	index := make(map[string]int)
	groups := make([]model.CourseBreakdown, 0)

	for _, a := range answers {
		name := a.Course()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, model.CourseBreakdown{Name: name})
		}
		groups[i].Total++
		if a.IsCorrect.True() {
			groups[i].Correct++
		}
	}

	for i := range groups {
		groups[i].Percentage = percentage(groups[i].Correct, groups[i].Total)
		groups[i].Band = string(BandOf(groups[i].Percentage))
	}
	return groups
}

func Report(answers []model.AnswerRecord) model.ScoreReport {
	overall := OverallScore(answers)
	return model.ScoreReport{
		Overall: overall,
		Band:    string(BandOf(overall.Percentage)),
		Courses: CourseBreakdown(answers),
	}
}
