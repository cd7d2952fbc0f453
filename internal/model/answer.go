package model

import (
	"bytes"
	"encoding/json"
)

// UnknownCourse 缺失课程名时的分组标签
const UnknownCourse = "Unknown Course"

// Correctness 作答是否正确。只有 JSON 布尔值 true 才算正确，
// null、缺失、字符串或数字一律视为错误，且不会导致整体解码失败。
type Correctness struct {
	set   bool
	value bool
}

func Correct(v bool) Correctness {
	return Correctness{set: true, value: v}
}

// True 严格判断
func (c Correctness) True() bool {
	return c.set && c.value
}

func (c *Correctness) UnmarshalJSON(data []byte) error {
	*c = Correctness{}
	switch {
	case bytes.Equal(data, []byte("true")):
		*c = Correct(true)
	case bytes.Equal(data, []byte("false")):
		*c = Correct(false)
	}
	return nil
}

func (c Correctness) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

type AnswerOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// AnswerRecord 员工对一道测验题的作答
type AnswerRecord struct {
	CourseName   string         `json:"course_name,omitempty"`
	QuestionText string         `json:"question_text,omitempty"`
	Options      []AnswerOption `json:"options,omitempty"`
	UserAnswer   string         `json:"userAnswer,omitempty"`
	IsCorrect    Correctness    `json:"isCorrect"`
}

// Course 分组名，空值归入 UnknownCourse
func (a AnswerRecord) Course() string {
	if a.CourseName == "" {
		return UnknownCourse
	}
	return a.CourseName
}

type ScoreSummary struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type CourseBreakdown struct {
	Name       string `json:"name"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Band       string `json:"band"`
}

// ScoreReport 某员工的成绩汇总
type ScoreReport struct {
	Overall ScoreSummary      `json:"overall"`
	Band    string            `json:"band"`
	Courses []CourseBreakdown `json:"courses"`
}

// UserResults 原始作答与成绩汇总
type UserResults struct {
	UserID  int64          `json:"user_id"`
	Answers []AnswerRecord `json:"answers"`
	Report  ScoreReport    `json:"report"`
}
