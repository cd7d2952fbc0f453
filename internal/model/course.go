package model

type Course struct {
	ID            int64  `json:"id"`
	CourseName    string `json:"course_name"`
	Description   string `json:"description"`
	VideoCount    int    `json:"video_count"`
	QuestionCount int    `json:"question_count"`
}

type CourseRequest struct {
	CourseName  string `json:"course_name" binding:"required,notblank"`
	Description string `json:"description"`
}

type QuestionOption struct {
	Text      string `json:"text" binding:"required,notblank"`
	IsCorrect bool   `json:"is_correct"`
}

// Question 已完成视频的测验题
type Question struct {
	ID      int64            `json:"id"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

// QuestionRequest 新建测验题，必须恰好一个正确选项
type QuestionRequest struct {
	Text    string           `json:"text" binding:"required,notblank"`
	Options []QuestionOption `json:"options" binding:"required,min=2,exactlyonecorrect,dive"`
}

// QuestionPayload 发往后端的结构
type QuestionPayload struct {
	Course  int64            `json:"course"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}
