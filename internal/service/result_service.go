package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/scoring"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	answersSheet = "Answers"
)

type ResultService struct {
	client       *upstream.Client
	maxCertBytes int64
}

func NewResultService(client *upstream.Client, maxCertBytes int64) *ResultService {
	return &ResultService{client: client, maxCertBytes: maxCertBytes}
}

// UserResults 拉取员工作答并计算总分与各课程得分
func (s *ResultService) UserResults(ctx context.Context, userID int64) (*model.UserResults, error) {
	res, err := s.client.GetUserAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	answers := res.Data
	if answers == nil {
		answers = []model.AnswerRecord{}
	}
	return &model.UserResults{
		UserID:  userID,
		Answers: answers,
		Report:  scoring.Report(answers),
	}, nil
}

// Export 把成绩写成 xlsx：汇总表和逐题明细
func (s *ResultService) Export(ctx context.Context, userID int64, w io.Writer) error {
	results, err := s.UserResults(ctx, userID)
	if err != nil {
		return err
	}
	return WriteWorkbook(results, w)
}

func WriteWorkbook(results *model.UserResults, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, results.Report); err != nil {
		return errors.Wrap(err, "write summary sheet")
	}
	if _, err := f.NewSheet(answersSheet); err != nil {
		return err
	}
	if err := writeAnswers(f, results.Answers); err != nil {
		return errors.Wrap(err, "write answers sheet")
	}
	return f.Write(w)
}

func writeSummary(f *excelize.File, report model.ScoreReport) error {
	sw, err := f.NewStreamWriter(summarySheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{"Course", "Correct", "Total", "Percentage", "Band"}); err != nil {
		return err
	}

	row := 2
	for _, c := range report.Courses {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := sw.SetRow(cell, []interface{}{sanitizeForExcel(c.Name), c.Correct, c.Total, c.Percentage, c.Band}); err != nil {
			return err
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	overall := report.Overall
	if err := sw.SetRow(cell, []interface{}{"Overall", overall.Correct, overall.Total, overall.Percentage, report.Band}); err != nil {
		return err
	}
	return sw.Flush()
}

func writeAnswers(f *excelize.File, answers []model.AnswerRecord) error {
	sw, err := f.NewStreamWriter(answersSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{"#", "Course", "Question", "Answer", "Correct Answer", "Result"}); err != nil {
		return err
	}

	for i, a := range answers {
		result := "Incorrect"
		if a.IsCorrect.True() {
			result = "Correct"
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			i + 1,
			sanitizeForExcel(a.Course()),
			sanitizeForExcel(a.QuestionText),
			sanitizeForExcel(a.UserAnswer),
			sanitizeForExcel(correctOption(a.Options)),
			result,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func correctOption(options []model.AnswerOption) string {
	var texts []string
	for _, opt := range options {
		if opt.IsCorrect {
			texts = append(texts, opt.Text)
		}
	}
	return strings.Join(texts, ", ")
}

// sanitizeForExcel 防止单元格被当作公式执行
func sanitizeForExcel(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// UploadCertificate 仅接受 PDF，按内容识别类型
func (s *ResultService) UploadCertificate(ctx context.Context, cert model.Certificate, fh *multipart.FileHeader) (*upstream.Result[json.RawMessage], error) {
	if fh == nil {
		return nil, &InputError{Reason: "Please select a PDF file", Err: util.ErrFileRequired}
	}
	if s.maxCertBytes > 0 && fh.Size > s.maxCertBytes {
		return nil, &InputError{
			Reason: fmt.Sprintf("File size should not exceed %dMB", s.maxCertBytes>>20),
			Err:    util.ErrCertificateLarge,
		}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open certificate")
	}
	defer f.Close()

	if _, err := util.ValidateMimeType(f, []string{util.MimePDF}); err != nil {
		return nil, &InputError{Reason: util.ErrInvalidPDF.Error(), Err: util.ErrInvalidPDF}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind certificate")
	}

	cert.FileName = fh.Filename
	return s.client.UploadCertificate(ctx, cert, f)
}
