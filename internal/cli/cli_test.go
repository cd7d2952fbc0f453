package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cyberedu_admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answersJSON = `[
	{"course_name": "Phishing", "isCorrect": true},
	{"course_name": "Phishing", "isCorrect": false},
	{"course_name": "Passwords", "isCorrect": "true"},
	{"isCorrect": true}
]`

func runScore(t *testing.T, stdin string, args ...string) (model.ScoreReport, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"score"}, args...))

	var report model.ScoreReport
	if err := cmd.Execute(); err != nil {
		return report, err
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	return report, nil
}

func TestScoreCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(answersJSON), 0o644))

	report, err := runScore(t, "", path)
	require.NoError(t, err)

	assert.Equal(t, model.ScoreSummary{Correct: 2, Total: 4, Percentage: 50}, report.Overall)
	assert.Equal(t, "warning", report.Band)
	require.Len(t, report.Courses, 3)
	assert.Equal(t, "Phishing", report.Courses[0].Name)
	assert.Equal(t, model.UnknownCourse, report.Courses[2].Name)
}

func TestScoreCmd_StdinEnvelope(t *testing.T) {
	report, err := runScore(t, `{"code":"200","data":`+answersJSON+`}`, "-")
	require.NoError(t, err)
	assert.Equal(t, 4, report.Overall.Total)
}

func TestScoreCmd_Empty(t *testing.T) {
	report, err := runScore(t, `[]`, "-")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Overall.Percentage)
	assert.Equal(t, "fail", report.Band)
}

func TestScoreCmd_InvalidInput(t *testing.T) {
	_, err := runScore(t, `not json`, "-")
	assert.Error(t, err)
}

func TestScoreCmd_MissingFile(t *testing.T) {
	_, err := runScore(t, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
