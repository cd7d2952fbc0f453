package cli

import (
	"encoding/json"
	"io"
	"os"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/scoring"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewScoreCmd 离线计算答题记录的成绩报告，"-" 表示从标准输入读取
func NewScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <answers.json|->",
		Short: "Aggregate answer records into a score report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			answers, err := readAnswers(in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(scoring.Report(answers))
		},
	}
}

// readAnswers 接受答题数组，或后端原样返回的 {data: [...]} 信封
func readAnswers(r io.Reader) ([]model.AnswerRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var answers []model.AnswerRecord
	if err := json.Unmarshal(raw, &answers); err == nil {
		return answers, nil
	}

	var env struct {
		Data []model.AnswerRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrap(err, "decode answers")
	}
	return env.Data, nil
}
