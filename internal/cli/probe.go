package cli

import (
	"encoding/json"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/media"
	"cyberedu_admin/internal/service"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewProbeCmd 对本地文件或远程地址运行一次完整提取，输出 JSON
func NewProbeCmd(configDir *string) *cobra.Command {
	var withThumbnail bool
	cmd := &cobra.Command{
		Use:   "probe <file-or-url>",
		Short: "Extract duration and thumbnail from a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			ff := media.NewFFmpeg(cfg.Media.FFmpegPath, cfg.Media.ProbeTimeout, cfg.Media.CaptureTimeout)
			extractor := media.NewExtractor(ff, ff, media.WithJPEGQuality(cfg.Media.JPEGQuality))

			res := extractor.Extract(cmd.Context(), media.Source(args[0]))
			out := service.ProbeResult(res)
			if !withThumbnail {
				out.Thumbnail = nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}
			if res.State == media.StateLoadError {
				return res.Err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withThumbnail, "thumbnail", false, "include the thumbnail data URL in the output")
	return cmd
}
