package media

import (
	"fmt"
	"math"
	"time"
)

const (
	maxSeekOffset = 2 * time.Second
	seekFraction  = 0.1

	FallbackWidth  = 640
	FallbackHeight = 360
)

// Duration 格式化后的时长
type Duration struct {
	Formatted string  `json:"duration"`
	Seconds   float64 `json:"duration_seconds"`
}

// FormatDuration 分钟向下取整、秒向上取整，65.4 秒显示为 "1:06"。
// 这一不对称是既有行为，保持不变。
func FormatDuration(seconds float64) string {
	minutes := math.Floor(seconds / 60)
	secs := math.Ceil(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", int64(minutes), int64(secs))
}

func NewDuration(seconds float64) Duration {
	return Duration{Formatted: FormatDuration(seconds), Seconds: seconds}
}

// SeekOffset 截帧位置：min(2s, 10% 时长)，跳过片头黑帧同时兼顾极短视频
func SeekOffset(seconds float64) time.Duration {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	offset := time.Duration(seconds * seekFraction * float64(time.Second))
	if offset > maxSeekOffset {
		return maxSeekOffset
	}
	return offset
}
