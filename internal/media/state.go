package media

// State 单个视频一次提取请求所处的阶段
type State int

const (
	StateIdle State = iota
	StateLoadingMetadata
	StateMetadataReady
	StateLoadError
	StateSeekingFrame
	StateFrameCaptured
	StateCaptureError
)

var stateNames = [...]string{
	StateIdle:            "idle",
	StateLoadingMetadata: "loading_metadata",
	StateMetadataReady:   "metadata_ready",
	StateLoadError:       "load_error",
	StateSeekingFrame:    "seeking_frame",
	StateFrameCaptured:   "frame_captured",
	StateCaptureError:    "capture_error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal 终态之后不再有任何转移
func (s State) Terminal() bool {
	return s == StateLoadError || s == StateFrameCaptured || s == StateCaptureError
}
