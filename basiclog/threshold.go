package basiclog

import "sync/atomic"

// currentLevel is the process-wide severity threshold. The zero value is
// DEBUG, so everything logs until the host program says otherwise.
var currentLevel atomic.Int32

// SetLevel replaces the process-wide threshold. Safe to call from any
// goroutine. A record already past its activation check keeps its original
// decision.
func SetLevel(level Level) {
	currentLevel.Store(int32(level))
}

// CurrentLevel returns the process-wide threshold.
func CurrentLevel() Level {
	return Level(currentLevel.Load())
}

// BasicConfig sets the threshold, typically once at process start. It is
// the classic name for SetLevel.
func BasicConfig(level Level) {
	SetLevel(level)
}
