package verbosity

import "github.com/go-logr/logr"

// logr expresses verbosity as non-negative V-levels where V(0) is info.
// The conventional mapping is V(0)=info, V(1)=debug, V(2)+=trace; warn
// does not exist and errors bypass V-filtering entirely.

// LogrVerbosity returns the highest logr V-level the setting admits.
// Levels below LevelInfo report 0, since logr cannot filter info-level
// records away through verbosity alone; the second return is false when
// output is disabled entirely.
func (l Level) LogrVerbosity() (int, bool) {
	if l == LevelOff {
		return 0, false
	}
	if l <= LevelInfo {
		return 0, true
	}
	return int(l) - int(LevelInfo), true
}

// logrLevel converts a message's V-level to the scale tier it occupies.
func logrLevel(v int) Level {
	switch v {
	case 0:
		return LevelInfo
	case 1:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// LogrVerbosity returns the effective setting as a logr V-level.
func (v *Verbosity) LogrVerbosity() (int, bool) {
	return v.Level().LogrVerbosity()
}

// FilterLogr returns a copy of logger that drops records more verbose
// than the effective level. Error records pass unless the effective
// level is LevelOff.
func (v *Verbosity) FilterLogr(logger logr.Logger) logr.Logger {
	return logr.New(&logrSink{sink: logger.GetSink(), max: v.Level()})
}

// logrSink filters a wrapped logr.LogSink by effective level.
type logrSink struct {
	sink logr.LogSink
	max  Level
}

func (s *logrSink) Init(info logr.RuntimeInfo) {
	info.CallDepth++
	s.sink.Init(info)
}

func (s *logrSink) Enabled(level int) bool {
	if s.max == LevelOff {
		return false
	}
	return logrLevel(level) <= s.max && s.sink.Enabled(level)
}

func (s *logrSink) Info(level int, msg string, keysAndValues ...any) {
	if s.Enabled(level) {
		s.sink.Info(level, msg, keysAndValues...)
	}
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	if s.max >= LevelError {
		s.sink.Error(err, msg, keysAndValues...)
	}
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &logrSink{sink: s.sink.WithValues(keysAndValues...), max: s.max}
}

func (s *logrSink) WithName(name string) logr.LogSink {
	return &logrSink{sink: s.sink.WithName(name), max: s.max}
}
