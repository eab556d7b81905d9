package verbosity

import "go.uber.org/zap/zapcore"

// Zap returns the discrete zap level for l. zap's scale bottoms out at
// debug, so both LevelDebug and LevelTrace map to zapcore.DebugLevel.
// The second return is false when l is LevelOff.
func (l Level) Zap() (zapcore.Level, bool) {
	switch l {
	case LevelError:
		return zapcore.ErrorLevel, true
	case LevelWarn:
		return zapcore.WarnLevel, true
	case LevelInfo:
		return zapcore.InfoLevel, true
	case LevelDebug, LevelTrace:
		return zapcore.DebugLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

// ZapFilter returns l as a zapcore.LevelEnabler for core construction.
// LevelOff yields an enabler that admits nothing.
func (l Level) ZapFilter() zapcore.LevelEnabler {
	zl, ok := l.Zap()
	if !ok {
		return zapDisabled{}
	}
	return zl
}

type zapDisabled struct{}

func (zapDisabled) Enabled(zapcore.Level) bool { return false }

// ZapLevel returns the effective level as a discrete zap level; the
// second return is false when output is disabled entirely.
func (v *Verbosity) ZapLevel() (zapcore.Level, bool) {
	return v.Level().Zap()
}

// ZapFilter returns the effective level as a zapcore.LevelEnabler.
func (v *Verbosity) ZapFilter() zapcore.LevelEnabler {
	return v.Level().ZapFilter()
}
