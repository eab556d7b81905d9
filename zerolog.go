package verbosity

import "github.com/rs/zerolog"

// Zerolog returns the discrete zerolog level for l. The second return
// is false when l is LevelOff.
func (l Level) Zerolog() (zerolog.Level, bool) {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel, true
	case LevelWarn:
		return zerolog.WarnLevel, true
	case LevelInfo:
		return zerolog.InfoLevel, true
	case LevelDebug:
		return zerolog.DebugLevel, true
	case LevelTrace:
		return zerolog.TraceLevel, true
	default:
		return zerolog.Disabled, false
	}
}

// ZerologFilter returns l as a zerolog global or per-logger level,
// folding LevelOff into zerolog.Disabled.
func (l Level) ZerologFilter() zerolog.Level {
	zl, _ := l.Zerolog()
	return zl
}

// ZerologLevel returns the effective level as a discrete zerolog level;
// the second return is false when output is disabled entirely.
func (v *Verbosity) ZerologLevel() (zerolog.Level, bool) {
	return v.Level().Zerolog()
}

// ZerologFilter returns the effective level with LevelOff folded into
// zerolog.Disabled, suitable for zerolog.Logger.Level.
func (v *Verbosity) ZerologFilter() zerolog.Level {
	return v.Level().ZerologFilter()
}
