package verbosity

import "log/slog"

// slog has no trace or off tiers, so both are defined relative to its
// scale: trace sits one step below debug, and a minimum above error
// admits nothing.
const (
	SlogLevelTrace slog.Level = slog.LevelDebug - 4
	SlogLevelOff   slog.Level = slog.LevelError + 4
)

// Slog returns the discrete slog level for l. The second return is
// false when l is LevelOff, which has no slog representation.
func (l Level) Slog() (slog.Level, bool) {
	switch l {
	case LevelError:
		return slog.LevelError, true
	case LevelWarn:
		return slog.LevelWarn, true
	case LevelInfo:
		return slog.LevelInfo, true
	case LevelDebug:
		return slog.LevelDebug, true
	case LevelTrace:
		return SlogLevelTrace, true
	default:
		return SlogLevelOff, false
	}
}

// SlogFilter returns l as a minimum-level filter for a slog handler,
// folding LevelOff into SlogLevelOff.
func (l Level) SlogFilter() slog.Level {
	sl, _ := l.Slog()
	return sl
}

// FromSlog converts a slog level to the nearest Level. Levels between
// the named slog constants round down to the less verbose tier.
func FromSlog(sl slog.Level) Level {
	switch {
	case sl >= SlogLevelOff:
		return LevelOff
	case sl >= slog.LevelError:
		return LevelError
	case sl >= slog.LevelWarn:
		return LevelWarn
	case sl >= slog.LevelInfo:
		return LevelInfo
	case sl >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// SlogLevel returns the effective level as a discrete slog level; the
// second return is false when output is disabled entirely.
func (v *Verbosity) SlogLevel() (slog.Level, bool) {
	return v.Level().Slog()
}

// SlogLeveler returns the effective level in a form usable directly as
// slog.HandlerOptions.Level.
func (v *Verbosity) SlogLeveler() slog.Leveler {
	return v.Level().SlogFilter()
}
