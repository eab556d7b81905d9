package verbosity

import "github.com/sirupsen/logrus"

// Logrus returns the discrete logrus level for l. The second return is
// false when l is LevelOff, which logrus cannot represent.
func (l Level) Logrus() (logrus.Level, bool) {
	switch l {
	case LevelError:
		return logrus.ErrorLevel, true
	case LevelWarn:
		return logrus.WarnLevel, true
	case LevelInfo:
		return logrus.InfoLevel, true
	case LevelDebug:
		return logrus.DebugLevel, true
	case LevelTrace:
		return logrus.TraceLevel, true
	default:
		return logrus.PanicLevel, false
	}
}

// LogrusFilter returns l as a logrus minimum level. logrus has no off
// state, so LevelOff folds into logrus.PanicLevel; a verbosity-driven
// CLI emits nothing below panic, which only a crash produces anyway.
func (l Level) LogrusFilter() logrus.Level {
	ll, _ := l.Logrus()
	return ll
}

// LogrusLevel returns the effective level as a discrete logrus level;
// the second return is false when output is disabled entirely.
func (v *Verbosity) LogrusLevel() (logrus.Level, bool) {
	return v.Level().Logrus()
}

// LogrusFilter returns the effective level as a logrus minimum level.
func (v *Verbosity) LogrusFilter() logrus.Level {
	return v.Level().LogrusFilter()
}
