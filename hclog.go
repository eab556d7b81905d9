package verbosity

import "github.com/hashicorp/go-hclog"

// HCLog returns l as an hclog level. hclog carries its own off state,
// so a single conversion covers both the discrete and filter roles.
func (l Level) HCLog() hclog.Level {
	switch l {
	case LevelError:
		return hclog.Error
	case LevelWarn:
		return hclog.Warn
	case LevelInfo:
		return hclog.Info
	case LevelDebug:
		return hclog.Debug
	case LevelTrace:
		return hclog.Trace
	default:
		return hclog.Off
	}
}

// HCLogLevel returns the effective level as an hclog level.
func (v *Verbosity) HCLogLevel() hclog.Level {
	return v.Level().HCLog()
}
