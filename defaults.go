package verbosity

// DefaultProvider supplies the baseline level assumed when no verbosity
// flags are given. Applications embed one of the canonical providers
// below or supply their own.
type DefaultProvider interface {
	DefaultLevel() Level
}

// HelpProvider optionally customizes the usage text of the two flags.
// Providers that do not implement it get the canonical strings.
type HelpProvider interface {
	VerboseHelp() string
	QuietHelp() string
}

const (
	defaultVerboseHelp = "Increase logging verbosity"
	defaultQuietHelp   = "Decrease logging verbosity"
)

func verboseHelp(p DefaultProvider) string {
	if h, ok := p.(HelpProvider); ok {
		return h.VerboseHelp()
	}
	return defaultVerboseHelp
}

func quietHelp(p DefaultProvider) string {
	if h, ok := p.(HelpProvider); ok {
		return h.QuietHelp()
	}
	return defaultQuietHelp
}

// OffDefault is a DefaultProvider with a baseline of LevelOff.
type OffDefault struct{}

func (OffDefault) DefaultLevel() Level { return LevelOff }

// ErrorDefault is a DefaultProvider with a baseline of LevelError.
type ErrorDefault struct{}

func (ErrorDefault) DefaultLevel() Level { return LevelError }

// WarnDefault is a DefaultProvider with a baseline of LevelWarn.
type WarnDefault struct{}

func (WarnDefault) DefaultLevel() Level { return LevelWarn }

// InfoDefault is a DefaultProvider with a baseline of LevelInfo.
type InfoDefault struct{}

func (InfoDefault) DefaultLevel() Level { return LevelInfo }

// DebugDefault is a DefaultProvider with a baseline of LevelDebug.
type DebugDefault struct{}

func (DebugDefault) DefaultLevel() Level { return LevelDebug }

// TraceDefault is a DefaultProvider with a baseline of LevelTrace.
type TraceDefault struct{}

func (TraceDefault) DefaultLevel() Level { return LevelTrace }
