// Package verbosity computes an effective logging level from repeatable
// --verbose and --quiet command-line flags.
//
// A Verbosity is embedded in a CLI's flag set; each -v raises the
// effective level one step and each -q lowers it, starting from a
// baseline chosen by a DefaultProvider. The result clamps to the scale
// LevelOff..LevelTrace and converts to the level types of the common
// logging backends (slog, logr, zap, zerolog, hclog, logrus).
package verbosity

// Verbosity holds the occurrence counts of the --verbose and --quiet
// flags together with the baseline provider. Values are written once by
// flag parsing and never mutated by this package afterward, so a
// Verbosity is safe to share between goroutines.
type Verbosity struct {
	verbose int
	quiet   int
	base    DefaultProvider
}

// New creates a Verbosity with the given baseline provider. A nil base
// defaults to ErrorDefault, matching a CLI that only reports errors
// unless asked for more.
func New(base DefaultProvider) *Verbosity {
	if base == nil {
		base = ErrorDefault{}
	}
	return &Verbosity{base: base}
}

// NewCounts creates a Verbosity with explicit flag counts, bypassing
// flag parsing. Negative counts are tolerated; the level computation
// clamps regardless.
func NewCounts(base DefaultProvider, verbose, quiet int) *Verbosity {
	v := New(base)
	v.verbose = verbose
	v.quiet = quiet
	return v
}

// VerboseCount reports how many times the --verbose flag was given.
func (v *Verbosity) VerboseCount() int { return v.verbose }

// QuietCount reports how many times the --quiet flag was given.
func (v *Verbosity) QuietCount() int { return v.quiet }

// IsPresent reports whether either flag was given at all.
func (v *Verbosity) IsPresent() bool {
	return v.verbose != 0 || v.quiet != 0
}

// Level returns the effective level after applying the flag counts to
// the baseline. The computation is pure: offsets past either end of the
// scale saturate at LevelOff or LevelTrace rather than wrapping.
func (v *Verbosity) Level() Level {
	return v.base.DefaultLevel().offsetBy(v.verbose - v.quiet)
}

// IsSilent reports whether the user requested complete silence, i.e.
// the effective level is LevelOff.
func (v *Verbosity) IsSilent() bool {
	return v.Level() == LevelOff
}

// String returns the lowercase name of the effective level.
func (v *Verbosity) String() string {
	return v.Level().String()
}
