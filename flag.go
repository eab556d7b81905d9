package verbosity

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names registered by AddFlags.
const (
	FlagVerbose = "verbose"
	FlagQuiet   = "quiet"
)

// AddFlags registers -v/--verbose and -q/--quiet as repeatable count
// flags on the given flag set. The counts are written directly into v
// during parsing.
func (v *Verbosity) AddFlags(fs *pflag.FlagSet) {
	fs.CountVarP(&v.verbose, FlagVerbose, "v", verboseHelp(v.base))
	fs.CountVarP(&v.quiet, FlagQuiet, "q", quietHelp(v.base))
}

// InstallFlags registers the flags as persistent flags on a cobra
// command and marks them mutually exclusive, so "-v -q" is rejected at
// parse time. Conflict reporting stays in the parser layer; the level
// computation itself never fails.
func (v *Verbosity) InstallFlags(cmd *cobra.Command) {
	v.AddFlags(cmd.PersistentFlags())
	cmd.MarkFlagsMutuallyExclusive(FlagVerbose, FlagQuiet)
}

// Set implements pflag.Value, so a Level can also back an explicit
// --log-level flag next to the count flags.
func (l *Level) Set(name string) error {
	return l.UnmarshalText([]byte(name))
}

// Type implements pflag.Value.
func (l *Level) Type() string { return "level" }
