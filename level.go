package verbosity

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level specifies how much logging output is wanted, from none at all
// to full trace output.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota

	// LevelError shows errors only.
	LevelError

	// LevelWarn shows warnings and errors.
	LevelWarn

	// LevelInfo shows informational messages and above.
	LevelInfo

	// LevelDebug shows debugging information and above.
	LevelDebug

	// LevelTrace is the most detailed level.
	LevelTrace
)

// maxRank is the rank of the most verbose level.
const maxRank = int(LevelTrace)

// levelFromRank converts a numeric rank back to a Level, saturating at
// both ends of the scale. Out-of-range input clamps, it never fails.
func levelFromRank(rank int) Level {
	switch {
	case rank <= 0:
		return LevelOff
	case rank >= maxRank:
		return LevelTrace
	default:
		return Level(rank)
	}
}

// offsetBy applies a signed offset to the level, clamping the result to
// the scale.
func (l Level) offsetBy(offset int) Level {
	return levelFromRank(int(l) + offset)
}

// String returns the lowercase name of the level. Values outside the
// scale clamp to the nearest end before rendering.
func (l Level) String() string {
	switch levelFromRank(int(l)) {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "trace"
	}
}

// ParseLevel parses a level name. It is case-insensitive and accepts
// the common long spellings as aliases.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "off":
		return LevelOff, nil
	case "error", "err":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info", "information":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelOff, fmt.Errorf("unknown level: %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler so a Level serializes
// as its lowercase name, e.g. in a JSON configuration field.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML serializes the level as a plain scalar string.
func (l Level) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(name))
}
