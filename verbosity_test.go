package verbosity

import "testing"

func TestLevelWithErrorBaseline(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    Level
	}{
		{0, 0, LevelError},
		{1, 0, LevelWarn},
		{2, 0, LevelInfo},
		{3, 0, LevelDebug},
		{4, 0, LevelTrace},
		{5, 0, LevelTrace},
		{6, 0, LevelTrace},
		{255, 0, LevelTrace},
		{0, 1, LevelOff},
		{0, 2, LevelOff},
		{0, 255, LevelOff},
		{255, 255, LevelError},
	}

	for _, tc := range testCases {
		v := NewCounts(ErrorDefault{}, tc.verbose, tc.quiet)
		if got := v.Level(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: got %v, want %v", tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestLevelWithOffBaseline(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    Level
	}{
		{0, 0, LevelOff},
		{1, 0, LevelError},
		{2, 0, LevelWarn},
		{3, 0, LevelInfo},
		{4, 0, LevelDebug},
		{5, 0, LevelTrace},
		{255, 0, LevelTrace},
		{0, 1, LevelOff},
		{0, 255, LevelOff},
		{255, 255, LevelOff},
	}

	for _, tc := range testCases {
		v := NewCounts(OffDefault{}, tc.verbose, tc.quiet)
		if got := v.Level(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: got %v, want %v", tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestLevelWithInfoBaseline(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    Level
	}{
		{0, 0, LevelInfo},
		{1, 0, LevelDebug},
		{2, 0, LevelTrace},
		{3, 0, LevelTrace},
		{0, 1, LevelWarn},
		{0, 2, LevelError},
		{0, 3, LevelOff},
		{0, 4, LevelOff},
		{255, 255, LevelInfo},
	}

	for _, tc := range testCases {
		v := NewCounts(InfoDefault{}, tc.verbose, tc.quiet)
		if got := v.Level(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: got %v, want %v", tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestLevelWithTraceBaseline(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    Level
	}{
		{0, 0, LevelTrace},
		{255, 0, LevelTrace},
		{0, 1, LevelDebug},
		{0, 2, LevelInfo},
		{0, 3, LevelWarn},
		{0, 4, LevelError},
		{0, 5, LevelOff},
		{0, 255, LevelOff},
	}

	for _, tc := range testCases {
		v := NewCounts(TraceDefault{}, tc.verbose, tc.quiet)
		if got := v.Level(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: got %v, want %v", tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestLevelMonotonicInVerbose(t *testing.T) {
	bases := []DefaultProvider{
		OffDefault{}, ErrorDefault{}, WarnDefault{},
		InfoDefault{}, DebugDefault{}, TraceDefault{},
	}

	for _, base := range bases {
		prev := NewCounts(base, 0, 0).Level()
		for verbose := 1; verbose <= 8; verbose++ {
			cur := NewCounts(base, verbose, 0).Level()
			if cur < prev {
				t.Errorf("base %v: level decreased from %v to %v at verbose=%d",
					base.DefaultLevel(), prev, cur, verbose)
			}
			prev = cur
		}
	}
}

func TestLevelMonotonicInQuiet(t *testing.T) {
	bases := []DefaultProvider{
		OffDefault{}, ErrorDefault{}, WarnDefault{},
		InfoDefault{}, DebugDefault{}, TraceDefault{},
	}

	for _, base := range bases {
		prev := NewCounts(base, 0, 0).Level()
		for quiet := 1; quiet <= 8; quiet++ {
			cur := NewCounts(base, 0, quiet).Level()
			if cur > prev {
				t.Errorf("base %v: level increased from %v to %v at quiet=%d",
					base.DefaultLevel(), prev, cur, quiet)
			}
			prev = cur
		}
	}
}

func TestEqualCountsCancel(t *testing.T) {
	bases := []DefaultProvider{
		OffDefault{}, ErrorDefault{}, WarnDefault{},
		InfoDefault{}, DebugDefault{}, TraceDefault{},
	}

	for _, base := range bases {
		for _, count := range []int{0, 1, 5, 255} {
			v := NewCounts(base, count, count)
			if got := v.Level(); got != base.DefaultLevel() {
				t.Errorf("base %v count %d: got %v, want baseline",
					base.DefaultLevel(), count, got)
			}
		}
	}
}

func TestNewDefaultsToError(t *testing.T) {
	if got := New(nil).Level(); got != LevelError {
		t.Errorf("New(nil).Level() = %v, want %v", got, LevelError)
	}
}

func TestIsPresent(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    bool
	}{
		{0, 0, false},
		{1, 0, true},
		{0, 1, true},
		{3, 2, true},
	}

	for _, tc := range testCases {
		v := NewCounts(nil, tc.verbose, tc.quiet)
		if got := v.IsPresent(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: IsPresent() = %v, want %v",
				tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestIsSilent(t *testing.T) {
	if v := NewCounts(ErrorDefault{}, 0, 1); !v.IsSilent() {
		t.Error("error baseline with one quiet should be silent")
	}
	if v := NewCounts(ErrorDefault{}, 0, 0); v.IsSilent() {
		t.Error("error baseline with no flags should not be silent")
	}
	if v := NewCounts(OffDefault{}, 0, 0); !v.IsSilent() {
		t.Error("off baseline with no flags should be silent")
	}
}

func TestVerbosityString(t *testing.T) {
	testCases := []struct {
		verbose int
		quiet   int
		want    string
	}{
		{0, 1, "off"},
		{0, 0, "error"},
		{1, 0, "warn"},
		{2, 0, "info"},
		{3, 0, "debug"},
		{4, 0, "trace"},
	}

	for _, tc := range testCases {
		v := NewCounts(ErrorDefault{}, tc.verbose, tc.quiet)
		if got := v.String(); got != tc.want {
			t.Errorf("verbose=%d quiet=%d: String() = %q, want %q",
				tc.verbose, tc.quiet, got, tc.want)
		}
	}
}

func TestCanonicalDefaults(t *testing.T) {
	testCases := []struct {
		base DefaultProvider
		want Level
	}{
		{OffDefault{}, LevelOff},
		{ErrorDefault{}, LevelError},
		{WarnDefault{}, LevelWarn},
		{InfoDefault{}, LevelInfo},
		{DebugDefault{}, LevelDebug},
		{TraceDefault{}, LevelTrace},
	}

	for _, tc := range testCases {
		if got := tc.base.DefaultLevel(); got != tc.want {
			t.Errorf("%T.DefaultLevel() = %v, want %v", tc.base, got, tc.want)
		}
	}
}
