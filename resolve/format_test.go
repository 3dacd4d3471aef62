package resolve

import (
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name string
		min  string
		max  string
		want string
	}{
		{"both absent", "", "", ""},
		{"minimum only", "12.0.0", "", ">=12.0.0"},
		{"maximum only", "", "16.0.0", "<=16.0.0"},
		{"both present", "12.0.0", "16.0.0", ">=12.0.0 <=16.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.min, tt.max); got != tt.want {
				t.Errorf("FormatRange(%q, %q) = %q, want %q", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestRangeFormat(t *testing.T) {
	r := Range{
		Min: semver.MustParse("18.0.0"),
		Max: semver.MustParse("19.5.0"),
	}
	if got := r.Format(); got != ">=18.0.0 <=19.5.0" {
		t.Errorf("Format() = %q, want %q", got, ">=18.0.0 <=19.5.0")
	}

	if got := (Range{}).Format(); got != "" {
		t.Errorf("empty Range Format() = %q, want empty", got)
	}
}
