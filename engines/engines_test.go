package engines

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRuntime, "node"},
		{KindPackageManager, "npm"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDeclaredIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		declared Declared
		want     bool
	}{
		{"empty", Declared{}, true},
		{"runtime only", Declared{Runtime: ">=18"}, false},
		{"package manager only", Declared{PackageManager: ">=9"}, false},
		{"both", Declared{Runtime: ">=18", PackageManager: ">=9"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.declared.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
