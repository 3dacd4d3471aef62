package catalog

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/enginecheck/enginecheck/engines"
)

func TestNewFiltersAndSorts(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			"already sorted",
			[]string{"18.0.0", "19.0.0", "20.0.0"},
			[]string{"18.0.0", "19.0.0", "20.0.0"},
		},
		{
			"unsorted input",
			[]string{"20.0.0", "18.0.0", "19.0.0"},
			[]string{"18.0.0", "19.0.0", "20.0.0"},
		},
		{
			"semver precedence not lexical",
			[]string{"10.0.0", "9.0.0", "2.0.0"},
			[]string{"2.0.0", "9.0.0", "10.0.0"},
		},
		{
			"aliases dropped",
			[]string{"18.0.0", "lts/hydrogen", "latest", "20.0.0"},
			[]string{"18.0.0", "20.0.0"},
		},
		{
			"duplicates dropped",
			[]string{"18.0.0", "18.0.0", "19.0.0"},
			[]string{"18.0.0", "19.0.0"},
		},
		{
			"prerelease sorts before release",
			[]string{"20.0.0", "20.0.0-rc.1"},
			[]string{"20.0.0-rc.1", "20.0.0"},
		},
		{
			"all invalid",
			[]string{"latest", "lts/iron", "not-a-version"},
			[]string{},
		},
		{
			"empty input",
			nil,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.raw).Strings()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New(%v).Strings() = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewOrderIndependent(t *testing.T) {
	raw := []string{"18.0.0", "latest", "19.5.0", "20.0.0-rc.1", "bogus", "19.0.0", "20.0.0"}
	want := New(raw).Strings()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), raw...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := New(shuffled).Strings()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("New(%v).Strings() = %v, want %v", shuffled, got, want)
		}
	}
}

func TestVersionsReturnsCopy(t *testing.T) {
	c := New([]string{"18.0.0", "19.0.0"})

	vs := c.Versions()
	vs[0], vs[1] = vs[1], vs[0]

	if got := c.Strings(); got[0] != "18.0.0" {
		t.Errorf("catalog mutated through Versions(): %v", got)
	}
}

func TestDefaultCatalogs(t *testing.T) {
	for _, kind := range []engines.Kind{engines.KindRuntime, engines.KindPackageManager} {
		c := Default(kind)
		if c.Len() == 0 {
			t.Fatalf("Default(%v) is empty", kind)
		}

		// Aliases must not survive construction.
		for _, s := range c.Strings() {
			if s == "latest" || s == "lts/hydrogen" {
				t.Errorf("Default(%v) retained alias %q", kind, s)
			}
		}

		versions := c.Versions()
		for i := 1; i < len(versions); i++ {
			if !versions[i].GreaterThan(versions[i-1]) {
				t.Errorf("Default(%v) not strictly ascending at %d: %s, %s",
					kind, i, versions[i-1], versions[i])
			}
		}
	}
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	if Default(engines.KindRuntime) != Default(engines.KindRuntime) {
		t.Error("Default(KindRuntime) built more than once")
	}
}
