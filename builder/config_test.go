// Package builder contains unit tests for builderConfig and BuilderOption
// resolution.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithSymbNumb("v")).idFn(3); got != "v3" {
		t.Errorf("last option wins: expected \"v3\", got %q", got)
	}
}

// TestScopeHelpers checks id/named under a scope.
func TestScopeHelpers(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs())
	cfg.scope = "s/"
	if got := cfg.id(1); got != "s/B" {
		t.Errorf("id: expected \"s/B\", got %q", got)
	}
	if got := cfg.named("Center"); got != "s/Center" {
		t.Errorf("named: expected \"s/Center\", got %q", got)
	}
}

// TestPartitionPrefix checks defaults and the empty-string fallback.
func TestPartitionPrefix(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("X", ""))
	if cfg.leftPrefix != "X" || cfg.rightPrefix != defaultRightPrefix {
		t.Errorf("WithPartitionPrefix: got %q/%q", cfg.leftPrefix, cfg.rightPrefix)
	}
}

// TestRandOptions checks that WithSeed and WithRand attach an RNG and that
// equal seeds draw equal sequences.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Fatal("default config must not carry an RNG")
	}
	a := newBuilderConfig(WithSeed(9)).rng.Int63()
	b := newBuilderConfig(WithSeed(9)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: equal seeds drew %d and %d", a, b)
	}
	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithRand(r)).rng != r {
		t.Errorf("WithRand: RNG not attached")
	}
}

// TestOptionPanics covers the nil guards.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
