package prefixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-compat-utils/prefixed"
)

func TestCandidatesOrder(t *testing.T) {
	r := prefixed.NewResolver(prefixed.Prefixes()...)
	want := []string{
		"requestFullscreen",
		"webkitRequestFullscreen",
		"mozRequestFullscreen",
		"msRequestFullscreen",
		"oRequestFullscreen",
	}
	assert.Equal(t, want, r.Candidates("requestFullscreen"))
}

func TestPrefixesReturnsCopy(t *testing.T) {
	p := prefixed.Prefixes()
	p[0] = "mutated"
	assert.Equal(t, "", prefixed.Prefixes()[0], "default order must be immutable")
}

// ─── Map hosts ────────────────────────────────────────────────────────────────

func TestResolveUnprefixedCallable(t *testing.T) {
	called := 0
	host := map[string]any{
		"requestFullscreen": func() string { called++; return "ok" },
	}
	m, ok := prefixed.Resolve(host, "requestFullscreen")
	require.True(t, ok)
	assert.Equal(t, "requestFullscreen", m.Name())
	require.True(t, m.Callable())

	fn := m.Func()
	assert.Equal(t, "ok", fn())
	assert.Equal(t, 1, called)
}

func TestResolveVendorPrefixFallback(t *testing.T) {
	called := 0
	host := map[string]any{
		"mozRequestFullscreen": func() string { called++; return "ok" },
	}
	m, ok := prefixed.Resolve(host, "requestFullscreen")
	require.True(t, ok)
	assert.Equal(t, "mozRequestFullscreen", m.Name())

	fn := m.Func()
	assert.Equal(t, "ok", fn())
	assert.Equal(t, 1, called, "prefixed variant must behave identically to the unprefixed case")
}

func TestResolveUnsupportedCapability(t *testing.T) {
	host := map[string]any{"somethingElse": 1}
	_, ok := prefixed.Resolve(host, "requestFullscreen")
	assert.False(t, ok)

	got, ok := prefixed.Apply(host, "requestFullscreen")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResolveStopsAtFirstCandidate(t *testing.T) {
	// The bare name is present but not callable; the prefixed callable
	// further down the list must NOT be consulted.
	host := map[string]any{
		"requestFullscreen":    "just a string",
		"mozRequestFullscreen": func() string { return "never" },
	}
	m, ok := prefixed.Resolve(host, "requestFullscreen")
	require.True(t, ok)
	assert.Equal(t, "requestFullscreen", m.Name())
	assert.False(t, m.Callable())
	assert.Equal(t, "just a string", m.Get())
}

func TestCallForwardsArguments(t *testing.T) {
	host := map[string]any{
		"vibrate": func(ms int, strong bool) int {
			if strong {
				return ms * 2
			}
			return ms
		},
	}
	m, ok := prefixed.Resolve(host, "vibrate")
	require.True(t, ok)
	assert.Equal(t, 40, m.Call(20, true))
	assert.Equal(t, 20, m.Func()(20, false))
}

func TestCallVariadicAndMultiResult(t *testing.T) {
	host := map[string]any{
		"sum": func(ns ...int) (int, bool) {
			total := 0
			for _, n := range ns {
				total += n
			}
			return total, true
		},
	}
	m, ok := prefixed.Resolve(host, "sum")
	require.True(t, ok)
	assert.Equal(t, 6, m.Call(1, 2, 3), "first result is the call's result")
}

// ─── Struct hosts ─────────────────────────────────────────────────────────────

type screen struct {
	entered int
	Depth   int
}

func (s *screen) RequestFullscreen() string {
	s.entered++
	return "fullscreen"
}

func TestResolveStructMethodBindsReceiver(t *testing.T) {
	s := &screen{}
	m, ok := prefixed.Resolve(s, "requestFullscreen")
	require.True(t, ok)
	assert.Equal(t, "RequestFullscreen", m.Name())
	require.True(t, m.Callable())

	fn := m.Func()
	assert.Equal(t, "fullscreen", fn())
	assert.Equal(t, "fullscreen", fn())
	assert.Equal(t, 2, s.entered, "calls must hit the resolved host")
}

type legacyScreen struct {
	WebkitRequestFullscreen func() string
}

func TestResolveExportedFieldSpelling(t *testing.T) {
	host := legacyScreen{WebkitRequestFullscreen: func() string { return "legacy" }}
	m, ok := prefixed.Resolve(host, "requestFullscreen")
	require.True(t, ok)
	assert.Equal(t, "WebkitRequestFullscreen", m.Name())
	assert.Equal(t, "legacy", m.Call())
}

type base struct{ Vendor string }

func (base) OCancelFullscreen() string { return "cancelled" }

type derived struct{ base }

func TestResolvePromotedMembers(t *testing.T) {
	d := derived{base{Vendor: "opera"}}

	m, ok := prefixed.Resolve(d, "cancelFullscreen")
	require.True(t, ok, "promoted methods are inherited names and must count")
	assert.Equal(t, "cancelled", m.Call())

	m, ok = prefixed.Resolve(d, "vendor")
	require.True(t, ok, "promoted fields must count")
	assert.Equal(t, "opera", m.Get())
}

func TestSetStructField(t *testing.T) {
	s := &screen{}
	m, ok := prefixed.Resolve(s, "depth")
	require.True(t, ok)
	assert.True(t, m.Set(24))
	assert.Equal(t, 24, s.Depth)
}

func TestSetRefusedOnValueHostField(t *testing.T) {
	m, ok := prefixed.Resolve(screen{}, "depth")
	require.True(t, ok)
	assert.False(t, m.Set(24), "fields of a non-pointer host are not assignable")
}

func TestResolveNilAndScalarHosts(t *testing.T) {
	_, ok := prefixed.Resolve(nil, "anything")
	assert.False(t, ok)
	_, ok = prefixed.Resolve(42, "anything")
	assert.False(t, ok)
	_, ok = prefixed.Resolve((*screen)(nil), "requestFullscreen")
	assert.False(t, ok)
}

// ─── Custom resolvers ─────────────────────────────────────────────────────────

func TestCustomPrefixOrder(t *testing.T) {
	r := prefixed.NewResolver("ms", "")
	host := map[string]any{
		"pointerEnabled":   false,
		"msPointerEnabled": true,
	}
	m, ok := r.Resolve(host, "pointerEnabled")
	require.True(t, ok)
	assert.Equal(t, "msPointerEnabled", m.Name())
	assert.Equal(t, true, m.Get())
}
