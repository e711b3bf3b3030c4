package starfield

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// SceneParams are the named scene parameters the time-of-day table
// interpolates: background tint, how many stars a freshly built field should
// have, and the drift speed of the parallax backdrop.
type SceneParams struct {
	Background Color
	StarCount  int
	Drift      float64
}

// SceneEntry is one keyframe of the table, keyed by hour of day.
type SceneEntry struct {
	Hour       float64 `yaml:"hour"`
	Background string  `yaml:"background"` // hex color, e.g. "#0a0a18"
	Stars      int     `yaml:"stars"`
	Drift      float64 `yaml:"drift"`

	bg Color // parsed from Background at load time
}

type sceneFile struct {
	Scenes []SceneEntry `yaml:"scenes"`
}

// SceneTable is a pure lookup/interpolation utility: given a time of day it
// linearly interpolates scene parameters between the surrounding entries,
// wrapping across midnight. It has no coupling to the particle core.
type SceneTable struct {
	entries []SceneEntry
}

// LoadSceneTable parses a YAML scene table. Entries are sorted by hour;
// hours must lie in [0, 24).
func LoadSceneTable(data []byte) (*SceneTable, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scene table: %w", err)
	}
	if len(file.Scenes) == 0 {
		return nil, fmt.Errorf("parse scene table: no scenes")
	}
	for i := range file.Scenes {
		e := &file.Scenes[i]
		if e.Hour < 0 || e.Hour >= 24 {
			return nil, fmt.Errorf("parse scene table: hour %v out of range [0, 24)", e.Hour)
		}
		bg, err := parseHexColor(e.Background)
		if err != nil {
			return nil, fmt.Errorf("parse scene table: entry at hour %v: %w", e.Hour, err)
		}
		e.bg = bg
	}
	sort.Slice(file.Scenes, func(i, j int) bool {
		return file.Scenes[i].Hour < file.Scenes[j].Hour
	})
	return &SceneTable{entries: file.Scenes}, nil
}

// DefaultSceneTable returns the built-in table: deep night, a cold pre-dawn,
// a washed-out day with fewer visible stars, and a warm dusk.
func DefaultSceneTable() *SceneTable {
	return &SceneTable{entries: []SceneEntry{
		{Hour: 0, Stars: 450, Drift: 0.5, bg: Color{0.01, 0.01, 0.04, 1}},
		{Hour: 5, Stars: 400, Drift: 0.8, bg: Color{0.03, 0.04, 0.10, 1}},
		{Hour: 12, Stars: 250, Drift: 1.2, bg: Color{0.07, 0.09, 0.18, 1}},
		{Hour: 19, Stars: 380, Drift: 0.9, bg: Color{0.05, 0.03, 0.09, 1}},
	}}
}

// ParamsAt returns the scene parameters for an hour of day in [0, 24),
// linearly interpolated between the two surrounding entries. Hours outside
// the range wrap. A single-entry table is constant.
func (t *SceneTable) ParamsAt(hour float64) SceneParams {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}

	n := len(t.entries)
	if n == 1 {
		e := t.entries[0]
		return SceneParams{Background: e.bg, StarCount: e.Stars, Drift: e.Drift}
	}

	// Find the last entry at or before hour; before the first entry the
	// bracketing pair wraps around midnight from the last entry.
	prev := n - 1
	for i := n - 1; i >= 0; i-- {
		if t.entries[i].Hour <= hour {
			prev = i
			break
		}
	}
	next := (prev + 1) % n

	a, b := t.entries[prev], t.entries[next]
	span := b.Hour - a.Hour
	elapsed := hour - a.Hour
	if span <= 0 { // wrapped across midnight
		span += 24
	}
	if elapsed < 0 {
		elapsed += 24
	}
	frac := elapsed / span

	return SceneParams{
		Background: Color{
			R: lerp(a.bg.R, b.bg.R, frac),
			G: lerp(a.bg.G, b.bg.G, frac),
			B: lerp(a.bg.B, b.bg.B, frac),
			A: 1,
		},
		StarCount: int(math.Round(lerp(float64(a.Stars), float64(b.Stars), frac))),
		Drift:     lerp(a.Drift, b.Drift, frac),
	}
}

// ParamsNow returns the parameters for the wall-clock time of day.
func (t *SceneTable) ParamsNow() SceneParams {
	now := time.Now()
	hour := float64(now.Hour()) + float64(now.Minute())/60 + float64(now.Second())/3600
	return t.ParamsAt(hour)
}

// parseHexColor parses "#rgb" or "#rrggbb" into a Color with full alpha.
func parseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	hex := s[1:]

	nibble := func(c byte) (int, bool) {
		switch {
		case c >= '0' && c <= '9':
			return int(c - '0'), true
		case c >= 'a' && c <= 'f':
			return int(c-'a') + 10, true
		case c >= 'A' && c <= 'F':
			return int(c-'A') + 10, true
		}
		return 0, false
	}

	var r, g, b int
	switch len(hex) {
	case 3:
		for i, dst := range []*int{&r, &g, &b} {
			v, ok := nibble(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("invalid hex color %q", s)
			}
			*dst = v*16 + v
		}
	case 6:
		for i, dst := range []*int{&r, &g, &b} {
			hi, ok1 := nibble(hex[i*2])
			lo, ok2 := nibble(hex[i*2+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("invalid hex color %q", s)
			}
			*dst = hi*16 + lo
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}, nil
}
