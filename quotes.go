package starfield

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Quote is one piece of displayable content an interactive star can reveal.
// The particle core never sees these; the host maps a picked star to a quote.
type Quote struct {
	Text   string   `yaml:"text"`
	Author string   `yaml:"author,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

type quoteFile struct {
	Quotes []Quote `yaml:"quotes"`
}

// LoadQuotes parses a YAML quote list.
func LoadQuotes(data []byte) ([]Quote, error) {
	var file quoteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse quotes: %w", err)
	}
	if len(file.Quotes) == 0 {
		return nil, fmt.Errorf("parse quotes: no quotes")
	}
	return file.Quotes, nil
}

// FilterByTag returns the quotes carrying the given tag. An empty tag
// returns the input unchanged.
func FilterByTag(quotes []Quote, tag string) []Quote {
	if tag == "" {
		return quotes
	}
	var out []Quote
	for _, q := range quotes {
		for _, t := range q.Tags {
			if t == tag {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// Storage keys for the persisted shown-set.
const (
	quotesObject  = "quotes"
	shownProperty = "shown"
)

// QuotePicker picks random quotes without repetition: each quote is shown
// once before any repeats, then the cycle resets. The shown-set optionally
// persists across runs through a gdata manager; a nil manager degrades to
// in-memory tracking.
type QuotePicker struct {
	quotes []Quote
	shown  map[int]bool
	rng    *rand.Rand
	store  *gdata.Manager
}

// NewQuotePicker creates a picker over the given quotes. rng may be nil for
// a time-seeded source; store may be nil for in-memory tracking. A persisted
// shown-set from a previous run is loaded best-effort: a missing or
// unreadable set just means starting fresh.
func NewQuotePicker(quotes []Quote, rng *rand.Rand, store *gdata.Manager) *QuotePicker {
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixMicro())))
	}
	p := &QuotePicker{
		quotes: quotes,
		shown:  make(map[int]bool),
		rng:    rng,
		store:  store,
	}
	p.load()
	return p
}

// Next returns a random quote that has not been shown this cycle, marks it
// shown, and persists the shown-set. When every quote has been shown the
// cycle resets first. Returns nil for an empty pool.
func (p *QuotePicker) Next() *Quote {
	if len(p.quotes) == 0 {
		return nil
	}
	if len(p.shown) >= len(p.quotes) {
		p.Reset()
	}

	// Pick uniformly among the unseen by index.
	remaining := len(p.quotes) - len(p.shown)
	nth := p.rng.IntN(remaining)
	for i := range p.quotes {
		if p.shown[i] {
			continue
		}
		if nth == 0 {
			p.shown[i] = true
			p.save()
			return &p.quotes[i]
		}
		nth--
	}
	return nil // unreachable
}

// Remaining returns how many quotes are left in the current cycle.
func (p *QuotePicker) Remaining() int {
	return len(p.quotes) - len(p.shown)
}

// Reset clears the shown-set and persists the empty set.
func (p *QuotePicker) Reset() {
	p.shown = make(map[int]bool)
	p.save()
}

// load restores the shown-set from storage. Best-effort: any failure leaves
// the picker starting a fresh cycle.
func (p *QuotePicker) load() {
	if p.store == nil || !p.store.ObjectPropExists(quotesObject, shownProperty) {
		return
	}
	data, err := p.store.LoadObjectProp(quotesObject, shownProperty)
	if err != nil {
		return
	}
	var indices []int
	if err := yaml.Unmarshal(data, &indices); err != nil {
		return
	}
	for _, i := range indices {
		if i >= 0 && i < len(p.quotes) {
			p.shown[i] = true
		}
	}
}

// save persists the shown-set. Best-effort: a write failure costs nothing
// but dedup across the next run.
func (p *QuotePicker) save() {
	if p.store == nil {
		return
	}
	indices := make([]int, 0, len(p.shown))
	for i := range p.shown {
		indices = append(indices, i)
	}
	data, err := yaml.Marshal(indices)
	if err != nil {
		return
	}
	_ = p.store.SaveObjectProp(quotesObject, shownProperty, data)
}

// QuoteDisplay manages the fade lifecycle of the currently shown quote:
// fade in on Show, hold, fade out on Hide. Hosts read Alpha each frame to
// composite the quote panel. There is no global animation manager — call
// Update yourself each tick.
type QuoteDisplay struct {
	quote *Quote
	tween *gween.Tween
	alpha float64
}

// Show starts fading the given quote in from the current alpha.
func (d *QuoteDisplay) Show(q *Quote, duration float32) {
	d.quote = q
	d.tween = gween.New(float32(d.alpha), 1, duration, ease.OutQuad)
}

// Hide starts fading the current quote out from the current alpha.
func (d *QuoteDisplay) Hide(duration float32) {
	d.tween = gween.New(float32(d.alpha), 0, duration, ease.InQuad)
}

// Update advances the active fade by dt seconds. Once a fade-out completes
// the displayed quote is released.
func (d *QuoteDisplay) Update(dt float32) {
	if d.tween == nil {
		return
	}
	v, finished := d.tween.Update(dt)
	d.alpha = float64(v)
	if finished {
		d.tween = nil
		if d.alpha == 0 {
			d.quote = nil
		}
	}
}

// Alpha returns the current panel opacity in [0, 1].
func (d *QuoteDisplay) Alpha() float64 {
	return d.alpha
}

// Quote returns the quote being displayed, or nil when fully hidden.
func (d *QuoteDisplay) Quote() *Quote {
	return d.quote
}
