package binding

// TextValue is an in-memory Text sink.
type TextValue struct {
	value string
	set   bool
}

func (t *TextValue) SetText(s string) { t.value, t.set = s, true }

// Value returns the last written text.
func (t *TextValue) Value() string { return t.value }

// IsSet reports whether the sink was ever written.
func (t *TextValue) IsSet() bool { return t.set }

// ProgressValue is an in-memory Progress sink.
type ProgressValue struct {
	percent float64
}

func (p *ProgressValue) SetPercent(v float64) { p.percent = v }

// Percent returns the last written fill.
func (p *ProgressValue) Percent() float64 { return p.percent }

// IconValue is an in-memory Icon sink.
type IconValue struct {
	playing bool
}

func (i *IconValue) SetPlaying(playing bool) { i.playing = playing }

// Playing returns the last written state.
func (i *IconValue) Playing() bool { return i.playing }

// FlagValue is an in-memory Flag sink.
type FlagValue struct {
	active bool
}

func (f *FlagValue) SetActive(active bool) { f.active = active }

// Active returns the last written state.
func (f *FlagValue) Active() bool { return f.active }

// MarkerSet tracks which item of a group is active.
type MarkerSet struct {
	active int
	marked bool
}

// NewMarkerSet returns a set with nothing marked.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{active: -1}
}

func (m *MarkerSet) MarkActive(index int) {
	m.active, m.marked = index, true
}

// Active returns the marked index, -1 if none.
func (m *MarkerSet) Active() int {
	if !m.marked {
		return -1
	}
	return m.active
}

// IsActive reports whether index is the marked item.
func (m *MarkerSet) IsActive(index int) bool {
	return m.marked && m.active == index
}
