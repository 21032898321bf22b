package trend

import (
	"image/color"
	"time"

	"github.com/mkorteland/weighttrend/src/weightdata"
)

// State of the two-point selection.
type State int

const (
	StateEmpty State = iota
	StateStartSet
	StateBothSet
)

// Change tells the UI layer what a pointer event did, so it knows whether to
// redraw and what to trace.
type Change int

const (
	ChangeNone Change = iota
	ChangeStartSet
	ChangeEndSet
	ChangeRestarted // third click: previous pair discarded, new start set
	ChangeCleared
	ChangeStartMoved
	ChangeEndMoved
)

// Point colors for the weekly average dots. The highlight is cosmetic only;
// it never feeds back into resolution or statistics.
var (
	DefaultPointColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255} // red
	HighlightPointColor = color.RGBA{R: 44, G: 160, B: 44, A: 255} // green
)

// Picker owns the selection state: at most two bucket indexes, the drag
// flags for the endpoint most recently set, and the per-bucket display
// colors. All mutation happens synchronously from pointer event handlers;
// there is exactly one Picker per window and no concurrent access.
type Picker struct {
	buckets []weightdata.WeekBucket

	startIdx int // -1 when unset
	endIdx   int // -1 when unset

	draggingStart bool
	draggingEnd   bool

	colors []color.RGBA
}

func NewPicker(buckets []weightdata.WeekBucket) *Picker {
	p := &Picker{buckets: buckets, startIdx: -1, endIdx: -1}
	p.colors = make([]color.RGBA, len(buckets))
	p.refreshColors()
	return p
}

func (p *Picker) State() State {
	switch {
	case p.startIdx < 0:
		return StateEmpty
	case p.endIdx < 0:
		return StateStartSet
	default:
		return StateBothSet
	}
}

// StartIndex returns the start endpoint, or -1 when unset.
func (p *Picker) StartIndex() int { return p.startIdx }

// EndIndex returns the end endpoint, or -1 when unset.
func (p *Picker) EndIndex() int { return p.endIdx }

// Dragging reports whether an endpoint is currently following the pointer.
func (p *Picker) Dragging() bool { return p.draggingStart || p.draggingEnd }

// Buckets returns the bucket sequence the picker indexes into.
func (p *Picker) Buckets() []weightdata.WeekBucket { return p.buckets }

// PointColors returns the current display color per bucket.
func (p *Picker) PointColors() []color.RGBA { return p.colors }

// Line returns the current trend line; ok is false until both endpoints are
// set.
func (p *Picker) Line() (Line, bool) {
	if p.startIdx < 0 || p.endIdx < 0 {
		return Line{}, false
	}
	return Compute(p.buckets, p.startIdx, p.endIdx), true
}

// Press handles a pointer press at time coordinate t. secondary is the
// right/secondary button, which clears everything. Presses on an empty
// bucket set are ignored.
func (p *Picker) Press(t time.Time, secondary bool) Change {
	if secondary {
		p.clear()
		return ChangeCleared
	}
	idx, ok := Nearest(p.buckets, t)
	if !ok {
		return ChangeNone
	}
	switch p.State() {
	case StateEmpty:
		p.startIdx = idx
		p.draggingStart = true
		p.refreshColors()
		return ChangeStartSet
	case StateStartSet:
		p.endIdx = idx
		p.draggingEnd = true
		p.refreshColors()
		return ChangeEndSet
	default:
		p.clear()
		p.startIdx = idx
		p.draggingStart = true
		p.refreshColors()
		return ChangeRestarted
	}
}

// Move handles pointer motion while a button may be held. It re-resolves the
// active endpoint and reports a change only when the endpoint actually moved
// to a different bucket. Crossing the other endpoint is allowed; ordering is
// normalized in Compute at draw time.
func (p *Picker) Move(t time.Time) Change {
	switch {
	case p.draggingStart && p.startIdx >= 0:
		idx, ok := Nearest(p.buckets, t)
		if !ok || idx == p.startIdx {
			return ChangeNone
		}
		p.startIdx = idx
		p.refreshColors()
		return ChangeStartMoved
	case p.draggingEnd && p.endIdx >= 0:
		idx, ok := Nearest(p.buckets, t)
		if !ok || idx == p.endIdx {
			return ChangeNone
		}
		p.endIdx = idx
		p.refreshColors()
		return ChangeEndMoved
	}
	return ChangeNone
}

// Release ends any drag, regardless of pointer position.
func (p *Picker) Release() {
	p.draggingStart = false
	p.draggingEnd = false
}

func (p *Picker) clear() {
	p.startIdx = -1
	p.endIdx = -1
	p.draggingStart = false
	p.draggingEnd = false
	p.refreshColors()
}

// refreshColors rebuilds the display colors from the selection, so highlight
// state can never drift from the indexes.
func (p *Picker) refreshColors() {
	for i := range p.colors {
		p.colors[i] = DefaultPointColor
	}
	if p.startIdx >= 0 && p.startIdx < len(p.colors) {
		p.colors[p.startIdx] = HighlightPointColor
	}
	if p.endIdx >= 0 && p.endIdx < len(p.colors) {
		p.colors[p.endIdx] = HighlightPointColor
	}
}
