package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerClickCycle(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5, 68.0)
	p := NewPicker(buckets)
	assert.Equal(t, StateEmpty, p.State())

	ch := p.Press(buckets[0].Start, false)
	p.Release()
	assert.Equal(t, ChangeStartSet, ch)
	assert.Equal(t, StateStartSet, p.State())
	assert.Equal(t, 0, p.StartIndex())
	_, ok := p.Line()
	assert.False(t, ok)

	ch = p.Press(buckets[3].Start, false)
	p.Release()
	assert.Equal(t, ChangeEndSet, ch)
	assert.Equal(t, StateBothSet, p.State())
	l, ok := p.Line()
	require.True(t, ok)
	assert.InDelta(t, -2.0, l.TotalChange, 1e-9)
	assert.Equal(t, 3, l.Weeks)
}

func TestPickerSameIndexTwiceYieldsZeroLengthLine(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0)
	p := NewPicker(buckets)
	p.Press(buckets[1].Start, false)
	p.Release()
	p.Press(buckets[1].Start, false)
	p.Release()
	assert.Equal(t, StateBothSet, p.State())
	l, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, 0, l.Weeks)
	assert.Equal(t, 0.0, l.TotalChange)
	assert.Equal(t, 0.0, l.WeeklyChange)
}

func TestPickerThirdClickRestarts(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5, 68.0)
	p := NewPicker(buckets)
	p.Press(buckets[0].Start, false)
	p.Release()
	p.Press(buckets[3].Start, false)
	p.Release()
	require.Equal(t, StateBothSet, p.State())

	ch := p.Press(buckets[2].Start, false)
	assert.Equal(t, ChangeRestarted, ch)
	assert.Equal(t, StateStartSet, p.State())
	assert.Equal(t, 2, p.StartIndex())
	assert.Equal(t, -1, p.EndIndex())
	_, ok := p.Line()
	assert.False(t, ok)
}

func TestPickerRightClickClearsFromAnyState(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5)
	setups := map[string]func(p *Picker){
		"empty": func(p *Picker) {},
		"start set": func(p *Picker) {
			p.Press(buckets[1].Start, false)
			p.Release()
		},
		"both set": func(p *Picker) {
			p.Press(buckets[0].Start, false)
			p.Release()
			p.Press(buckets[2].Start, false)
			p.Release()
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			p := NewPicker(buckets)
			setup(p)
			ch := p.Press(buckets[0].Start, true)
			assert.Equal(t, ChangeCleared, ch)
			assert.Equal(t, StateEmpty, p.State())
			assert.False(t, p.Dragging())
			for _, c := range p.PointColors() {
				assert.Equal(t, DefaultPointColor, c)
			}
		})
	}
}

func TestPickerHighlightTracksSelection(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5)
	p := NewPicker(buckets)
	p.Press(buckets[0].Start, false)
	p.Release()
	p.Press(buckets[2].Start, false)
	p.Release()
	colors := p.PointColors()
	assert.Equal(t, HighlightPointColor, colors[0])
	assert.Equal(t, DefaultPointColor, colors[1])
	assert.Equal(t, HighlightPointColor, colors[2])
}

func TestPickerDragEndRecomputes(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5, 68.0)
	p := NewPicker(buckets)
	p.Press(buckets[0].Start, false)
	p.Release()
	// end click held down: the end endpoint is active for dragging
	p.Press(buckets[1].Start, false)
	require.True(t, p.Dragging())

	ch := p.Move(buckets[3].Start)
	assert.Equal(t, ChangeEndMoved, ch)
	l, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, 3, l.EndIndex)
	assert.Equal(t, 3, l.Weeks)

	// moving near the same bucket again is not a change
	assert.Equal(t, ChangeNone, p.Move(buckets[3].Start.Add(time.Hour)))

	p.Release()
	assert.False(t, p.Dragging())
	assert.Equal(t, ChangeNone, p.Move(buckets[0].Start))
}

func TestPickerDragStartAfterBothSet(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5, 68.0)
	p := NewPicker(buckets)
	// press-and-hold on start, end set without an intervening release: the
	// start endpoint stays the active drag target
	p.Press(buckets[0].Start, false)
	p.Press(buckets[3].Start, false)
	require.Equal(t, StateBothSet, p.State())

	ch := p.Move(buckets[2].Start)
	assert.Equal(t, ChangeStartMoved, ch)
	l, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, 2, l.StartIndex)
	assert.Equal(t, 3, l.EndIndex)
	assert.InDelta(t, -0.5, l.TotalChange, 1e-9)
	assert.Equal(t, 1, l.Weeks)
}

func TestPickerDragMayCrossOtherEndpoint(t *testing.T) {
	buckets := weeklyBuckets(monday, 70.0, 69.0, 68.5, 68.0)
	p := NewPicker(buckets)
	p.Press(buckets[2].Start, false)
	p.Release()
	p.Press(buckets[3].Start, false)
	// drag the end endpoint past the start endpoint
	ch := p.Move(buckets[0].Start)
	assert.Equal(t, ChangeEndMoved, ch)
	// stored indexes stay attached to the pointer, unswapped
	assert.Equal(t, 2, p.StartIndex())
	assert.Equal(t, 0, p.EndIndex())
	// order is normalized at compute time
	l, ok := p.Line()
	require.True(t, ok)
	assert.Equal(t, 0, l.StartIndex)
	assert.Equal(t, 2, l.EndIndex)
	assert.Equal(t, 2, l.Weeks)
}

func TestPickerIgnoresClicksWithNoBuckets(t *testing.T) {
	p := NewPicker(nil)
	assert.Equal(t, ChangeNone, p.Press(monday, false))
	assert.Equal(t, StateEmpty, p.State())
	assert.Equal(t, ChangeNone, p.Move(monday))
	// clearing an empty selection is still a clear
	assert.Equal(t, ChangeCleared, p.Press(monday, true))
}
