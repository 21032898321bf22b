package main

import (
	"image/color"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// pickOverlay sits on top of the chart image and turns pointer events into
// picker transitions. The chart canvas uses ImageFillContain, so the overlay
// first maps view coordinates back into image pixel space, then into the
// chart's time range.
type pickOverlay struct {
	widget.BaseWidget
	state *uiState
}

func newPickOverlay(state *uiState) *pickOverlay {
	o := &pickOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *pickOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background to ensure a full hit-area for pointer events
	bg := canvas.NewRectangle(color.RGBA{})
	return &pickOverlayRenderer{o: o, bg: bg, objs: []fyne.CanvasObject{bg}}
}

type pickOverlayRenderer struct {
	o    *pickOverlay
	bg   *canvas.Rectangle
	objs []fyne.CanvasObject
}

func (r *pickOverlayRenderer) Destroy() {}
func (r *pickOverlayRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
}
func (r *pickOverlayRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *pickOverlayRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *pickOverlayRenderer) Refresh()                     { r.bg.Refresh() }

// timeAt maps an overlay position to a time on the chart's x-axis. ok is
// false when the position falls outside the drawn plot area or no chart has
// been rendered yet.
func (o *pickOverlay) timeAt(pos fyne.Position) (time.Time, bool) {
	st := o.state
	if st == nil || st.chartCanvas == nil || st.chartCanvas.Image == nil || st.xMin.IsZero() {
		return time.Time{}, false
	}
	b := st.chartCanvas.Image.Bounds()
	sz := o.Size()
	return timeForMouseX(st.xMin, st.xMax,
		float32(b.Dx()), float32(b.Dy()),
		sz.Width, sz.Height,
		pos.X, pos.Y)
}

// MouseDown feeds a press into the picker. Presses outside the plot area are
// ignored entirely, including secondary ones.
func (o *pickOverlay) MouseDown(ev *desktop.MouseEvent) {
	st := o.state
	if st == nil || st.picker == nil {
		return
	}
	t, ok := o.timeAt(ev.Position)
	if !ok {
		return
	}
	secondary := ev.Button == desktop.MouseButtonSecondary
	applyChange(st, st.picker.Press(t, secondary))
}

// MouseUp ends any drag, regardless of where the pointer ended up.
func (o *pickOverlay) MouseUp(ev *desktop.MouseEvent) {
	if o.state != nil && o.state.picker != nil {
		o.state.picker.Release()
	}
}

// MouseMoved drives endpoint dragging while a button is held.
func (o *pickOverlay) MouseMoved(ev *desktop.MouseEvent) {
	st := o.state
	if st == nil || st.picker == nil || !st.picker.Dragging() {
		return
	}
	t, ok := o.timeAt(ev.Position)
	if !ok {
		return
	}
	applyChange(st, st.picker.Move(t))
}

func (o *pickOverlay) MouseIn(ev *desktop.MouseEvent) {}
func (o *pickOverlay) MouseOut()                      {}

var (
	_ desktop.Mouseable = (*pickOverlay)(nil)
	_ desktop.Hoverable = (*pickOverlay)(nil)
)

// containRect computes the rectangle the chart image occupies inside a view
// of the given size under ImageFillContain, plus the applied scale factor.
func containRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return
}

// timeForMouseX maps a view-space mouse position to a time in [tmin, tmax].
// The mapping assumes the plot spans the image minus the render paddings;
// that is approximate with respect to go-chart's internal axis gutters, but
// the result is snapped to the nearest week anyway. ok is false outside the
// drawn image rect.
func timeForMouseX(tmin, tmax time.Time, imgW, imgH, viewW, viewH, mouseX, mouseY float32) (time.Time, bool) {
	drawX, drawY, drawW, drawH, scale := containRect(imgW, imgH, viewW, viewH)
	if mouseX < drawX || mouseX > drawX+drawW || mouseY < drawY || mouseY > drawY+drawH {
		return time.Time{}, false
	}
	leftPad := float32(chartPadLeft)
	rightPad := float32(chartPadRight)
	plotW := imgW - leftPad - rightPad
	if plotW < 1 {
		plotW = imgW
	}
	xImg := (mouseX - drawX) / scale
	fx := (xImg - leftPad) / plotW
	if fx < 0 {
		fx = 0
	}
	if fx > 1 {
		fx = 1
	}
	span := tmax.Sub(tmin)
	if span <= 0 {
		return tmin, true
	}
	return tmin.Add(time.Duration(float64(span) * float64(fx))), true
}
