package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mkorteland/weighttrend/src/trend"
	"github.com/mkorteland/weighttrend/src/weightdata"
)

const defaultCSV = "chart.csv"

// chart image paddings, shared with the overlay's pixel→time mapping
const (
	chartPadLeft   = 16
	chartPadRight  = 12
	chartPadTop    = 14
	chartPadBottom = 48
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	samples []weightdata.Sample
	buckets []weightdata.WeekBucket
	picker  *trend.Picker

	// toggles
	showDaily  bool
	showWeekly bool
	showHints  bool

	// widgets
	chartCanvas *canvas.Image
	overlay     *pickOverlay
	fileLabel   *widget.Label

	// x-axis time range of the last rendered chart; the overlay maps mouse
	// positions back into this range
	xMin, xMax time.Time
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

func toDrawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// annotation box backgrounds
var (
	hintBoxBG  = color.RGBA{R: 80, G: 60, B: 20, A: 200}
	statsBoxBG = color.RGBA{R: 20, G: 70, B: 20, A: 200}
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag string
	var logLevel string
	var screenshotDir string
	flag.StringVar(&fileFlag, "file", "", "Path to the weight CSV (default "+defaultCSV+" in the working directory)")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&screenshotDir, "screenshot", "", "Render the chart headlessly into this directory and exit")
	flag.Parse()
	weightdata.SetLogLevel(logLevel)

	if screenshotDir != "" {
		path := fileFlag
		if path == "" {
			path = defaultCSV
		}
		if err := RunScreenshotsMode(path, screenshotDir); err != nil {
			weightdata.Errorf("screenshot mode: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.weighttrend.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Weight Trend Viewer")
	w.Resize(fyne.NewSize(1200, 800))

	state := &uiState{
		app:        a,
		window:     w,
		filePath:   fileFlag,
		showDaily:  true,
		showWeekly: true,
	}
	state.showHints = a.Preferences().BoolWithFallback("showHints", true)

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 60))

	dailyChk := widget.NewCheck("Daily", nil)
	weeklyChk := widget.NewCheck("Weekly Avg", nil)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 480))
	state.overlay = newPickOverlay(state)

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewButton("Clear Trend", func() {
			if state.picker != nil {
				applyChange(state, state.picker.Press(time.Time{}, true))
			}
		}),
		dailyChk, weeklyChk, hintsChk,
		widget.NewLabel("File:"), state.fileLabel,
	)
	content := container.NewBorder(top, nil, nil, nil,
		container.NewStack(state.chartCanvas, state.overlay))
	w.SetContent(content)

	// Redraw the chart on window resize so it scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawChart(state) })
					}
				}
			}
		}()
	}

	dailyChk.OnChanged = func(b bool) { state.showDaily = b; savePrefs(state); redrawChart(state) }
	weeklyChk.OnChanged = func(b bool) { state.showWeekly = b; savePrefs(state); redrawChart(state) }
	hintsChk.OnChanged = func(b bool) { state.showHints = b; savePrefs(state); redrawChart(state) }

	buildMenus(state)
	loadPrefs(state, dailyChk, weeklyChk)
	dailyChk.SetChecked(state.showDaily)
	weeklyChk.SetChecked(state.showWeekly)

	// Initial load is fatal on error: without usable data there is nothing to
	// interact with.
	if state.filePath == "" {
		state.filePath = defaultCSV
		state.fileLabel.SetText(truncatePath(state.filePath, 60))
	}
	samples, err := weightdata.Load(state.filePath)
	if err != nil {
		weightdata.Errorf("%v", err)
		os.Exit(1)
	}
	applySamples(state, samples)
	fmt.Println("Left-click two weekly average points to set a trend line; right-click to clear.")

	w.ShowAndRun()
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			state.fileLabel.SetText(truncatePath(state.filePath, 60))
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart PNG…", func() { exportChartPNG(state, "weight_trend.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		state.fileLabel.SetText(truncatePath(state.filePath, 60))
		addRecentFile(state, state.filePath)
		savePrefs(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll reloads the current file. Unlike the initial load it is not fatal:
// a bad pick from the Open dialog just shows an error and keeps the old data.
func loadAll(state *uiState) {
	if state.filePath == "" {
		state.filePath = defaultCSV
		if state.fileLabel != nil {
			state.fileLabel.SetText(truncatePath(state.filePath, 60))
		}
	}
	samples, err := weightdata.Load(state.filePath)
	if err != nil {
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		return
	}
	applySamples(state, samples)
}

// applySamples replaces the data set. The picker is rebuilt, which drops any
// existing selection: the indexes would point into the old bucket sequence.
func applySamples(state *uiState, samples []weightdata.Sample) {
	state.samples = samples
	state.buckets = weightdata.Aggregate(samples)
	state.picker = trend.NewPicker(state.buckets)
	weightdata.Infof("%d samples, %d weekly buckets", len(state.samples), len(state.buckets))
	redrawChart(state)
}

// applyChange reacts to a picker transition: trace line to stdout, full
// report when a complete trend line was (re)computed, then redraw. Redrawing
// replaces the whole chart image, so stale trend lines and markers cannot
// accumulate.
func applyChange(state *uiState, ch trend.Change) {
	if ch == trend.ChangeNone || state.picker == nil {
		return
	}
	p := state.picker
	describe := func(idx int) string {
		b := p.Buckets()[idx]
		return fmt.Sprintf("week %d: %s -> %.2f kg", idx, b.Start.Format("2006-01-02"), b.Mean)
	}
	switch ch {
	case trend.ChangeStartSet:
		fmt.Printf("[viewer] trend start set to %s\n", describe(p.StartIndex()))
	case trend.ChangeEndSet:
		fmt.Printf("[viewer] trend end set to %s\n", describe(p.EndIndex()))
	case trend.ChangeRestarted:
		fmt.Printf("[viewer] reset: trend start set to %s\n", describe(p.StartIndex()))
	case trend.ChangeCleared:
		fmt.Println("[viewer] trend line cleared")
	case trend.ChangeStartMoved:
		fmt.Printf("[viewer] dragging start to %s\n", describe(p.StartIndex()))
	case trend.ChangeEndMoved:
		fmt.Printf("[viewer] dragging end to %s\n", describe(p.EndIndex()))
	}
	if l, ok := p.Line(); ok {
		fmt.Print(trend.Report(l))
	}
	redrawChart(state)
}

func redrawChart(state *uiState) {
	img := renderWeightChart(state)
	if img == nil || state.chartCanvas == nil {
		return
	}
	state.chartCanvas.Image = img
	cw, chh := chartSize(state)
	state.chartCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
	state.chartCanvas.Refresh()
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

// chartSize computes a chart size based on the current window width so the
// chart uses the available X-axis space.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1100, 480
	}
	sz := state.window.Canvas().Size()
	w := int(sz.Width*0.95) - 12
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.42)
	if h < 320 {
		h = 320
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

func renderWeightChart(state *uiState) image.Image {
	if state == nil || len(state.buckets) == 0 {
		return blank(800, 480)
	}
	buckets := state.buckets

	// X range spans all samples and all week starts
	minT, maxT := buckets[0].Start, buckets[len(buckets)-1].Start
	for _, s := range state.samples {
		if s.Time.Before(minT) {
			minT = s.Time
		}
		if s.Time.After(maxT) {
			maxT = s.Time
		}
	}
	if !maxT.After(minT) {
		maxT = minT.Add(24 * time.Hour)
	}
	state.xMin, state.xMax = minT, maxT

	series := []chart.Series{}
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	seen := func(v float64) {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	if state.showDaily && len(state.samples) > 0 {
		xs := make([]time.Time, len(state.samples))
		ys := make([]float64, len(state.samples))
		for i, s := range state.samples {
			xs[i] = s.Time
			ys[i] = s.Value
			seen(s.Value)
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		series = append(series, chart.TimeSeries{
			Name:    "Daily Weight",
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(drawing.Color{R: 173, G: 216, B: 230, A: 160}, 3),
		})
	}

	if state.showWeekly {
		xs := make([]time.Time, len(buckets))
		ys := make([]float64, len(buckets))
		for i, b := range buckets {
			xs[i] = b.Start
			ys[i] = b.Mean
			seen(b.Mean)
		}
		lineStyle := chart.Style{
			StrokeColor: toDrawingColor(trend.DefaultPointColor),
			StrokeWidth: 2,
			DotColor:    toDrawingColor(trend.DefaultPointColor),
			DotWidth:    5,
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		series = append(series, chart.TimeSeries{Name: "Weekly Average", XValues: xs, YValues: ys, Style: lineStyle})

		// Selected buckets re-drawn on top in the highlight color. go-chart
		// has no per-point colors within one series, so the highlight is its
		// own series, mirroring the per-bucket color slice from the picker.
		if state.picker != nil {
			colors := state.picker.PointColors()
			var hx []time.Time
			var hy []float64
			for i, c := range colors {
				if c == trend.DefaultPointColor {
					continue
				}
				hx = append(hx, buckets[i].Start)
				hy = append(hy, buckets[i].Mean)
			}
			if len(hx) == 1 {
				hx = append(hx, hx[0].Add(time.Second))
				hy = append(hy, hy[0])
			}
			if len(hx) > 0 {
				series = append(series, chart.TimeSeries{
					Name:    "Selected",
					XValues: hx,
					YValues: hy,
					Style:   pointStyle(toDrawingColor(trend.HighlightPointColor), 7),
				})
			}
		}
	}

	var line trend.Line
	haveLine := false
	if state.picker != nil {
		line, haveLine = state.picker.Line()
	}
	if haveLine {
		xs := []time.Time{line.StartWeek, line.EndWeek}
		ys := []float64{line.StartValue, line.EndValue}
		if line.Weeks == 0 {
			xs[1] = xs[0].Add(time.Second)
		}
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("Trend Line (%d weeks)", line.Weeks),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor:     toDrawingColor(trend.HighlightPointColor),
				StrokeWidth:     3,
				StrokeDashArray: []float64{6, 4},
			},
		})
	}

	if minY > maxY {
		minY, maxY = 0, 1
	}
	nMin, nMax := niceAxisBounds(minY, maxY)
	ch := chart.Chart{
		Title:      "Weight Tracking with Interactive Trend Line",
		Background: chart.Style{Padding: chart.Box{Top: chartPadTop, Left: chartPadLeft, Right: chartPadRight, Bottom: chartPadBottom}},
		XAxis:      buildWeekAxis(buckets, minT, maxT),
		YAxis: chart.YAxis{
			Name:  "Weight (kg)",
			Range: &chart.ContinuousRange{Min: nMin, Max: nMax},
			Ticks: niceTicks(nMin, nMax, 6),
		},
		Series: series,
	}
	cw, chh := chartSize(state)
	ch.Width = cw
	ch.Height = chh
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		weightdata.Warnf("chart render error: %v; showing blank fallback", err)
		return blank(cw, chh)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		weightdata.Warnf("chart decode error: %v; showing blank fallback", err)
		return blank(cw, chh)
	}
	// Fixed screen-relative annotations, top-left. The stats box sits below
	// the hint line and never follows the cursor.
	y := 30
	if state.showHints {
		img = drawTextBlock(img, []string{"Left-click: pick trend points  |  Drag: adjust  |  Right-click: clear"}, 16, y, hintBoxBG)
		y += 30
	}
	if haveLine {
		img = drawTextBlock(img, trend.StatsBox(line), 16, y, statsBoxBG)
	}
	return img
}

// buildWeekAxis produces the time axis with a tick per week boundary so the
// grid shows the bucket edges, labeling every other week to stay readable.
func buildWeekAxis(buckets []weightdata.WeekBucket, minT, maxT time.Time) chart.XAxis {
	labelEvery := 1 + len(buckets)/12
	ticks := make([]chart.Tick, 0, len(buckets))
	for i, b := range buckets {
		lab := ""
		if i%labelEvery == 0 {
			lab = b.Start.Format("2006-01-02")
		}
		ticks = append(ticks, chart.Tick{Value: float64(chart.TimeToFloat64(b.Start)), Label: lab})
	}
	if len(ticks) < 2 {
		ticks = append(ticks, chart.Tick{Value: float64(chart.TimeToFloat64(maxT)), Label: maxT.Format("2006-01-02")})
	}
	return chart.XAxis{
		Name:  "Date",
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: float64(chart.TimeToFloat64(minT)), Max: float64(chart.TimeToFloat64(maxT))},
		GridMajorStyle: chart.Style{
			StrokeColor:     drawing.Color{R: 128, G: 128, B: 128, A: 80},
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 4},
		},
	}
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using
// nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.Abs(v) >= 100 {
		return fmt.Sprintf("%.0f", v)
	}
	if math.Abs(v) >= 10 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// drawTextBlock draws lines of text onto the image at a fixed position with
// a translucent background box, shadowed for contrast.
func drawTextBlock(img image.Image, lines []string, x, y int, bg color.RGBA) image.Image {
	if img == nil || len(lines) == 0 {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	maxW := 0
	for _, line := range lines {
		if w := dr.MeasureString(line).Ceil(); w > maxW {
			maxW = w
		}
	}
	pad := 6
	lineH := face.Metrics().Height.Ceil() + 2
	ascent := face.Metrics().Ascent.Ceil()
	rect := image.Rect(b.Min.X+x-pad, b.Min.Y+y-ascent-pad, b.Min.X+x+maxW+pad, b.Min.Y+y+lineH*(len(lines)-1)+pad)
	draw.Draw(rgba, rect, image.NewUniform(bg), image.Point{}, draw.Over)
	for i, line := range lines {
		ly := y + i*lineH
		drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(b.Min.X + x + 1), Y: fixed.I(b.Min.Y + ly + 1)}}
		drShadow.DrawString(line)
		dr.Dot = fixed.Point26_6{X: fixed.I(b.Min.X + x), Y: fixed.I(b.Min.Y + ly)}
		dr.DrawString(line)
	}
	return rgba
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// export PNG
func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil || state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.chartCanvas.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}
func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}
func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetBool("showDaily", state.showDaily)
	prefs.SetBool("showWeekly", state.showWeekly)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState, daily, weekly *widget.Check) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	// Only fall back to the remembered file when none was given on the CLI.
	if state.filePath == "" {
		if f := prefs.StringWithFallback("lastFile", ""); f != "" {
			if _, err := os.Stat(f); err == nil {
				state.filePath = f
				if state.fileLabel != nil {
					state.fileLabel.SetText(truncatePath(f, 60))
				}
			}
		}
	}
	state.showDaily = prefs.BoolWithFallback("showDaily", state.showDaily)
	state.showWeekly = prefs.BoolWithFallback("showWeekly", state.showWeekly)
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if daily != nil {
		daily.SetChecked(state.showDaily)
	}
	if weekly != nil {
		weekly.SetChecked(state.showWeekly)
	}
}

// utils
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
