package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/mkorteland/weighttrend/src/trend"
	"github.com/mkorteland/weighttrend/src/weightdata"
)

// RunScreenshotsMode renders the weight chart and writes PNGs under outDir.
// It runs headlessly without creating a UI window: once with no selection,
// once with a demo trend line spanning the first and last weekly buckets.
func RunScreenshotsMode(filePath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	samples, err := weightdata.Load(filePath)
	if err != nil {
		return err
	}
	st := &uiState{
		filePath:   filePath,
		showDaily:  true,
		showWeekly: true,
	}
	st.samples = samples
	st.buckets = weightdata.Aggregate(samples)
	st.picker = trend.NewPicker(st.buckets)

	toRender := []struct {
		name  string
		setup func()
	}{
		{"weight_chart.png", func() {}},
		{"weight_chart_trend.png", func() {
			if n := len(st.buckets); n >= 2 {
				st.picker.Press(st.buckets[0].Start, false)
				st.picker.Release()
				st.picker.Press(st.buckets[n-1].Start, false)
				st.picker.Release()
			}
		}},
	}
	for _, item := range toRender {
		item.setup()
		img := renderWeightChart(st)
		if img == nil {
			continue
		}
		if err := writePNG(filepath.Join(outDir, item.name), img); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(outPath string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
