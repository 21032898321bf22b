package main

import (
	"testing"
	"time"

	"github.com/mkorteland/weighttrend/src/trend"
	"github.com/mkorteland/weighttrend/src/weightdata"
)

func TestContainRectLetterboxing(t *testing.T) {
	cases := []struct {
		name                       string
		imgW, imgH, viewW, viewH   float32
		wantX, wantY, wantW, wantH float32
		wantScale                  float32
	}{
		{"exact fit", 800, 400, 800, 400, 0, 0, 800, 400, 1},
		{"wider view", 800, 400, 1600, 400, 400, 0, 800, 400, 1},
		{"taller view", 800, 400, 800, 800, 0, 200, 800, 400, 1},
		{"uniform upscale", 400, 200, 800, 400, 0, 0, 800, 400, 2},
	}
	for _, tc := range cases {
		x, y, w, h, s := containRect(tc.imgW, tc.imgH, tc.viewW, tc.viewH)
		if x != tc.wantX || y != tc.wantY || w != tc.wantW || h != tc.wantH || s != tc.wantScale {
			t.Fatalf("%s: got (%.1f,%.1f,%.1f,%.1f,%.2f) want (%.1f,%.1f,%.1f,%.1f,%.2f)",
				tc.name, x, y, w, h, s, tc.wantX, tc.wantY, tc.wantW, tc.wantH, tc.wantScale)
		}
	}
}

func TestTimeForMouseXEdges(t *testing.T) {
	tmin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tmax := tmin.AddDate(0, 0, 21)
	imgW, imgH := float32(800), float32(400)

	// left edge of the plot area maps to tmin
	got, ok := timeForMouseX(tmin, tmax, imgW, imgH, imgW, imgH, chartPadLeft, 100)
	if !ok {
		t.Fatalf("expected ok at left edge")
	}
	if !got.Equal(tmin) {
		t.Fatalf("left edge: got %v want %v", got, tmin)
	}
	// right edge maps to tmax
	got, ok = timeForMouseX(tmin, tmax, imgW, imgH, imgW, imgH, imgW-chartPadRight, 100)
	if !ok {
		t.Fatalf("expected ok at right edge")
	}
	if !got.Equal(tmax) {
		t.Fatalf("right edge: got %v want %v", got, tmax)
	}
	// outside the drawn rect is rejected
	if _, ok := timeForMouseX(tmin, tmax, imgW, imgH, imgW, imgH, -5, 100); ok {
		t.Fatalf("expected not-ok left of the image")
	}
	if _, ok := timeForMouseX(tmin, tmax, imgW, imgH, imgW, imgH, 100, 500); ok {
		t.Fatalf("expected not-ok below the image")
	}
}

func TestTimeForMouseXDegenerateSpan(t *testing.T) {
	tmin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, ok := timeForMouseX(tmin, tmin, 800, 400, 800, 400, 300, 100)
	if !ok || !got.Equal(tmin) {
		t.Fatalf("degenerate span: got (%v,%v) want (%v,true)", got, ok, tmin)
	}
}

// Mouse positions at each bucket's pixel center must resolve back to that
// bucket, including when the view scales the image.
func TestMouseToNearestWeekRoundTrip(t *testing.T) {
	tmin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	buckets := make([]weightdata.WeekBucket, 5)
	for i := range buckets {
		buckets[i] = weightdata.WeekBucket{Start: tmin.AddDate(0, 0, 7*i), Mean: 70 - float64(i)}
	}
	tmax := buckets[len(buckets)-1].Start

	cases := []struct {
		name         string
		viewW, viewH float32
	}{
		{"1:1", 800, 400},
		{"scaled up", 1200, 600},
		{"letterboxed", 1600, 400},
	}
	imgW, imgH := float32(800), float32(400)
	plotW := imgW - chartPadLeft - chartPadRight
	span := tmax.Sub(tmin)
	for _, tc := range cases {
		drawX, _, _, _, scale := containRect(imgW, imgH, tc.viewW, tc.viewH)
		for i, b := range buckets {
			fr := float64(b.Start.Sub(tmin)) / float64(span)
			pxImg := chartPadLeft + float32(fr)*plotW
			mouseX := drawX + pxImg*scale
			got, ok := timeForMouseX(tmin, tmax, imgW, imgH, tc.viewW, tc.viewH, mouseX, tc.viewH/2)
			if !ok {
				t.Fatalf("%s: bucket %d not ok", tc.name, i)
			}
			idx, ok := trend.Nearest(buckets, got)
			if !ok || idx != i {
				t.Fatalf("%s: bucket %d resolved to %d (ok=%v)", tc.name, i, idx, ok)
			}
		}
	}
}
