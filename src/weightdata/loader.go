// Package weightdata loads a daily weight CSV and folds it into
// Monday-aligned weekly average buckets for the viewer.
package weightdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// Sample is one measured data point after header/artifact filtering.
type Sample struct {
	Time  time.Time
	Value float64
}

// WeekBucket is one Monday-aligned week with the mean of its samples.
type WeekBucket struct {
	Start time.Time // Monday 00:00 local time
	Mean  float64
}

// timestamp layouts accepted in the DateTime column, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// findColumns maps the header to (timestamp, value) column indexes.
// Falls back to positional columns 0 and 1 when the names don't match.
func findColumns(header []string) (int, int) {
	timeCol, valCol := -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case timeCol < 0 && (name == "datetime" || name == "date" || name == "time" || name == "timestamp"):
			timeCol = i
		case valCol < 0 && (name == "daily average" || name == "weight" || name == "value" || name == "avg"):
			valCol = i
		}
	}
	if timeCol < 0 {
		timeCol = 0
	}
	if valCol < 0 {
		valCol = 1
		if valCol == timeCol {
			valCol = timeCol + 1
		}
	}
	return timeCol, valCol
}

// Load reads the CSV at path and returns its samples in file order.
// The first data row is always discarded: exports of the source app carry a
// duplicated header artifact there. Rows that fail to parse are skipped with
// a warning; a file yielding zero usable samples is an error.
func Load(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	timeCol, valCol := findColumns(records[0])
	rows := records[1:]
	// Drop the first data row unconditionally.
	rows = rows[1:]

	samples := make([]Sample, 0, len(rows))
	skipped := 0
	for i, rec := range rows {
		if timeCol >= len(rec) || valCol >= len(rec) {
			skipped++
			continue
		}
		t, err := parseTimestamp(rec[timeCol])
		if err != nil {
			Warnf("row %d: %v", i+3, err)
			skipped++
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[valCol]), 64)
		if err != nil {
			Warnf("row %d: bad value %q", i+3, rec[valCol])
			skipped++
			continue
		}
		samples = append(samples, Sample{Time: t, Value: v})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no parseable timestamp/value rows", path)
	}
	if skipped > 0 {
		Infof("loaded %d samples from %s (%d rows skipped)", len(samples), path, skipped)
	} else {
		Debugf("loaded %d samples from %s", len(samples), path)
	}
	return samples, nil
}

// WeekStart truncates t to the Monday 00:00 of its week, in t's location.
func WeekStart(t time.Time) time.Time {
	days := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	y, m, d := t.AddDate(0, 0, -days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Aggregate buckets samples into Monday-aligned weeks and computes the mean
// value per bucket. The result is sorted chronologically; the slice index is
// the unit the selection logic operates on.
func Aggregate(samples []Sample) []WeekBucket {
	byWeek := map[time.Time][]float64{}
	for _, s := range samples {
		ws := WeekStart(s.Time)
		byWeek[ws] = append(byWeek[ws], s.Value)
	}
	buckets := make([]WeekBucket, 0, len(byWeek))
	for ws, vals := range byWeek {
		mean, err := stats.Mean(vals)
		if err != nil {
			continue
		}
		buckets = append(buckets, WeekBucket{Start: ws, Mean: mean})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Start.Before(buckets[j].Start) })
	return buckets
}
