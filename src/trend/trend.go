package trend

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkorteland/weighttrend/src/weightdata"
)

// Line is the trend between two selected weekly buckets, with endpoint order
// normalized so StartIndex <= EndIndex regardless of selection order.
type Line struct {
	StartIndex int
	EndIndex   int
	StartWeek  time.Time
	EndWeek    time.Time
	StartValue float64
	EndValue   float64

	TotalChange  float64 // EndValue - StartValue
	Weeks        int     // EndIndex - StartIndex
	WeeklyChange float64 // TotalChange / Weeks, 0 when Weeks == 0
}

// Compute derives the trend line for the buckets at indexes i and j.
// The pair may arrive unordered (dragging can cross endpoints); it is
// normalized here rather than in the picker so a dragged endpoint stays
// attached to the pointer. A zero-length pair yields a zero rate.
func Compute(buckets []weightdata.WeekBucket, i, j int) Line {
	if i > j {
		i, j = j, i
	}
	l := Line{
		StartIndex: i,
		EndIndex:   j,
		StartWeek:  buckets[i].Start,
		EndWeek:    buckets[j].Start,
		StartValue: buckets[i].Mean,
		EndValue:   buckets[j].Mean,
	}
	l.TotalChange = l.EndValue - l.StartValue
	l.Weeks = j - i
	if l.Weeks > 0 {
		l.WeeklyChange = l.TotalChange / float64(l.Weeks)
	}
	return l
}

const reportBanner = "============================================================"

// Report renders the fixed-width stdout block printed whenever a complete
// trend line is (re)computed.
func Report(l Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportBanner)
	fmt.Fprintf(&b, "TREND LINE ANALYSIS\n")
	fmt.Fprintf(&b, "%s\n", reportBanner)
	fmt.Fprintf(&b, "Start Week:      %s\n", l.StartWeek.Format("2006-01-02"))
	fmt.Fprintf(&b, "Starting Weight: %.2f kg\n", l.StartValue)
	fmt.Fprintf(&b, "End Week:        %s\n", l.EndWeek.Format("2006-01-02"))
	fmt.Fprintf(&b, "Ending Weight:   %.2f kg\n", l.EndValue)
	fmt.Fprintf(&b, "Total Change:    %.2f kg\n", l.TotalChange)
	fmt.Fprintf(&b, "Weekly Change:   %.2f kg/week\n", l.WeeklyChange)
	fmt.Fprintf(&b, "Duration:        %d weeks\n", l.Weeks)
	fmt.Fprintf(&b, "%s\n", reportBanner)
	return b.String()
}

// StatsBox renders the short summary drawn onto the chart at a fixed
// screen-relative position.
func StatsBox(l Line) []string {
	return []string{
		fmt.Sprintf("Start:  %.2f kg", l.StartValue),
		fmt.Sprintf("End:    %.2f kg", l.EndValue),
		fmt.Sprintf("Change: %.2f kg", l.TotalChange),
		fmt.Sprintf("Weekly: %.2f kg/week", l.WeeklyChange),
	}
}
