// Package trend folds rated samples into per-day averages
package trend

import (
	"math"
	"sort"
	"time"
)

// DateLayout is the calendar date format used for bucket keys
const DateLayout = "2006-01-02"

// Sample is one rated observation
type Sample struct {
	At     time.Time
	Rating int
}

// DayPoint is the average rating of one calendar day
type DayPoint struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type bucket struct {
	day   time.Time
	sum   int
	count int
}

// BucketByDay groups samples by calendar date in loc and averages each day
// loc nil means UTC. Days without samples are omitted and output is oldest first
// sums stay integral until the average is rounded to two decimals on output
func BucketByDay(samples []Sample, loc *time.Location) []DayPoint {
	if loc == nil {
		loc = time.UTC
	}

	byDate := make(map[string]*bucket, len(samples))
	for _, s := range samples {
		t := s.At.In(loc)
		key := t.Format(DateLayout)
		b, ok := byDate[key]
		if !ok {
			y, m, d := t.Date()
			b = &bucket{day: time.Date(y, m, d, 0, 0, 0, 0, loc)}
			byDate[key] = b
		}
		b.sum += s.Rating
		b.count++
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return byDate[keys[i]].day.Before(byDate[keys[j]].day) })

	out := make([]DayPoint, 0, len(keys))
	for _, k := range keys {
		b := byDate[k]
		out = append(out, DayPoint{
			Date:    k,
			Average: round2(float64(b.sum) / float64(b.count)),
			Count:   b.count,
		})
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
