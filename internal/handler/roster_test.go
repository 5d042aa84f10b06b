package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartOf(t *testing.T) {
	// 2026-08-23 is a Sunday
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"sunday maps to itself", sunday},
		{"midweek maps back to sunday", sunday.AddDate(0, 0, 3)},
		{"saturday maps back to sunday", sunday.AddDate(0, 0, 6)},
		{"time of day is dropped", sunday.Add(23*time.Hour + 59*time.Minute)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, sunday, weekStartOf(tc.in))
		})
	}

	t.Run("next sunday opens a new week", func(t *testing.T) {
		assert.Equal(t, sunday.AddDate(0, 0, 7), weekStartOf(sunday.AddDate(0, 0, 7)))
	})
}
