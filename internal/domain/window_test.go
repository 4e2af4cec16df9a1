package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func win(fromHour, untilHour int) Window {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		From:  day.Add(time.Duration(fromHour) * time.Hour),
		Until: day.Add(time.Duration(untilHour) * time.Hour),
	}
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"identical", win(9, 17), win(9, 17), true},
		{"nested", win(9, 17), win(12, 13), true},
		{"nested outer", win(12, 13), win(9, 17), true},
		{"partial left", win(9, 12), win(11, 17), true},
		{"partial right", win(11, 17), win(9, 12), true},
		{"touching edges count", win(9, 12), win(12, 17), true},
		{"touching reversed", win(12, 17), win(9, 12), true},
		{"disjoint", win(9, 10), win(11, 12), false},
		{"disjoint reversed", win(11, 12), win(9, 10), false},
		{"instant inside", win(9, 17), win(12, 12), true},
		{"instant outside", win(9, 17), win(18, 18), false},
		{"instant on edge", win(9, 17), win(17, 17), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := win(9, 17)

	assert.True(t, w.Contains(w.From))
	assert.True(t, w.Contains(w.Until))
	assert.True(t, w.Contains(w.From.Add(time.Hour)))
	assert.False(t, w.Contains(w.From.Add(-time.Second)))
	assert.False(t, w.Contains(w.Until.Add(time.Second)))
}

func TestWindow_IsValid(t *testing.T) {
	assert.True(t, win(9, 17).IsValid())
	assert.True(t, win(9, 9).IsValid(), "zero-length window is a single instant")
	assert.False(t, win(17, 9).IsValid())
	assert.False(t, Window{}.IsValid())
}
