package usecase

import (
	"testing"
	"time"
)

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "spring belongs to previous season", now: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), want: 2024},
		{name: "june still previous season", now: time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC), want: 2024},
		{name: "july starts the new season", now: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), want: 2025},
		{name: "december is current season", now: time.Date(2024, time.December, 7, 17, 30, 0, 0, time.UTC), want: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSeason(tt.now); got != tt.want {
				t.Fatalf("expected season %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFormatSeason(t *testing.T) {
	tests := []struct {
		season int
		want   string
	}{
		{season: 2024, want: "2024/25"},
		{season: 2009, want: "2009/10"},
		{season: 1999, want: "1999/00"},
	}

	for _, tt := range tests {
		if got := FormatSeason(tt.season); got != tt.want {
			t.Fatalf("expected %q for season %d, got %q", tt.want, tt.season, got)
		}
	}
}
