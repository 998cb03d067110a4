package usecase

import (
	"fmt"
	"time"
)

// CurrentSeason resolves the season year the provider expects. European
// seasons roll over in July: August 2026 is season 2026, March 2026 is
// still season 2025.
func CurrentSeason(now time.Time) int {
	year := now.Year()
	if now.Month() >= time.July {
		return year
	}
	return year - 1
}

// FormatSeason renders a season year as the display label, e.g. 2024 ->
// "2024/25".
func FormatSeason(season int) string {
	return fmt.Sprintf("%d/%02d", season, (season+1)%100)
}
