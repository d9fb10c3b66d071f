package importer

import "time"

// maxWindowDays is the longest span the Wise statement endpoint answers
// reliably; longer queries come back truncated or rejected.
const maxWindowDays = 180

type Window struct {
	Start time.Time
	End   time.Time
}

// PlanWindows splits [now-periodDays, now] into consecutive windows of at
// most 180 days, oldest first. Each window's End is the next window's Start,
// so the union covers the full period with no gaps and no overlaps.
func PlanWindows(now time.Time, periodDays int) []Window {
	end := now.UTC().Truncate(time.Second)
	cursor := end.AddDate(0, 0, -periodDays)

	var windows []Window
	for cursor.Before(end) {
		windowEnd := cursor.AddDate(0, 0, maxWindowDays)
		if windowEnd.After(end) {
			windowEnd = end
		}

		windows = append(windows, Window{
			Start: cursor,
			End:   windowEnd,
		})

		cursor = windowEnd
	}

	return windows
}
