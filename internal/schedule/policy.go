// Package schedule places training days into the ordinal slots of a week.
package schedule

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"sort"
	"time"
)

// IndexDays maps each slot to its day. Should a slot hold more than one day,
// the most recently updated wins so edits land on the copy students see.
func IndexDays(days []domain.TrainingDay) map[int]domain.TrainingDay {
	byIndex := make(map[int]domain.TrainingDay, len(days))
	for _, d := range days {
		if !domain.ValidDayIndex(d.DayIndex) {
			continue
		}
		if cur, ok := byIndex[d.DayIndex]; ok {
			if cur.UpdatedAt.After(d.UpdatedAt) || (cur.UpdatedAt.Equal(d.UpdatedAt) && cur.ID < d.ID) {
				continue
			}
		}
		byIndex[d.DayIndex] = d
	}
	return byIndex
}

// AnchorDate is the earliest day date, or now when the week has no dated days.
func AnchorDate(days []domain.TrainingDay, now time.Time) time.Time {
	var anchor time.Time
	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		if anchor.IsZero() || d.Date.Before(anchor) {
			anchor = d.Date
		}
	}
	if anchor.IsZero() {
		return now
	}
	return anchor
}

// FirstFreeIndex returns the lowest unoccupied slot, or the first slot when the week is full.
func FirstFreeIndex(existing map[int]domain.TrainingDay) int {
	for i := domain.FirstDayIndex; i <= domain.LastDayIndex; i++ {
		if _, taken := existing[i]; !taken {
			return i
		}
	}
	return domain.FirstDayIndex
}

// DateForIndex is anchor shifted by index calendar days.
func DateForIndex(cal calendar.Calendar, anchor time.Time, index int) time.Time {
	return cal.AddDays(anchor, index)
}

// SortDays returns days ordered by slot, then date.
func SortDays(days []domain.TrainingDay) []domain.TrainingDay {
	sorted := append([]domain.TrainingDay(nil), days...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DayIndex != sorted[j].DayIndex {
			return sorted[i].DayIndex < sorted[j].DayIndex
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// SortWeeks orders weeks by start date, newest first, in place.
func SortWeeks(weeks []domain.TrainingWeek) {
	sort.SliceStable(weeks, func(i, j int) bool {
		return weeks[i].StartDate.After(weeks[j].StartDate)
	})
}
