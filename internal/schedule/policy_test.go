package schedule

import (
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnchorDate(t *testing.T) {
	now := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	days := []domain.TrainingDay{
		{Date: now.AddDate(0, 0, 3)},
		{Date: time.Time{}},
		{Date: now.AddDate(0, 0, 1)},
	}
	assert.Equal(t, now.AddDate(0, 0, 1), AnchorDate(days, now))
	assert.Equal(t, now, AnchorDate(nil, now))
	assert.Equal(t, now, AnchorDate([]domain.TrainingDay{{}}, now))
}

func TestIndexDays(t *testing.T) {
	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	days := []domain.TrainingDay{
		{ID: "a", DayIndex: 1, UpdatedAt: older},
		{ID: "b", DayIndex: 1, UpdatedAt: older.Add(time.Hour)},
		{ID: "c", DayIndex: 9},
		{ID: "d", DayIndex: 3},
	}
	m := IndexDays(days)
	assert.Len(t, m, 2)
	assert.Equal(t, "b", m[1].ID)
	assert.Equal(t, "d", m[3].ID)
}

func TestFirstFreeIndex(t *testing.T) {
	assert.Equal(t, 0, FirstFreeIndex(nil))
	assert.Equal(t, 1, FirstFreeIndex(map[int]domain.TrainingDay{0: {}, 2: {}}))

	full := map[int]domain.TrainingDay{}
	for i := 0; i < domain.DaysPerWeek; i++ {
		full[i] = domain.TrainingDay{}
	}
	assert.Equal(t, 0, FirstFreeIndex(full))
}

func TestDateForIndex_CrossesMonth(t *testing.T) {
	anchor := time.Date(2024, 1, 29, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 2, 7, 0, 0, 0, time.UTC), DateForIndex(calendar.New(nil), anchor, 4))
}

func TestSortDays(t *testing.T) {
	days := []domain.TrainingDay{{ID: "x", DayIndex: 4}, {ID: "y", DayIndex: 0}, {ID: "z", DayIndex: 2}}
	sorted := SortDays(days)
	assert.Equal(t, "y", sorted[0].ID)
	assert.Equal(t, "z", sorted[1].ID)
	assert.Equal(t, "x", sorted[2].ID)
	// input order kept
	assert.Equal(t, "x", days[0].ID)
}
