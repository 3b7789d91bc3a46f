package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ordinal slots available in a week.
const (
	FirstDayIndex = 0
	LastDayIndex  = 6
	DaysPerWeek   = LastDayIndex + 1
)

// Block is a named section of a day's workout, e.g. "Warm-up" or "WOD".
type Block struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Details string `bson:"details,omitempty" json:"details,omitempty"`
}

// TrainingDay is a single training session placed at an ordinal slot of a week.
type TrainingDay struct {
	ID          string    `bson:"-" json:"id"`
	WeekID      string    `bson:"-" json:"weekId"`
	DayIndex    int       `bson:"dayIndex" json:"dayIndex"` // 0..6
	DayName     string    `bson:"dayName" json:"dayName"`
	Date        time.Time `bson:"date" json:"date"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Blocks      []Block   `bson:"blocks" json:"blocks"` // Embedded, ordered
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidDayIndex reports whether i is a slot inside a week.
func ValidDayIndex(i int) bool {
	return i >= FirstDayIndex && i <= LastDayIndex
}

// NormalizeBlocks drops blocks whose trimmed name is empty and gives the rest an id.
// The input slice is not modified.
func NormalizeBlocks(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}
		b.Name = name
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		out = append(out, b)
	}
	return out
}
