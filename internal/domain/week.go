package domain

import (
	"time"
)

// TrainingWeek is a trainer-defined date range holding up to seven training days for one student.
type TrainingWeek struct {
	ID        string    `bson:"-" json:"id"`
	StudentID string    `bson:"studentId" json:"studentId"` // Who the week is for
	TrainerID string    `bson:"trainerId" json:"trainerId"` // Who created it
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
	Published bool      `bson:"published" json:"published"` // Visible to the student when set
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether the week was created by the given trainer.
func (w *TrainingWeek) OwnedBy(trainerID string) bool {
	return w.TrainerID != "" && w.TrainerID == trainerID
}
