package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlocks_DropsEmptyNames(t *testing.T) {
	in := []Block{
		{Name: "Warm-up", Details: "10 min row"},
		{Name: "   ", Details: "lost"},
		{Name: ""},
		{ID: "keep-me", Name: " WOD ", Details: "21-15-9"},
	}

	out := NormalizeBlocks(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Warm-up", out[0].Name)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "keep-me", out[1].ID)
	assert.Equal(t, "WOD", out[1].Name)

	// input untouched
	assert.Equal(t, " WOD ", in[3].Name)
	assert.Empty(t, in[0].ID)
}

func TestNormalizeBlocks_Empty(t *testing.T) {
	assert.Empty(t, NormalizeBlocks(nil))
	assert.Empty(t, NormalizeBlocks([]Block{{Name: "\t"}}))
}

func TestCompletionMap_CountCompleted(t *testing.T) {
	m := CompletionMap{"d1": true, "d2": false, "gone": true}
	days := []TrainingDay{{ID: "d1"}, {ID: "d3"}}

	assert.Equal(t, 1, m.CountCompleted(days))
	assert.Equal(t, 0, CompletionMap(nil).CountCompleted(days))
	assert.Equal(t, 1, m.CountCompleted([]TrainingDay{{ID: "d1"}, {ID: "d1"}}))
}

func TestCompletionMap_Clone(t *testing.T) {
	m := CompletionMap{"d1": true}
	c := m.Clone()
	c["d2"] = true
	assert.Len(t, m, 1)
	assert.NotNil(t, CompletionMap(nil).Clone())
}

func TestValidDayIndex(t *testing.T) {
	assert.True(t, ValidDayIndex(0))
	assert.True(t, ValidDayIndex(6))
	assert.False(t, ValidDayIndex(-1))
	assert.False(t, ValidDayIndex(7))
}

func TestRoleAndIdentity(t *testing.T) {
	assert.True(t, RoleTrainer.Valid())
	assert.False(t, Role("client").Valid())
	assert.True(t, Identity{UserID: "u", Role: RoleTrainer}.IsTrainer())
	assert.True(t, Identity{UserID: "u", Role: RoleStudent}.IsStudent())

	w := TrainingWeek{TrainerID: "t1"}
	assert.True(t, w.OwnedBy("t1"))
	assert.False(t, w.OwnedBy(""))
}
