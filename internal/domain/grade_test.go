package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradePoints_Table(t *testing.T) {
	want := map[Grade]float64{
		GradeA: 5.0, GradeBPlus: 4.5, GradeB: 4.0, GradeCPlus: 3.5,
		GradeC: 3.0, GradeDPlus: 2.5, GradeD: 2.0, GradeF: 0,
	}
	for g, p := range want {
		got, ok := g.Points()
		require.True(t, ok, "grade %s should be on the scale", g)
		assert.Equal(t, p, got, "grade %s", g)
	}
	assert.Len(t, Grades(), len(want))
}

func TestGrade_UnknownHasNoPoints(t *testing.T) {
	_, ok := Grade("A+").Points()
	assert.False(t, ok)
	assert.False(t, Grade("").Valid())
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade("c+")
	require.NoError(t, err)
	assert.Equal(t, GradeCPlus, g)

	_, err = ParseGrade("E")
	assert.ErrorIs(t, err, ErrUnknownGrade)
}

func TestGrades_ReturnsCopy(t *testing.T) {
	g := Grades()
	g[0] = "Z"
	assert.Equal(t, GradeA, Grades()[0])
}
