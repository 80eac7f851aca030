package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_StartsIdle(t *testing.T) {
	var s Selection
	assert.Equal(t, SelectionIdle, s.State())
	_, ok := s.ID()
	assert.False(t, ok)
}

func TestSelection_SelectSameRowTwiceTogglesOff(t *testing.T) {
	var s Selection
	require.NoError(t, s.Select(7))
	assert.True(t, s.IsSelected(7))

	require.NoError(t, s.Select(7))
	assert.Equal(t, SelectionIdle, s.State())
	assert.False(t, s.IsSelected(7))
}

func TestSelection_SelectOtherRowMovesSelection(t *testing.T) {
	var s Selection
	require.NoError(t, s.Select(7))
	require.NoError(t, s.Select(8))
	assert.True(t, s.IsSelected(8))
	assert.False(t, s.IsSelected(7))
}

func TestSelection_EditThenSubmit(t *testing.T) {
	var s Selection
	require.NoError(t, s.Select(3))

	id, err := s.BeginEdit()
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.True(t, s.Editing())
	assert.False(t, s.IsSelected(3), "selection is cleared while editing")

	id, err = s.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, SelectionIdle, s.State())
}

func TestSelection_EditThenCancel(t *testing.T) {
	var s Selection
	require.NoError(t, s.Select(3))
	_, err := s.BeginEdit()
	require.NoError(t, err)

	require.NoError(t, s.Cancel())
	assert.Equal(t, SelectionIdle, s.State())
}

func TestSelection_DeleteReturnsIDAndClears(t *testing.T) {
	var s Selection
	require.NoError(t, s.Select(9))

	id, err := s.Delete()
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, SelectionIdle, s.State())
}

func TestSelection_DeselectOnlyClearsRowSelection(t *testing.T) {
	var s Selection
	s.Deselect()
	assert.Equal(t, SelectionIdle, s.State())

	require.NoError(t, s.Select(1))
	s.Deselect()
	assert.Equal(t, SelectionIdle, s.State())

	require.NoError(t, s.Select(1))
	_, err := s.BeginEdit()
	require.NoError(t, err)
	s.Deselect()
	assert.True(t, s.Editing(), "outside clicks do not abandon an edit")
}

func TestSelection_InvalidTransitions(t *testing.T) {
	var idle Selection
	_, err := idle.BeginEdit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = idle.Delete()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = idle.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, idle.Cancel(), ErrInvalidTransition)

	var editing Selection
	require.NoError(t, editing.Select(5))
	_, err = editing.BeginEdit()
	require.NoError(t, err)
	assert.ErrorIs(t, editing.Select(6), ErrInvalidTransition)
	id, ok := editing.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(5), id, "failed transition leaves state unchanged")
}
