package adminform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerViewTransitions(t *testing.T) {
	tr := NewSaveTracker()
	require.Equal(t, ViewLogin, tr.View())

	m := FormModel{Name: "A"}
	tr.Authenticated(m)
	require.Equal(t, ViewEditor, tr.View())

	// a 401 while editing locks the editor
	tr.Unauthorized()
	require.Equal(t, ViewLocked, tr.View())

	// explicit re-login action
	tr.Relogin()
	require.Equal(t, ViewLogin, tr.View())

	// a 401 outside the editor does not lock
	tr.Unauthorized()
	require.Equal(t, ViewLogin, tr.View())
}

func TestTrackerDirtyTracking(t *testing.T) {
	tr := NewSaveTracker()
	clean := FormModel{Name: "A", TechnicalSkills: []string{"Go"}}
	tr.Authenticated(clean)

	require.False(t, tr.Dirty(clean))
	edited := clean
	edited.Name = "B"
	require.True(t, tr.Dirty(edited))
}

func TestTrackerSingleSaveInFlight(t *testing.T) {
	tr := NewSaveTracker()
	tr.Authenticated(FormModel{Name: "A"})

	require.True(t, tr.BeginSave())
	// second attempt while pending is dropped, not queued
	require.False(t, tr.BeginSave())

	saved := FormModel{Name: "B"}
	tr.FinishSave(&saved)
	require.False(t, tr.Dirty(saved))
	require.True(t, tr.BeginSave())
	tr.FinishSave(nil)
}

func TestTrackerNoSaveOutsideEditor(t *testing.T) {
	tr := NewSaveTracker()
	require.False(t, tr.BeginSave())
	tr.Authenticated(FormModel{})
	tr.Unauthorized()
	require.False(t, tr.BeginSave())
}

func TestTrackerLogoutGuardsUnsavedChanges(t *testing.T) {
	tr := NewSaveTracker()
	clean := FormModel{Name: "A"}
	tr.Authenticated(clean)

	dirty := clean
	dirty.Name = "B"
	require.False(t, tr.Logout(dirty, false))
	require.Equal(t, ViewEditor, tr.View())

	require.True(t, tr.Logout(dirty, true))
	require.Equal(t, ViewLogin, tr.View())

	// a clean form logs out without confirmation
	tr.Authenticated(clean)
	require.True(t, tr.Logout(clean, false))
}

func TestTrackerFailedSaveStaysDirty(t *testing.T) {
	tr := NewSaveTracker()
	clean := FormModel{Name: "A"}
	tr.Authenticated(clean)

	edited := clean
	edited.Name = "B"
	require.True(t, tr.BeginSave())
	tr.FinishSave(nil) // save failed
	require.True(t, tr.Dirty(edited))
}
