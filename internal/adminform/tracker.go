package adminform

import (
	"encoding/json"
	"sync"
)

// View is the admin UI's top-level state.
type View int

const (
	ViewLogin View = iota
	ViewEditor
	ViewLocked
)

func (v View) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewLocked:
		return "locked"
	default:
		return "login"
	}
}

// SaveTracker tracks the editor's save lifecycle: whether the form
// differs from the last-saved content, whether a save is in flight
// (at most one; a second attempt while pending is a no-op), and which
// view the UI is in. A 401 mid-edit locks the editor without
// discarding the form state held by the caller.
type SaveTracker struct {
	mu        sync.Mutex
	view      View
	lastSaved string
	saving    bool
}

func NewSaveTracker() *SaveTracker {
	return &SaveTracker{view: ViewLogin}
}

func (t *SaveTracker) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Authenticated moves login or locked to the editor and snapshots the
// loaded form as the clean state.
func (t *SaveTracker) Authenticated(m FormModel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = ViewEditor
	t.lastSaved = snapshot(m)
	t.saving = false
}

// Unauthorized is any 401 seen while editing: the editor locks but the
// dirty snapshot is kept so edits survive a re-login.
func (t *SaveTracker) Unauthorized() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.view == ViewEditor {
		t.view = ViewLocked
	}
	t.saving = false
}

// Relogin is the explicit action from the locked screen.
func (t *SaveTracker) Relogin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.view == ViewLocked {
		t.view = ViewLogin
	}
}

// Logout returns false when the form is dirty and the caller has not
// confirmed, leaving the view unchanged; the unsaved-changes guard.
func (t *SaveTracker) Logout(current FormModel, confirmed bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.view == ViewEditor && snapshot(current) != t.lastSaved && !confirmed {
		return false
	}
	t.view = ViewLogin
	t.saving = false
	return true
}

// Dirty reports whether the form differs from the last-saved content.
func (t *SaveTracker) Dirty(current FormModel) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return snapshot(current) != t.lastSaved
}

// BeginSave claims the single save slot. It returns false while a
// save is already in flight; the caller drops the attempt rather than
// queueing it.
func (t *SaveTracker) BeginSave() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.saving || t.view != ViewEditor {
		return false
	}
	t.saving = true
	return true
}

// FinishSave releases the save slot. On success the saved form
// becomes the new clean state.
func (t *SaveTracker) FinishSave(saved *FormModel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saving = false
	if saved != nil {
		t.lastSaved = snapshot(*saved)
	}
}

// snapshot serializes a form model for equality checks. FormModel is
// all strings and slices, so JSON equality is value equality.
func snapshot(m FormModel) string {
	b, _ := json.Marshal(m)
	return string(b)
}
