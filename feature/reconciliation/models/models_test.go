package models

import (
	"testing"

	"finledger/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestEventValidate(t *testing.T) {
	e := Event{MatchResult: reconcile.MatchMismatch, Status: reconcile.StatusMismatch, Severity: reconcile.SeverityError}
	assert.NoError(t, e.Validate())
	assert.NoError(t, e.BeforeSave(nil))

	e = Event{MatchResult: reconcile.MatchNotApplicable, Status: reconcile.StatusResolved, Severity: reconcile.SeverityWarning}
	assert.ErrorIs(t, e.Validate(), reconcile.ErrInvalidOutcome)

	e = Event{MatchResult: reconcile.MatchExact, Status: reconcile.StatusMatched}
	assert.ErrorIs(t, e.Validate(), reconcile.ErrInvalidEnum)
}

func TestEventNoteList(t *testing.T) {
	assert.Nil(t, Event{}.NoteList())
	assert.Equal(t, []string{"a", "b"}, Event{Notes: "a\nb"}.NoteList())
}

func TestSuspenseIsOpen(t *testing.T) {
	assert.True(t, Suspense{Status: reconcile.SuspenseInProgress}.IsOpen())
	assert.False(t, Suspense{Status: reconcile.SuspenseWrittenOff}.IsOpen())
}
