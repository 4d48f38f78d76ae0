package repository

import (
	"errors"

	"tavernkeep/internal/world"
)

var (
	ErrNameConflict = errors.New("name already in use")
	ErrNotFound     = errors.New("not found")
	ErrStoreFailure = errors.New("data store failure")
)

// Change is a mutation request. The repository decides whether it applies.
type Change interface {
	isChange()
}

// Create adds a generated thing to the recent list.
type Create struct {
	Thing world.Thing
}

// CreateAndSave adds a thing straight to the journal.
type CreateAndSave struct {
	Thing world.Thing
}

// Save moves a recent thing to the journal.
type Save struct {
	Name string
}

// Edit applies the attributes present in Diff to the thing called Name.
type Edit struct {
	Name string
	Diff world.Thing
}

func (Create) isChange()        {}
func (CreateAndSave) isChange() {}
func (Save) isChange()          {}
func (Edit) isChange()          {}

// ChangeError is a rejected change. Its message is written for the user;
// Unwrap exposes one of the sentinel errors above.
type ChangeError struct {
	Change  Change
	Kind    error
	Message string
}

func (e *ChangeError) Error() string { return e.Message }
func (e *ChangeError) Unwrap() error { return e.Kind }

func reject(c Change, kind error, message string) *ChangeError {
	return &ChangeError{Change: c, Kind: kind, Message: message}
}
