package store

import "errors"

// Sentinel errors. Services translate these into user-facing domain
// errors; the store only reports what happened at the storage level.
var (
	// ErrNotFound is returned when a key or entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on a primary-key or unique-index conflict.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists is returned when a user's email is already in use.
	ErrEmailExists = errors.New("email already in use")

	// ErrFolderNotFound is returned when a folder is absent or owned by another user.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrFolderExists is returned when the user already has a folder with that name.
	ErrFolderExists = errors.New("folder name already in use")

	// ErrTagNotFound is returned when a tag is absent or owned by another user.
	ErrTagNotFound = errors.New("tag not found")
	// ErrTagExists is returned when the user already has a tag with that name.
	ErrTagExists = errors.New("tag name already in use")

	// ErrNoteNotFound is returned when a note is absent or owned by another user.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSessionNotFound is returned when a session cannot be found.
	ErrSessionNotFound = errors.New("session not found")
)
