package service

import "errors"

var (
	// ErrItemNotFound means a (type, id) pair no longer exists in the held
	// board, typically because another client deleted the item between
	// reloads.
	ErrItemNotFound = errors.New("item not found on the board")

	// ErrImageRequired is returned when a found-item report is submitted
	// without a photo. The server rejects such reports too; failing locally
	// gives the user a clear message before any network call.
	ErrImageRequired = errors.New("a photo is required for found items")

	// ErrMissingFields is returned when a draft lacks one of the required
	// fields (description, location, date, time).
	ErrMissingFields = errors.New("description, location, date and time are required")

	// ErrNotLoggedIn is returned by mutating operations that need admin
	// credentials when no session is stored.
	ErrNotLoggedIn = errors.New("admin login required")
)
