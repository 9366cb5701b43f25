package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrGroupNotFound is returned when a group does not exist in the directory
	ErrGroupNotFound = goerr.New("group not found")

	// ErrClosed is returned from list operations after the component is torn down
	ErrClosed = goerr.New("group list is closed")
)
