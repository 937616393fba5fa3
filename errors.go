package hitmix

import "errors"

var (
	ErrNoNotes = errors.New("no note timestamps")
)
