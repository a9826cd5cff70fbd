package controller

import "errors"

// gameWarning is an error that represents a user error, such as asking for a round to start while one is being played.
type gameWarning string

// Error returns the string of the error.
func (w gameWarning) Error() string {
	return string(w)
}

// IsWarning determines if the error is a warning about the state of the game rather than a problem with how the game is used.
func IsWarning(err error) bool {
	var w gameWarning
	return errors.As(err, &w)
}
