// Package errors provides sentinel errors and error types for the chess
// rules kernel. It defines common error conditions and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownCommand indicates a protocol line that names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates a lookup of a game id that is not held.
	ErrSessionNotFound = errors.New("session not found")
)

// FENError describes which field of a FEN string could not be parsed.
// It unwraps to ErrInvalidFEN.
type FENError struct {
	Field  string // Name of the offending field, e.g. "piece placement"
	Value  string // The text that was rejected (may be empty)
	Reason string // Human readable explanation
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	parts = append(parts, ErrInvalidFEN.Error())

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns ErrInvalidFEN so that errors.Is() matches every FENError.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// NewFENError builds a FENError with a formatted reason.
func NewFENError(field, value, format string, args ...interface{}) *FENError {
	return &FENError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

// MoveError reports a rejected move together with the position it was
// played in. The rules kernel itself signals rejection through the move
// value; MoveError is for adapters that need an error to return.
type MoveError struct {
	Err  error  // The underlying error
	Move string // The move text, e.g. "e2e5"
	FEN  string // Position the move was attempted in (if known)
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.Move)
	if e.FEN != "" {
		msg += fmt.Sprintf(" in %q", e.FEN)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
