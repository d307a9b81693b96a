// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds what the service and transport layers share about
// outcomes: the error kinds every failure is classified into and the
// messages written into response bodies.
//
// Services return sentinel *Error values (possibly wrapped). Only the HTTP
// layer turns a Kind into a status code.
package app

import (
	"errors"
)

// Kind classifies a failure by who can fix it.
type Kind uint8

const (
	// KindDependency is a storage or blob store failure. It is the zero
	// value so that unclassified errors are treated as server-side.
	KindDependency Kind = iota
	// KindValidation is missing or malformed client input.
	KindValidation
	// KindConflict is a request that contradicts current state: a taken
	// username, an unchanged value, an exhausted tag allocation.
	KindConflict
	// KindAuth is a bad credential or an invalid, expired or missing token.
	KindAuth
	// KindNotFound is an unknown account, review or restaurant.
	KindNotFound
)

var kindNames = map[Kind]string{
	KindDependency: "dependency",
	KindValidation: "validation",
	KindConflict:   "conflict",
	KindAuth:       "auth",
	KindNotFound:   "not_found",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Error is a classified, client-presentable error. Its message is safe to
// return in a response body.
type Error struct {
	Kind    Kind
	Message string
}

// NewError returns a new classified error.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindDependency when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindDependency
}

// MessageOf returns the client-presentable message for err. Dependency
// failures never leak their text.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindDependency {
		return appErr.Message
	}

	return MsgInternalServerError
}
