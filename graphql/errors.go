/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"

	"github.com/botobag/selene/internal/util"
)

// UnknownTypeError indicates a type reference that resolves neither to a type in the base schema
// nor to a definition in the document being applied.
type UnknownTypeError struct {
	// TypeName is the name that failed to resolve.
	TypeName string

	// Suggestions lists names of known types with a similar spelling, best match first.
	Suggestions []string
}

var _ error = (*UnknownTypeError)(nil)

// Error implements Go's error interface.
func (e *UnknownTypeError) Error() string {
	message := fmt.Sprintf(`Unknown type: "%s".`, e.TypeName)
	if len(e.Suggestions) > 0 {
		message += fmt.Sprintf(" Did you mean %s?", util.OrList(e.Suggestions, 5, true))
	}
	return message
}

// NewUnknownTypeError builds an Error of kind ErrKindUnknownType around an UnknownTypeError which
// records the offending name. knownTypeNames is used to compute "did you mean" suggestions.
func NewUnknownTypeError(typeName string, knownTypeNames []string) error {
	unknownTypeErr := &UnknownTypeError{
		TypeName:    typeName,
		Suggestions: util.SuggestionList(typeName, knownTypeNames),
	}
	return NewError(unknownTypeErr.Error(), unknownTypeErr, ErrKindUnknownType)
}

// AsUnknownTypeError unwraps err down to an UnknownTypeError, or returns nil if err was not caused
// by one.
func AsUnknownTypeError(err error) *UnknownTypeError {
	for err != nil {
		switch e := err.(type) {
		case *UnknownTypeError:
			return e
		case *Error:
			err = e.Err
		default:
			return nil
		}
	}
	return nil
}
