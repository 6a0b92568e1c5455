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

import "fmt"

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and can ensure an error is raised if this ever occurs during a request. It
// is useful for fields which you can make a strong guarantee on non-nullability, for example
// usually the id field of a database row will never be null.
//
// Note: the enforcement of non-nullability occurs within the executor.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType defines a NonNull type wrapping the given inner type. A NonNull must not wrap
// another NonNull directly.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil inner type for NonNull.")
	}
	if _, ok := innerType.(*NonNull); ok {
		return nil, NewError(fmt.Sprintf(`Expected a nullable type but got "%s".`, innerType))
	}
	return &NonNull{innerType: innerType}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(innerType Type) *NonNull {
	n, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// InnerType indicates the type of the element wrapped in this non-null type.
func (n *NonNull) InnerType() Type {
	return n.innerType
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.InnerType()
}

// String implements fmt.Stringer.
func (n *NonNull) String() string {
	return fmt.Sprintf("%s!", n.InnerType())
}
