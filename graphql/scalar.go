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
	"github.com/botobag/selene/graphql/ast"
)

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// SpecifiedByURL points at the specification of the custom scalar, if any. It is ordinarily
	// supplied through the @specifiedBy directive.
	SpecifiedByURL string

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.ScalarTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.ScalarTypeExtension
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type Scalar struct {
	config ScalarConfig
}

var (
	_ Type      = (*Scalar)(nil)
	_ NamedType = (*Scalar)(nil)
	_ LeafType  = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	return &Scalar{config: config}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Scalar) graphqlNamedType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// Name implements NamedType.
func (s *Scalar) Name() string {
	return s.config.Name
}

// Description implements NamedType.
func (s *Scalar) Description() string {
	return s.config.Description
}

// SpecifiedByURL points at the specification of the custom scalar, or is empty when none was
// supplied.
func (s *Scalar) SpecifiedByURL() string {
	return s.config.SpecifiedByURL
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (s *Scalar) Definition() *ast.ScalarTypeDefinition {
	return s.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (s *Scalar) Extensions() []*ast.ScalarTypeExtension {
	return s.config.Extensions
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.Name()
}

// resolve implements resolvable. A Scalar has no deferred references.
func (s *Scalar) resolve() error {
	return nil
}
