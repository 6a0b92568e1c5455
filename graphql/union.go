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
	"sync"

	"github.com/botobag/selene/graphql/ast"
)

// UnionMemberTypesThunk returns the member types of a Union lazily. It is evaluated (once) no later
// than schema construction.
type UnionMemberTypesThunk func() ([]*Object, error)

// UnionMemberTypesOf is a convenience for supplying an already-known member list as a
// UnionMemberTypesThunk.
func UnionMemberTypesOf(types ...*Object) UnionMemberTypesThunk {
	return func() ([]*Object, error) {
		return types, nil
	}
}

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes describes which Object types can be represented by the defining union.
	PossibleTypes UnionMemberTypesThunk

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.UnionTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.UnionTypeExtension
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Unions
type Union struct {
	config UnionConfig

	possibleTypesOnce sync.Once
	possibleTypes     []*Object
	possibleTypesErr  error
}

var (
	_ Type          = (*Union)(nil)
	_ NamedType     = (*Union)(nil)
	_ AbstractType  = (*Union)(nil)
	_ CompositeType = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}
	return &Union{config: config}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Union) graphqlNamedType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// graphqlCompositeType implements CompositeType.
func (*Union) graphqlCompositeType() {}

// Name implements NamedType.
func (u *Union) Name() string {
	return u.config.Name
}

// Description implements NamedType.
func (u *Union) Description() string {
	return u.config.Description
}

// PossibleTypes returns member of the union type.
func (u *Union) PossibleTypes() []*Object {
	possibleTypes, _ := u.resolvePossibleTypes()
	return possibleTypes
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (u *Union) Definition() *ast.UnionTypeDefinition {
	return u.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (u *Union) Extensions() []*ast.UnionTypeExtension {
	return u.config.Extensions
}

// String implements fmt.Stringer.
func (u *Union) String() string {
	return u.Name()
}

func (u *Union) resolvePossibleTypes() ([]*Object, error) {
	u.possibleTypesOnce.Do(func() {
		if u.config.PossibleTypes == nil {
			return
		}
		u.possibleTypes, u.possibleTypesErr = u.config.PossibleTypes()
	})
	return u.possibleTypes, u.possibleTypesErr
}

// resolve implements resolvable.
func (u *Union) resolve() error {
	_, err := u.resolvePossibleTypes()
	return err
}
