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

// InterfacesThunk returns the list of interfaces implemented by a type lazily. It is evaluated
// (once) no later than schema construction.
type InterfacesThunk func() ([]*Interface, error)

// InterfacesOf is a convenience for supplying an already-known interface list as an
// InterfacesThunk.
func InterfacesOf(interfaces ...*Interface) InterfacesThunk {
	return func() ([]*Interface, error) {
		return interfaces, nil
	}
}

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces that implemented by the defining Object
	Interfaces InterfacesThunk

	// Fields in the object
	Fields FieldsThunk

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.ObjectTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.ObjectTypeExtension
}

// Object Type Definition
//
// GraphQL queries are hierarchical and composed, describing a tree of information. While Scalar
// types describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Object struct {
	config ObjectConfig

	fieldsOnce sync.Once
	fields     FieldMap
	fieldsErr  error

	interfacesOnce sync.Once
	interfaces     []*Interface
	interfacesErr  error
}

var (
	_ Type          = (*Object)(nil)
	_ NamedType     = (*Object)(nil)
	_ CompositeType = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}
	return &Object{config: config}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Object) graphqlNamedType() {}

// graphqlCompositeType implements CompositeType.
func (*Object) graphqlCompositeType() {}

// Name implements NamedType.
func (o *Object) Name() string {
	return o.config.Name
}

// Description implements NamedType.
func (o *Object) Description() string {
	return o.config.Description
}

// Fields in the object
func (o *Object) Fields() FieldMap {
	fields, _ := o.resolveFields()
	return fields
}

// Interfaces includes interfaces that implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	interfaces, _ := o.resolveInterfaces()
	return interfaces
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (o *Object) Definition() *ast.ObjectTypeDefinition {
	return o.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (o *Object) Extensions() []*ast.ObjectTypeExtension {
	return o.config.Extensions
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.Name()
}

func (o *Object) resolveFields() (FieldMap, error) {
	o.fieldsOnce.Do(func() {
		if o.config.Fields == nil {
			return
		}
		fieldConfigs, err := o.config.Fields()
		if err != nil {
			o.fieldsErr = err
			return
		}
		o.fields, o.fieldsErr = buildFieldMap(fieldConfigs)
	})
	return o.fields, o.fieldsErr
}

func (o *Object) resolveInterfaces() ([]*Interface, error) {
	o.interfacesOnce.Do(func() {
		if o.config.Interfaces == nil {
			return
		}
		o.interfaces, o.interfacesErr = o.config.Interfaces()
	})
	return o.interfaces, o.interfacesErr
}

// resolve implements resolvable. It forces evaluation of the deferred field and interface
// references and reports the first error.
func (o *Object) resolve() error {
	if _, err := o.resolveFields(); err != nil {
		return err
	}
	if _, err := o.resolveInterfaces(); err != nil {
		return err
	}
	return nil
}
