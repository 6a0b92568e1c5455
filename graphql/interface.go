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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Interfaces that implemented by the defining Interface
	Interfaces InterfacesThunk

	// Fields that needs to be provided when implementing this interface
	Fields FieldsThunk

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.InterfaceTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.InterfaceTypeExtension
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, a Interface type is used to describe
// what types are possible, and what fields are in common across all types.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Interfaces
type Interface struct {
	config InterfaceConfig

	fieldsOnce sync.Once
	fields     FieldMap
	fieldsErr  error

	interfacesOnce sync.Once
	interfaces     []*Interface
	interfacesErr  error
}

var (
	_ Type          = (*Interface)(nil)
	_ NamedType     = (*Interface)(nil)
	_ AbstractType  = (*Interface)(nil)
	_ CompositeType = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}
	return &Interface{config: config}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Interface) graphqlNamedType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// graphqlCompositeType implements CompositeType.
func (*Interface) graphqlCompositeType() {}

// Name implements NamedType.
func (iface *Interface) Name() string {
	return iface.config.Name
}

// Description implements NamedType.
func (iface *Interface) Description() string {
	return iface.config.Description
}

// Fields returns set of fields that needs to be provided when implementing this interface.
func (iface *Interface) Fields() FieldMap {
	fields, _ := iface.resolveFields()
	return fields
}

// Interfaces includes interfaces that implemented by the Interface type.
func (iface *Interface) Interfaces() []*Interface {
	interfaces, _ := iface.resolveInterfaces()
	return interfaces
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (iface *Interface) Definition() *ast.InterfaceTypeDefinition {
	return iface.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (iface *Interface) Extensions() []*ast.InterfaceTypeExtension {
	return iface.config.Extensions
}

// String implements fmt.Stringer.
func (iface *Interface) String() string {
	return iface.Name()
}

func (iface *Interface) resolveFields() (FieldMap, error) {
	iface.fieldsOnce.Do(func() {
		if iface.config.Fields == nil {
			return
		}
		fieldConfigs, err := iface.config.Fields()
		if err != nil {
			iface.fieldsErr = err
			return
		}
		iface.fields, iface.fieldsErr = buildFieldMap(fieldConfigs)
	})
	return iface.fields, iface.fieldsErr
}

func (iface *Interface) resolveInterfaces() ([]*Interface, error) {
	iface.interfacesOnce.Do(func() {
		if iface.config.Interfaces == nil {
			return
		}
		iface.interfaces, iface.interfacesErr = iface.config.Interfaces()
	})
	return iface.interfaces, iface.interfacesErr
}

// resolve implements resolvable.
func (iface *Interface) resolve() error {
	if _, err := iface.resolveFields(); err != nil {
		return err
	}
	if _, err := iface.resolveInterfaces(); err != nil {
		return err
	}
	return nil
}
