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

// EnumValueConfig provides definition for a value in an Enum type.
type EnumValueConfig struct {
	// Name of the enum value
	Name string

	// Description of the enum value
	Description string

	// Value is the internal value to be used when the enum value is read from input. If nil, the name
	// of the enum value is used.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Definition is the AST node the enum value was constructed from, if any.
	Definition *ast.EnumValueDefinition
}

// EnumValues lists enum value definitions in the order they should appear in the defining type.
type EnumValues []EnumValueConfig

// EnumValueMap is an ordered collection of enum values keyed by name.
type EnumValueMap []*EnumValue

// Lookup finds the enum value with given name or return nil if there's no such one.
func (m EnumValueMap) Lookup(name string) *EnumValue {
	for _, value := range m {
		if value.Name() == name {
			return value
		}
	}
	return nil
}

// buildEnumValueMap builds an EnumValueMap from given EnumValues. A config whose name collides with
// an earlier one replaces it in place, keeping the earlier position.
func buildEnumValueMap(valueConfigs EnumValues) EnumValueMap {
	numValues := len(valueConfigs)
	if numValues == 0 {
		return nil
	}

	valueMap := make(EnumValueMap, 0, numValues)
	for i := range valueConfigs {
		valueConfig := &valueConfigs[i]

		internalValue := valueConfig.Value
		if internalValue == nil {
			internalValue = valueConfig.Name
		}

		value := &EnumValue{
			name:        valueConfig.Name,
			description: valueConfig.Description,
			value:       internalValue,
			deprecation: valueConfig.Deprecation,
			definition:  valueConfig.Definition,
		}

		if prev := valueMap.Lookup(value.name); prev != nil {
			*prev = *value
		} else {
			valueMap = append(valueMap, value)
		}
	}

	return valueMap
}

// EnumValue provides definition for a value in enum.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumValue
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
	definition  *ast.EnumValueDefinition
}

// Name of enum value.
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value
func (v *EnumValue) Description() string {
	return v.description
}

// Value returns the internal value to be used when the enum value is read from input.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.deprecation
}

// Definition is the AST node the enum value was constructed from, or nil for a value constructed
// programmatically.
func (v *EnumValue) Definition() *ast.EnumValueDefinition {
	return v.definition
}

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values to be defined in the Enum type
	Values EnumValues

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.EnumTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.EnumTypeExtension
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type Enum struct {
	config EnumConfig
	values EnumValueMap
}

var (
	_ Type      = (*Enum)(nil)
	_ NamedType = (*Enum)(nil)
	_ LeafType  = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}
	return &Enum{
		config: config,
		values: buildEnumValueMap(config.Values),
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*Enum) graphqlNamedType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements NamedType.
func (e *Enum) Name() string {
	return e.config.Name
}

// Description implements NamedType.
func (e *Enum) Description() string {
	return e.config.Description
}

// Values return all enum values defined in this Enum type.
func (e *Enum) Values() EnumValueMap {
	return e.values
}

// Value finds the enum value with given name.
func (e *Enum) Value(name string) *EnumValue {
	return e.values.Lookup(name)
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (e *Enum) Definition() *ast.EnumTypeDefinition {
	return e.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (e *Enum) Extensions() []*ast.EnumTypeExtension {
	return e.config.Extensions
}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.Name()
}

// resolve implements resolvable. Enum values are built eagerly.
func (e *Enum) resolve() error {
	return nil
}
