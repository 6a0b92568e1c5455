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
	"reflect"

	"github.com/botobag/selene/graphql/ast"
)

// Contains interfaces and definitions for a GraphQL schema.

// resolvable is implemented by every named type kind. resolve forces evaluation of the type's
// deferred cross-references (fields, interfaces, union members, input fields) and reports the
// first error. Once resolved, a type never changes (build-then-freeze).
type resolvable interface {
	resolve() error
}

// TypeMap keeps track of all named types referenced within the schema.
type TypeMap struct {
	types map[string]NamedType
}

// add a type into the map. This is only used by NewSchema to initialize type map incrementally.
// Adding a named type forces its deferred references, so after all reachable types are added every
// thunk in the schema has been evaluated and its error (if any) surfaced.
func (typeMap TypeMap) add(t Type) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Skip nil type quickly. Before validation, we may have nil Type or nil type instance wrapped
		// in a Type.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		// Map type name to corresponding Type.
		if namedType, ok := t.(NamedType); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				// Add the type into typeMap.
				typeMap.types[name] = namedType
			} else {
				if prev != namedType {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name))
				}
				// Skip t which has been processed.
				continue
			}

			// Force the deferred references before walking into them.
			if err := namedType.(resolvable).resolve(); err != nil {
				return err
			}
		}

		// Add types referenced by t to stack.
		switch t := t.(type) {
		case *Scalar:
			// Nothing to do.

		case *Object:
			// Add interfaces.
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}

			// Add field type and arg type.
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
				args := field.Args()
				for i := range args {
					stack = append(stack, args[i].Type())
				}
			}

		case *Interface:
			// Add interfaces.
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}

			// Add field type and arg type.
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
				args := field.Args()
				for i := range args {
					stack = append(stack, args[i].Type())
				}
			}

		case *Union:
			for _, possibleType := range t.PossibleTypes() {
				stack = append(stack, possibleType)
			}

		case *Enum:
			// Nothing to do.

		case *InputObject:
			// Add field type.
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
			}

		case *List:
			stack = append(stack, t.ElementType())
		case *NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t))
		}
	}

	return nil
}

// Lookup finds a type with given name.
func (typeMap TypeMap) Lookup(name string) NamedType {
	return typeMap.types[name]
}

// Size returns the number of types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.types)
}

// KeyRange iterates over the types in the map, calling f for each one. It stops when f returns
// false.
func (typeMap TypeMap) KeyRange(f func(name string, t NamedType) bool) {
	for name, t := range typeMap.types {
		if !f(name, t) {
			return
		}
	}
}

// typeNames returns the names of all types in the map.
func (typeMap TypeMap) typeNames() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	return names
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Description for the schema
	Description string

	// Query, Mutation and Subscription returns GraphQL Root Operation defined by the schema. They
	// are typed NamedType rather than *Object so a schema whose document named a non-object root can
	// still be assembled and handed to validation.
	Query        NamedType
	Mutation     NamedType
	Subscription NamedType

	// List of types that are declared in the schema.
	Types []NamedType

	// List of directives to be added to the schema. If nil, the standard directives (@skip,
	// @include, @deprecated and @specifiedBy) are supplied; if non-nil, this is the exact list of
	// directives represented and allowed.
	Directives DirectiveList

	// Definition is the schema definition AST node, if any.
	Definition *ast.SchemaDefinition

	// Extensions lists the schema extension AST nodes that contributed to the schema, in the order
	// they were applied.
	Extensions []*ast.SchemaExtension
}

// Schema Definition
//
// A GraphQL service’s collective type system capabilities are referred to as that service’s
// “schema”. A schema is defined in terms of the types and directives it supports as well as the
// root operation types for each kind of operation: query, mutation, and subscription; this
// determines the place in the type system where those operations begin.
//
// Definitions including types and directives in schema are assumed to be immutable after creation.
// This allows us to cache the results for some operations such as PossibleTypes.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Schema
type Schema struct {
	// config this schema was built from; returned verbatim by ToConfig so an extension that changes
	// nothing can be detected by comparing config pointers.
	config *SchemaConfig

	// typeMap contains all named type defined in the schema.
	typeMap TypeMap

	// directives contains all directives defined in the schema.
	directives DirectiveList

	// implementations keeps track of all implementations by interface.
	implementations map[*Interface][]*Object
}

// NewSchema initializes a Schema from the given config. It adds every type reachable from the
// roots, the enumerated types and the directive arguments into the schema's type map; doing so
// evaluates all deferred type references, so any error raised by one is reported here.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	schema := &Schema{
		config: config,
	}

	if config.Directives == nil {
		schema.directives = StandardDirectives()
	} else {
		schema.directives = make(DirectiveList, len(config.Directives))
		// Make a copy.
		copy(schema.directives, config.Directives)
	}

	// Build type map now to detect any errors within this schema.
	typeMap := TypeMap{
		types: map[string]NamedType{},
	}

	// Add root operation types.
	if err := typeMap.add(config.Query); err != nil {
		return nil, err
	}
	if err := typeMap.add(config.Mutation); err != nil {
		return nil, err
	}
	if err := typeMap.add(config.Subscription); err != nil {
		return nil, err
	}

	// Add built-in scalar types.
	for _, scalar := range SpecifiedScalarTypes() {
		if err := typeMap.add(scalar); err != nil {
			return nil, err
		}
	}

	// Add types used specifically for introspection.
	for _, introspectionType := range IntrospectionTypes() {
		if err := typeMap.add(introspectionType); err != nil {
			return nil, err
		}
	}

	// Visit all enumerated types in config.
	for _, t := range config.Types {
		if err := typeMap.add(t); err != nil {
			return nil, err
		}
	}

	// Visit types referenced by directives.
	for _, directive := range schema.directives {
		args := directive.Args()
		for i := range args {
			if err := typeMap.add(args[i].Type()); err != nil {
				return nil, err
			}
		}
	}

	// Storing the resulting map for reference by the schema.
	schema.typeMap = typeMap

	// Keep track of all implementations by interface.
	implementations := map[*Interface][]*Object{}
	for _, t := range typeMap.types {
		// Find all Object types.
		if t, ok := t.(*Object); ok {
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range t.Interfaces() {
				implementations[iface] = append(implementations[iface], t)
			}
		}
	}
	schema.implementations = implementations

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// ToConfig returns the config the schema was built from. The returned value is the schema's own
// config, not a copy; two schemas built from the same config share it.
func (schema *Schema) ToConfig() *SchemaConfig {
	return schema.config
}

// Description provides documentation for the schema.
func (schema *Schema) Description() string {
	return schema.config.Description
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Directives keeps track of all valid directives within the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() NamedType {
	return schema.config.Query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() NamedType {
	return schema.config.Mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() NamedType {
	return schema.config.Subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For Interface, this is
// the list of Object type that implement it. For Union, this is the list of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t]
	default:
		return nil
	}
}

// TypeFromAST returns a graphql.Type that applies to the ast.Type in the given schema. For example,
// if provided the parsed AST node for `[User]`, a graphql.List instance will be returned,
// containing the type called "User" found in the schema. If a type called "User" is not found in
// the schema, then nil will be returned.
func (schema *Schema) TypeFromAST(t ast.Type) Type {
	// Find the innermost ast.NamedType. Memoize what type we've went through.
	var (
		typeName string
		typePath []ast.Type
	)

	for len(typeName) == 0 {
		switch ttype := t.(type) {
		case ast.NamedType:
			typeName = ttype.Name.Value()

		case ast.ListType:
			// Append current type to typePath.
			typePath = append(typePath, t)
			// Continue on inner type.
			t = ttype.ItemType

		case ast.NonNullType:
			typePath = append(typePath, t)
			t = ttype.Type

		default:
			panic("unexpected AST type kind")
		}
	}

	// Find the graphql.Type for the name.
	var result Type
	if namedType := schema.TypeMap().Lookup(typeName); namedType != nil {
		result = namedType
	} else {
		return nil
	}

	// Go through typePath backward to build wrapping type.
	for len(typePath) > 0 {
		t, typePath = typePath[len(typePath)-1], typePath[:len(typePath)-1]
		if _, ok := t.(ast.ListType); ok {
			result = MustNewListOfType(result)
		} else {
			// Must be a NonNullType.
			result = MustNewNonNullOfType(result)
		}
	}

	return result
}
