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

// Fields lists field definitions in the order they should appear in the defining type. In general,
// this should be named as "FieldConfigList". However, this type is used frequently so we try to
// make it shorter to save some typing efforts.
type Fields []FieldConfig

// FieldsThunk returns Fields lazily. It is evaluated (once) when the containing type first resolves
// its fields, which happens no later than schema construction.
type FieldsThunk func() (Fields, error)

// FieldsOf is a convenience for supplying an already-known Fields as a FieldsThunk.
func FieldsOf(fields Fields) FieldsThunk {
	return func() (Fields, error) {
		return fields, nil
	}
}

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type of value yielded by the field
	Type Type

	// Argument configuration of the field
	Args []ArgumentConfig

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	// Definition is the AST node the field was constructed from, if any.
	Definition *ast.FieldDefinition
}

// FieldMap is an ordered collection of fields keyed by name.
type FieldMap []*Field

// Lookup finds the field with given name or returns nil if there's no such one.
func (m FieldMap) Lookup(name string) *Field {
	for _, field := range m {
		if field.Name() == name {
			return field
		}
	}
	return nil
}

// buildFieldMap builds a FieldMap from given Fields. A config whose name collides with an earlier
// one replaces it in place, keeping the earlier position.
func buildFieldMap(fieldConfigs Fields) (FieldMap, error) {
	numFields := len(fieldConfigs)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(FieldMap, 0, numFields)
	for i := range fieldConfigs {
		fieldConfig := &fieldConfigs[i]
		if fieldConfig.Type == nil {
			return nil, NewError(
				"Must provide type for field \"" + fieldConfig.Name + "\".")
		}

		args, err := buildArguments(fieldConfig.Args)
		if err != nil {
			return nil, err
		}

		field := &Field{
			name:        fieldConfig.Name,
			description: fieldConfig.Description,
			ttype:       fieldConfig.Type,
			args:        args,
			deprecation: fieldConfig.Deprecation,
			definition:  fieldConfig.Definition,
		}

		if prev := fieldMap.Lookup(field.name); prev != nil {
			*prev = *field
		} else {
			fieldMap = append(fieldMap, field)
		}
	}

	return fieldMap, nil
}

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field struct {
	name        string
	description string
	ttype       Type
	args        []Argument
	deprecation *Deprecation
	definition  *ast.FieldDefinition
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.ttype
}

// Args specifies the definitions of arguments being taken when querying this field.
func (f *Field) Args() []Argument {
	return f.args
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// Definition is the AST node the field was constructed from, or nil for a field constructed
// programmatically.
func (f *Field) Definition() *ast.FieldDefinition {
	return f.definition
}

// An intentionally internal type for marking a "null" as default value for an argument
type argumentNilValueType int

// NilArgumentDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in ArgumentConfig. It sets the argument with default value set to "null". While
// setting DefaultValue to "nil" or not giving it a value means there's no default value. We need
// this trick because using only "nil" cannot tells whether it's an "undefined" or a "null"
// DefaultValue. The constant has an internal type, therefore there's no way to create one outside
// the package.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig provides definition for defining an argument in a field or a directive.
type ArgumentConfig struct {
	// Name of the argument
	Name string

	// Description fo the argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// DefaultValue specified the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}

	// Deprecation is non-nil when the argument is tagged as deprecated.
	Deprecation *Deprecation

	// Definition is the AST node the argument was constructed from, if any.
	Definition *ast.InputValueDefinition
}

// buildArguments builds a list of Argument from a list of ArgumentConfig.
func buildArguments(argConfigs []ArgumentConfig) ([]Argument, error) {
	numArgs := len(argConfigs)
	if numArgs == 0 {
		return nil, nil
	}

	args := make([]Argument, numArgs)
	for i := range argConfigs {
		argConfig := &argConfigs[i]
		if argConfig.Type == nil {
			return nil, NewError(
				"Must provide type for argument \"" + argConfig.Name + "\".")
		}

		args[i] = Argument{
			name:         argConfig.Name,
			description:  argConfig.Description,
			ttype:        argConfig.Type,
			defaultValue: argConfig.DefaultValue,
			deprecation:  argConfig.Deprecation,
			definition:   argConfig.Definition,
		}
	}

	return args, nil
}

// Argument is accepted in querying a field to further specify the return value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	deprecation  *Deprecation
	definition   *ast.InputValueDefinition
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	// Deal with NilArgumentDefaultValue specially.
	if _, ok := arg.defaultValue.(argumentNilValueType); ok {
		// We have default value which is "null".
		return nil
	}
	return arg.defaultValue
}

// Deprecation is non-nil when the argument is tagged as deprecated.
func (arg *Argument) Deprecation() *Deprecation {
	return arg.deprecation
}

// Definition is the AST node the argument was constructed from, or nil for an argument constructed
// programmatically.
func (arg *Argument) Definition() *ast.InputValueDefinition {
	return arg.definition
}

// IsRequiredArgument returns true if value must be provided to the argument for execution.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}
