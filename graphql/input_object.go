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

// An intentionally internal type for marking a "null" as default value for an input field
type inputFieldNilValueType int

// NilInputFieldDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in InputFieldConfig. It sets the field with default value set to "null". This is not
// the same with setting DefaultValue to "nil" or not giving it a value which means there's no
// default value. We need this trick to distiguish from whether the input field has a default value
// "nil" or it doesn't have one at all. The constant has an internal type, therefore there's no way
// to create one outside the package.
const NilInputFieldDefaultValue inputFieldNilValueType = 0

// InputFieldConfig contains definition for defining a field in an Input Object type.
type InputFieldConfig struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type of value given to this field
	Type Type

	// DefaultValue specified the value to be assigned to the field when no input is provided.
	DefaultValue interface{}

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	// Definition is the AST node the field was constructed from, if any.
	Definition *ast.InputValueDefinition
}

// InputFields lists input field definitions in the order they should appear in the defining type.
// It should be "InputFieldConfigList" but is shorten to save some typing efforts.
type InputFields []InputFieldConfig

// InputFieldsThunk returns InputFields lazily. It is evaluated (once) no later than schema
// construction.
type InputFieldsThunk func() (InputFields, error)

// InputFieldsOf is a convenience for supplying an already-known InputFields as an
// InputFieldsThunk.
func InputFieldsOf(fields InputFields) InputFieldsThunk {
	return func() (InputFields, error) {
		return fields, nil
	}
}

// InputFieldMap is an ordered collection of input fields keyed by name.
type InputFieldMap []*InputField

// Lookup finds the input field with given name or returns nil if there's no such one.
func (m InputFieldMap) Lookup(name string) *InputField {
	for _, field := range m {
		if field.Name() == name {
			return field
		}
	}
	return nil
}

// buildInputFieldMap takes an InputFields to build an InputFieldMap. A config whose name collides
// with an earlier one replaces it in place, keeping the earlier position.
func buildInputFieldMap(inputFieldConfigs InputFields) (InputFieldMap, error) {
	numFields := len(inputFieldConfigs)
	if numFields == 0 {
		return nil, nil
	}

	inputFieldMap := make(InputFieldMap, 0, numFields)
	for i := range inputFieldConfigs {
		inputFieldConfig := &inputFieldConfigs[i]
		if inputFieldConfig.Type == nil {
			return nil, NewError(
				"Must provide type for input field \"" + inputFieldConfig.Name + "\".")
		}

		inputField := &InputField{
			name:         inputFieldConfig.Name,
			description:  inputFieldConfig.Description,
			ttype:        inputFieldConfig.Type,
			defaultValue: inputFieldConfig.DefaultValue,
			deprecation:  inputFieldConfig.Deprecation,
			definition:   inputFieldConfig.Definition,
		}

		if prev := inputFieldMap.Lookup(inputField.name); prev != nil {
			*prev = *inputField
		} else {
			inputFieldMap = append(inputFieldMap, inputField)
		}
	}

	return inputFieldMap, nil
}

// InputField defines a field in an InputObject. It is much simpler than Field because it doesn't
// yield output value nor can it have arguments.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	deprecation  *Deprecation
	definition   *ast.InputValueDefinition
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.description
}

// Type of value given to this field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the field when no input is provided.
func (f *InputField) DefaultValue() interface{} {
	// Deal with NilInputFieldDefaultValue specially.
	if _, ok := f.defaultValue.(inputFieldNilValueType); ok {
		// We have default value which is "null".
		return nil
	}
	return f.defaultValue
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *InputField) Deprecation() *Deprecation {
	return f.deprecation
}

// Definition is the AST node the field was constructed from, or nil for a field constructed
// programmatically.
func (f *InputField) Definition() *ast.InputValueDefinition {
	return f.definition
}

// IsRequiredInputField returns true if value must be provided to the field.
func IsRequiredInputField(f *InputField) bool {
	return IsNonNullType(f.Type()) && !f.HasDefaultValue()
}

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields to be defined in the InputObject type
	Fields InputFieldsThunk

	// Definition is the AST node the type was constructed from, if any.
	Definition *ast.InputObjectTypeDefinition

	// Extensions lists the extension AST nodes that contributed to the type, in the order they were
	// applied.
	Extensions []*ast.InputObjectTypeExtension
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some contraints on the fields so it can be
// used as an input argument. More specifically, fields in an Input Object type cannot define
// arguments or contain references to interfaces and unions.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputObject struct {
	config InputObjectConfig

	fieldsOnce sync.Once
	fields     InputFieldMap
	fieldsErr  error
}

var (
	_ Type      = (*InputObject)(nil)
	_ NamedType = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}
	return &InputObject{config: config}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// graphqlNamedType implements NamedType.
func (*InputObject) graphqlNamedType() {}

// Name implements NamedType.
func (o *InputObject) Name() string {
	return o.config.Name
}

// Description implements NamedType.
func (o *InputObject) Description() string {
	return o.config.Description
}

// Fields in the input object
func (o *InputObject) Fields() InputFieldMap {
	fields, _ := o.resolveFields()
	return fields
}

// Definition is the AST node the type was constructed from, or nil for a type constructed
// programmatically.
func (o *InputObject) Definition() *ast.InputObjectTypeDefinition {
	return o.config.Definition
}

// Extensions lists the extension AST nodes that contributed to the type.
func (o *InputObject) Extensions() []*ast.InputObjectTypeExtension {
	return o.config.Extensions
}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.Name()
}

func (o *InputObject) resolveFields() (InputFieldMap, error) {
	o.fieldsOnce.Do(func() {
		if o.config.Fields == nil {
			return
		}
		inputFieldConfigs, err := o.config.Fields()
		if err != nil {
			o.fieldsErr = err
			return
		}
		o.fields, o.fieldsErr = buildInputFieldMap(inputFieldConfigs)
	})
	return o.fields, o.fieldsErr
}

// resolve implements resolvable.
func (o *InputObject) resolve() error {
	_, err := o.resolveFields()
	return err
}
