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

// Package ast provides the abstract syntax tree for the GraphQL language. The nodes in this package
// carry plain values rather than lexical tokens so they can be produced by any parser front end (or
// constructed directly, which is how tests in sibling packages build documents).
package ast

import (
	"math"
	"strconv"
)

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// astNode is a special mark to indicate a Node. It makes sure that only a set of object can be
	// assigned to Node.
	astNode()
}

// Name represents a name.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Names
type Name string

// astNode implements Node.
func (Name) astNode() {}

// Value returns the name in string.
func (name Name) Value() string {
	return string(name)
}

// IsUndefined returns true if the node doesn't name anything (e.g., the name of an anonymous
// operation).
func (name Name) IsUndefined() bool {
	return len(name) == 0
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//

// Document represents a GraphQL Document. A document contains multiple definitions, either
// executable or representative of a GraphQL type system.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Language.Document
type Document struct {
	// Definitions defined in the document.
	Definitions []Definition
}

var _ Node = (*Document)(nil)

// astNode implements Node.
func (*Document) astNode() {}

// Definition represents a GraphQL Definition.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Definition
type Definition interface {
	Node

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition node can be assigned to Definition.
	definitionNode()
}

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the type of operation model.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#OperationDefinition
type OperationDefinition struct {
	// Operation specifies the type of the operation; An empty value indicates a query shorthand such
	// as "{ field }".
	Operation OperationType

	// Name of the operation
	Name Name

	// Directives applied to the operation
	Directives Directives

	// SelectionSet specifies the sets of fields to fetch.
	SelectionSet SelectionSet
}

var _ Definition = (*OperationDefinition)(nil)

// astNode implements Node.
func (*OperationDefinition) astNode() {}

// definitionNode implements Definition.
func (*OperationDefinition) definitionNode() {}

// OperationType returns the type of operation. A query shorthand is implicitly a query.
func (definition *OperationDefinition) OperationType() OperationType {
	if len(definition.Operation) == 0 {
		return OperationTypeQuery
	}
	return definition.Operation
}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//

// SelectionSet specifies the information to be fetched.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#SelectionSet
type SelectionSet []Selection

// Selection represents a field or a set of fields.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Selection
type Selection interface {
	Node

	// selectionNode is a special mark to indicate a Selection node.
	selectionNode()
}

// Field describes a field selection.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Field
type Field struct {
	// Alias specifies a different name of the key to be used in response object for returning the
	// field value.
	Alias Name

	// Name of the field
	Name Name

	// Arguments taken by the field
	Arguments Arguments

	// Directives applied to the field
	Directives Directives

	// Set of information to be fetched that is nested in the field.
	SelectionSet SelectionSet
}

var _ Selection = (*Field)(nil)

// astNode implements Node.
func (*Field) astNode() {}

// selectionNode implements Selection.
func (*Field) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.6 Argument
//===----------------------------------------------------------------------------------------====//

// Arguments specifies a list of Arguments.
type Arguments []*Argument

// An Argument is an argument taken by a field or a directive.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Argument
type Argument struct {
	// Name of the argument
	Name Name

	// Value given to the argument
	Value Value
}

var _ Node = (*Argument)(nil)

// astNode implements Node.
func (*Argument) astNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// Value represents a node containing a value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Value
type Value interface {
	Node

	// Interface returns the value as an interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node. It makes sure that only value node can be
	// assigned to Value.
	valueNode()
}

// The following implement Value interface.
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// Variable refers to a variable with a name.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Variable
type Variable struct {
	// Name of the reference
	Name Name
}

// astNode implements Node.
func (Variable) astNode() {}

// valueNode implements Value.
func (Variable) valueNode() {}

// Interface implements Value. It returns the name of the variable.
func (value Variable) Interface() interface{} {
	return value.Name.Value()
}

// IntValue represents a value node containing an integer.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#IntValue
type IntValue struct {
	// Literal that specifies the integer value
	Literal string
}

// astNode implements Node.
func (IntValue) astNode() {}

// valueNode implements Value.
func (IntValue) valueNode() {}

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	v, err := value.Int32Value()
	if err == nil {
		return v
	}
	return int32(0)
}

// String return the literal in string that specifies the integer value.
func (value IntValue) String() string {
	return value.Literal
}

// Int32Value parses literal into an int32.
func (value IntValue) Int32Value() (int32, error) {
	v, err := strconv.ParseInt(value.Literal, 10, 32)
	return int32(v), err
}

// Int64Value parses literal into an int64.
func (value IntValue) Int64Value() (int64, error) {
	return strconv.ParseInt(value.Literal, 10, 64)
}

// FloatValue represents a value node containing a float.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FloatValue
type FloatValue struct {
	// Literal that specifies the float value
	Literal string
}

// astNode implements Node.
func (FloatValue) astNode() {}

// valueNode implements Value.
func (FloatValue) valueNode() {}

// Interface implements Value.
func (value FloatValue) Interface() interface{} {
	v, err := value.FloatValue()
	if err != nil {
		return math.NaN()
	}
	return v
}

// String return the literal in string that specifies the float value.
func (value FloatValue) String() string {
	return value.Literal
}

// FloatValue parses literal into a float64.
func (value FloatValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.Literal, 64)
}

// StringValue represents a value node containing a string.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#StringValue
type StringValue struct {
	// Value of the string
	Value string

	// Block is true if the string was written as a block string in the source.
	Block bool
}

// astNode implements Node.
func (StringValue) astNode() {}

// valueNode implements Value.
func (StringValue) valueNode() {}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value
}

// BooleanValue represents a value node containing a boolean.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#BooleanValue
type BooleanValue struct {
	// Value of the boolean
	Value bool
}

// astNode implements Node.
func (BooleanValue) astNode() {}

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value
}

// NullValue represents the keyword "null".
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#NullValue
type NullValue struct{}

// astNode implements Node.
func (NullValue) astNode() {}

// valueNode implements Value.
func (NullValue) valueNode() {}

// Interface implements Value.
func (NullValue) Interface() interface{} {
	return nil
}

// EnumValue represents a value node containing an enum value name.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumValue
type EnumValue struct {
	// Value contains the name of the enum value
	Value string
}

// astNode implements Node.
func (EnumValue) astNode() {}

// valueNode implements Value.
func (EnumValue) valueNode() {}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value
}

// ListValue represents a value node containing list of values.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ListValue
type ListValue struct {
	// Values in the list
	Values []Value
}

// astNode implements Node.
func (ListValue) astNode() {}

// valueNode implements Value.
func (ListValue) valueNode() {}

// Interface implements Value. It returns an array containing the values returning from calling
// Interface() on each item.
func (value ListValue) Interface() interface{} {
	result := make([]interface{}, len(value.Values))
	for i := range value.Values {
		result[i] = value.Values[i].Interface()
	}
	return result
}

// ObjectValue represents a value node containing an input object literal.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectValue
type ObjectValue struct {
	// Fields in the object
	Fields []*ObjectField
}

// astNode implements Node.
func (ObjectValue) astNode() {}

// valueNode implements Value.
func (ObjectValue) valueNode() {}

// Interface implements Value. It returns a map that maps field name to its assigned value.
func (value ObjectValue) Interface() interface{} {
	values := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		values[field.Name.Value()] = field.Value.Interface()
	}
	return values
}

// ObjectField represent a node that assigns a value to an object field.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectField
type ObjectField struct {
	// Name of the field being assigned
	Name Name

	// Value that is assigned to the field
	Value Value
}

var _ Node = (*ObjectField)(nil)

// astNode implements Node.
func (*ObjectField) astNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type Reference
//===----------------------------------------------------------------------------------------====//

// Type describes a type of data.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Type
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node. It makes sure that only type node can be
	// assigned to Type.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that can be wrapped in NonNullType. More specifically, NamedType and
// ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType refers to a named type.
type NamedType struct {
	// Name of the type referred by this node
	Name Name
}

// astNode implements Node.
func (NamedType) astNode() {}

// typeNode implements Type.
func (NamedType) typeNode() {}

// nullableTypeNode implements NullableType.
func (NamedType) nullableTypeNode() {}

// ListType refers to a list type of an item type.
type ListType struct {
	// ItemType specifies the type of item in the list.
	ItemType Type
}

// astNode implements Node.
func (ListType) astNode() {}

// typeNode implements Type.
func (ListType) typeNode() {}

// nullableTypeNode implements NullableType.
func (ListType) nullableTypeNode() {}

// NonNullType refers to a type that doesn't accept null value.
type NonNullType struct {
	// Type wrapped in this non-null type; Can only be a NamedType or a ListType.
	Type NullableType
}

// astNode implements Node.
func (NonNullType) astNode() {}

// typeNode implements Type.
func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//

// Directives specifies a list of directive applications.
type Directives []*Directive

// Directive applies a GraphQL directive.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Language.Directives
type Directive struct {
	// Name of the directive
	Name Name

	// Arguments taken by the directive
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

// astNode implements Node.
func (*Directive) astNode() {}
