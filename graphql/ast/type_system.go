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

package ast

// This file contains nodes for the type system definition language (SDL).
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System

//===----------------------------------------------------------------------------------------====//
// 3.1 Type System Definitions and Extensions
//===----------------------------------------------------------------------------------------====//

// TypeSystemDefinition represents a definition that describes a GraphQL type system.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#TypeSystemDefinition
type TypeSystemDefinition interface {
	Definition

	// typeSystemDefinitionNode is a special mark to indicate a TypeSystemDefinition node.
	typeSystemDefinitionNode()
}

var (
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)
)

// TypeSystemExtension represents an extension to an existing GraphQL type system.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#TypeSystemExtension
type TypeSystemExtension interface {
	Definition

	// typeSystemExtensionNode is a special mark to indicate a TypeSystemExtension node.
	typeSystemExtensionNode()
}

var _ TypeSystemExtension = (*SchemaExtension)(nil)

//===----------------------------------------------------------------------------------------====//
// 3.2 Schema
//===----------------------------------------------------------------------------------------====//

// OperationTypeDefinition binds one of the three operation kinds to a named type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	// Operation kind being bound
	Operation OperationType

	// Type names the root type for the operation.
	Type NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// astNode implements Node.
func (*OperationTypeDefinition) astNode() {}

// SchemaDefinition declares the root operation types of a schema.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#SchemaDefinition
type SchemaDefinition struct {
	// Description of the schema
	Description string

	// Directives applied to the schema
	Directives Directives

	// OperationTypes binds operation kinds to their root types.
	OperationTypes []*OperationTypeDefinition
}

// astNode implements Node.
func (*SchemaDefinition) astNode() {}

// definitionNode implements Definition.
func (*SchemaDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*SchemaDefinition) typeSystemDefinitionNode() {}

// SchemaExtension adds directives or root operation types to a previously defined schema.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#SchemaExtension
type SchemaExtension struct {
	// Directives applied by the extension
	Directives Directives

	// OperationTypes binds operation kinds to their root types.
	OperationTypes []*OperationTypeDefinition
}

// astNode implements Node.
func (*SchemaExtension) astNode() {}

// definitionNode implements Definition.
func (*SchemaExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*SchemaExtension) typeSystemExtensionNode() {}

//===----------------------------------------------------------------------------------------====//
// 3.4 Types
//===----------------------------------------------------------------------------------------====//

// TypeDefinition represents a definition that introduces a named type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#TypeDefinition
type TypeDefinition interface {
	TypeSystemDefinition

	// TypeName returns the name of the type being defined.
	TypeName() string

	// typeDefinitionNode is a special mark to indicate a TypeDefinition node.
	typeDefinitionNode()
}

var (
	_ TypeDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeDefinition = (*UnionTypeDefinition)(nil)
	_ TypeDefinition = (*EnumTypeDefinition)(nil)
	_ TypeDefinition = (*InputObjectTypeDefinition)(nil)
)

// TypeExtension represents an extension to a previously defined named type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#TypeExtension
type TypeExtension interface {
	TypeSystemExtension

	// TypeName returns the name of the type being extended.
	TypeName() string

	// typeExtensionNode is a special mark to indicate a TypeExtension node.
	typeExtensionNode()
}

var (
	_ TypeExtension = (*ScalarTypeExtension)(nil)
	_ TypeExtension = (*ObjectTypeExtension)(nil)
	_ TypeExtension = (*InterfaceTypeExtension)(nil)
	_ TypeExtension = (*UnionTypeExtension)(nil)
	_ TypeExtension = (*EnumTypeExtension)(nil)
	_ TypeExtension = (*InputObjectTypeExtension)(nil)
)

// FieldDefinition describes a field of an Object or Interface type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FieldDefinition
type FieldDefinition struct {
	// Description of the field
	Description string

	// Name of the field
	Name Name

	// Arguments taken by the field
	Arguments InputValueDefinitionList

	// Type of value yielded by the field
	Type Type

	// Directives applied to the field definition
	Directives Directives
}

var _ Node = (*FieldDefinition)(nil)

// astNode implements Node.
func (*FieldDefinition) astNode() {}

// FieldDefinitionList is an ordered list of FieldDefinition.
type FieldDefinitionList []*FieldDefinition

// InputValueDefinition describes an argument or an input field.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputValueDefinition
type InputValueDefinition struct {
	// Description of the input value
	Description string

	// Name of the input value
	Name Name

	// Type of the value that can be given
	Type Type

	// DefaultValue to be applied when no value is supplied; nil when there is no default.
	DefaultValue Value

	// Directives applied to the definition
	Directives Directives
}

var _ Node = (*InputValueDefinition)(nil)

// astNode implements Node.
func (*InputValueDefinition) astNode() {}

// InputValueDefinitionList is an ordered list of InputValueDefinition.
type InputValueDefinitionList []*InputValueDefinition

//===----------------------------------------------------------------------------------------====//
// 3.4.1 Scalars
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition defines a Scalar type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Directives applied to the definition
	Directives Directives
}

// astNode implements Node.
func (*ScalarTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*ScalarTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*ScalarTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*ScalarTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *ScalarTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// ScalarTypeExtension extends a previously defined Scalar type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ScalarTypeExtension
type ScalarTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Directives applied by the extension
	Directives Directives
}

// astNode implements Node.
func (*ScalarTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*ScalarTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*ScalarTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*ScalarTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *ScalarTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.4.2 Objects
//===----------------------------------------------------------------------------------------====//

// ObjectTypeDefinition defines an Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Interfaces implemented by the defining type
	Interfaces []NamedType

	// Directives applied to the definition
	Directives Directives

	// Fields in the type
	Fields FieldDefinitionList
}

// astNode implements Node.
func (*ObjectTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*ObjectTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*ObjectTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*ObjectTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *ObjectTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// ObjectTypeExtension extends a previously defined Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectTypeExtension
type ObjectTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Interfaces newly implemented by the extension
	Interfaces []NamedType

	// Directives applied by the extension
	Directives Directives

	// Fields added by the extension
	Fields FieldDefinitionList
}

// astNode implements Node.
func (*ObjectTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*ObjectTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*ObjectTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*ObjectTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *ObjectTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.4.3 Interfaces
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition defines an Interface type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Interfaces implemented by the defining type
	Interfaces []NamedType

	// Directives applied to the definition
	Directives Directives

	// Fields in the type
	Fields FieldDefinitionList
}

// astNode implements Node.
func (*InterfaceTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*InterfaceTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*InterfaceTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*InterfaceTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *InterfaceTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// InterfaceTypeExtension extends a previously defined Interface type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InterfaceTypeExtension
type InterfaceTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Interfaces newly implemented by the extension
	Interfaces []NamedType

	// Directives applied by the extension
	Directives Directives

	// Fields added by the extension
	Fields FieldDefinitionList
}

// astNode implements Node.
func (*InterfaceTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*InterfaceTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*InterfaceTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*InterfaceTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *InterfaceTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.4.4 Unions
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition defines a Union type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Directives applied to the definition
	Directives Directives

	// Types that are members of the union
	Types []NamedType
}

// astNode implements Node.
func (*UnionTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*UnionTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*UnionTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*UnionTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *UnionTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// UnionTypeExtension extends a previously defined Union type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#UnionTypeExtension
type UnionTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Directives applied by the extension
	Directives Directives

	// Types added to the union by the extension
	Types []NamedType
}

// astNode implements Node.
func (*UnionTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*UnionTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*UnionTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*UnionTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *UnionTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.4.5 Enums
//===----------------------------------------------------------------------------------------====//

// EnumValueDefinition describes one value of an Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	// Description of the enum value
	Description string

	// Name of the enum value
	Name Name

	// Directives applied to the definition
	Directives Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// astNode implements Node.
func (*EnumValueDefinition) astNode() {}

// EnumValueDefinitionList is an ordered list of EnumValueDefinition.
type EnumValueDefinitionList []*EnumValueDefinition

// EnumTypeDefinition defines an Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Directives applied to the definition
	Directives Directives

	// Values defined in the type
	Values EnumValueDefinitionList
}

// astNode implements Node.
func (*EnumTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*EnumTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*EnumTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*EnumTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *EnumTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// EnumTypeExtension extends a previously defined Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumTypeExtension
type EnumTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Directives applied by the extension
	Directives Directives

	// Values added by the extension
	Values EnumValueDefinitionList
}

// astNode implements Node.
func (*EnumTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*EnumTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*EnumTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*EnumTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *EnumTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.4.6 Input Objects
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition defines an InputObject type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	// Description of the type
	Description string

	// Name of the type
	Name Name

	// Directives applied to the definition
	Directives Directives

	// Fields in the type
	Fields InputValueDefinitionList
}

// astNode implements Node.
func (*InputObjectTypeDefinition) astNode() {}

// definitionNode implements Definition.
func (*InputObjectTypeDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*InputObjectTypeDefinition) typeSystemDefinitionNode() {}

// typeDefinitionNode implements TypeDefinition.
func (*InputObjectTypeDefinition) typeDefinitionNode() {}

// TypeName implements TypeDefinition.
func (definition *InputObjectTypeDefinition) TypeName() string {
	return definition.Name.Value()
}

// InputObjectTypeExtension extends a previously defined InputObject type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputObjectTypeExtension
type InputObjectTypeExtension struct {
	// Name of the type being extended
	Name Name

	// Directives applied by the extension
	Directives Directives

	// Fields added by the extension
	Fields InputValueDefinitionList
}

// astNode implements Node.
func (*InputObjectTypeExtension) astNode() {}

// definitionNode implements Definition.
func (*InputObjectTypeExtension) definitionNode() {}

// typeSystemExtensionNode implements TypeSystemExtension.
func (*InputObjectTypeExtension) typeSystemExtensionNode() {}

// typeExtensionNode implements TypeExtension.
func (*InputObjectTypeExtension) typeExtensionNode() {}

// TypeName implements TypeExtension.
func (extension *InputObjectTypeExtension) TypeName() string {
	return extension.Name.Value()
}

//===----------------------------------------------------------------------------------------====//
// 3.7 Directive Definitions
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition defines a directive.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	// Description of the directive
	Description string

	// Name of the directive (without the leading "@")
	Name Name

	// Arguments taken by the directive
	Arguments InputValueDefinitionList

	// Repeatable is true if the directive may be applied more than once at a single location.
	Repeatable bool

	// Locations where the directive may appear
	Locations []Name
}

// astNode implements Node.
func (*DirectiveDefinition) astNode() {}

// definitionNode implements Definition.
func (*DirectiveDefinition) definitionNode() {}

// typeSystemDefinitionNode implements TypeSystemDefinition.
func (*DirectiveDefinition) typeSystemDefinitionNode() {}
