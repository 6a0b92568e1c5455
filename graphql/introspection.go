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

// This file defines the types used specifically for introspection. The type graph is cyclic
// (__Type refers to __Field which refers back to __Type) so the types are constructed in init()
// with their cross-references deferred behind thunks.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Introspection

var (
	_schema            *Object
	_directive         *Object
	_directiveLocation *Enum
	_type              *Object
	_field             *Object
	_inputValue        *Object
	_enumValue         *Object
	_typeKind          *Enum
)

func init() {
	//===--------------------------------------------------------------------------------------====//
	// __Schema
	//===--------------------------------------------------------------------------------------====//
	_schema = MustNewObject(ObjectConfig{
		Name: "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes " +
			"all available types and directives on the server, as well as the entry points for " +
			"query, mutation, and subscription operations.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name:        "description",
					Type:        String(),
					Description: "A description of the schema.",
				},
				{
					Name:        "types",
					Description: "A list of all types supported by this server.",
					Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_type))),
				},
				{
					Name:        "queryType",
					Description: "The type that query operations will be rooted at.",
					Type:        MustNewNonNullOfType(_type),
				},
				{
					Name: "mutationType",
					Description: "If this server supports mutation, the type that mutation operations " +
						"will be rooted at.",
					Type: _type,
				},
				{
					Name: "subscriptionType",
					Description: "If this server support subscription, the type that subscription " +
						"operations will be rooted at.",
					Type: _type,
				},
				{
					Name:        "directives",
					Description: "A list of all directives supported by this server.",
					Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_directive))),
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __Directive
	//===--------------------------------------------------------------------------------------====//
	_directive = MustNewObject(ObjectConfig{
		Name: "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and type " +
			"validation behavior in a GraphQL document.\n\nIn some cases, you need to provide " +
			"options to alter GraphQL's execution behavior in ways field arguments will not " +
			"suffice, such as conditionally including or skipping a field. Directives provide this " +
			"by describing additional information to the executor.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name: "name",
					Type: MustNewNonNullOfType(String()),
				},
				{
					Name: "description",
					Type: String(),
				},
				{
					Name: "isRepeatable",
					Type: MustNewNonNullOfType(Boolean()),
				},
				{
					Name: "locations",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_directiveLocation))),
				},
				{
					Name: "args",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_inputValue))),
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __DirectiveLocation
	//===--------------------------------------------------------------------------------------====//
	_directiveLocation = MustNewEnum(EnumConfig{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a " +
			"__DirectiveLocation describes one such possible adjacencies.",
		Values: EnumValues{
			{
				Name:        "QUERY",
				Value:       DirectiveLocationQuery,
				Description: "Location adjacent to a query operation.",
			},
			{
				Name:        "MUTATION",
				Value:       DirectiveLocationMutation,
				Description: "Location adjacent to a mutation operation.",
			},
			{
				Name:        "SUBSCRIPTION",
				Value:       DirectiveLocationSubscription,
				Description: "Location adjacent to a subscription operation.",
			},
			{
				Name:        "FIELD",
				Value:       DirectiveLocationField,
				Description: "Location adjacent to a field.",
			},
			{
				Name:        "FRAGMENT_DEFINITION",
				Value:       DirectiveLocationFragmentDefinition,
				Description: "Location adjacent to a fragment definition.",
			},
			{
				Name:        "FRAGMENT_SPREAD",
				Value:       DirectiveLocationFragmentSpread,
				Description: "Location adjacent to a fragment spread.",
			},
			{
				Name:        "INLINE_FRAGMENT",
				Value:       DirectiveLocationInlineFragment,
				Description: "Location adjacent to an inline fragment.",
			},
			{
				Name:        "VARIABLE_DEFINITION",
				Value:       DirectiveLocationVariableDefinition,
				Description: "Location adjacent to a variable definition.",
			},
			{
				Name:        "SCHEMA",
				Value:       DirectiveLocationSchema,
				Description: "Location adjacent to a schema definition.",
			},
			{
				Name:        "SCALAR",
				Value:       DirectiveLocationScalar,
				Description: "Location adjacent to a scalar definition.",
			},
			{
				Name:        "OBJECT",
				Value:       DirectiveLocationObject,
				Description: "Location adjacent to an object type definition.",
			},
			{
				Name:        "FIELD_DEFINITION",
				Value:       DirectiveLocationFieldDefinition,
				Description: "Location adjacent to a field definition.",
			},
			{
				Name:        "ARGUMENT_DEFINITION",
				Value:       DirectiveLocationArgumentDefinition,
				Description: "Location adjacent to an argument definition.",
			},
			{
				Name:        "INTERFACE",
				Value:       DirectiveLocationInterface,
				Description: "Location adjacent to an interface definition.",
			},
			{
				Name:        "UNION",
				Value:       DirectiveLocationUnion,
				Description: "Location adjacent to a union definition.",
			},
			{
				Name:        "ENUM",
				Value:       DirectiveLocationEnum,
				Description: "Location adjacent to an enum definition.",
			},
			{
				Name:        "ENUM_VALUE",
				Value:       DirectiveLocationEnumValue,
				Description: "Location adjacent to an enum value definition.",
			},
			{
				Name:        "INPUT_OBJECT",
				Value:       DirectiveLocationInputObject,
				Description: "Location adjacent to an input object type definition.",
			},
			{
				Name:        "INPUT_FIELD_DEFINITION",
				Value:       DirectiveLocationInputFieldDefinition,
				Description: "Location adjacent to an input object field definition.",
			},
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __Type
	//===--------------------------------------------------------------------------------------====//
	_type = MustNewObject(ObjectConfig{
		Name: "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many kinds " +
			"of types in GraphQL as represented by the `__TypeKind` enum.\n\nDepending on the kind " +
			"of a type, certain fields describe information about that type. Scalar types provide " +
			"no information beyond a name and description, while Enum types provide their values. " +
			"Object and Interface types provide the fields they describe. Abstract types, Union " +
			"and Interface, provide the Object types possible at runtime. List and NonNull types " +
			"compose other types.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name: "kind",
					Type: MustNewNonNullOfType(_typeKind),
				},
				{
					Name: "name",
					Type: String(),
				},
				{
					Name: "description",
					Type: String(),
				},
				{
					Name: "specifiedByURL",
					Type: String(),
				},
				{
					Name: "fields",
					Type: MustNewListOfType(MustNewNonNullOfType(_field)),
					Args: []ArgumentConfig{
						{
							Name:         "includeDeprecated",
							Type:         Boolean(),
							DefaultValue: false,
						},
					},
				},
				{
					Name: "interfaces",
					Type: MustNewListOfType(MustNewNonNullOfType(_type)),
				},
				{
					Name: "possibleTypes",
					Type: MustNewListOfType(MustNewNonNullOfType(_type)),
				},
				{
					Name: "enumValues",
					Type: MustNewListOfType(MustNewNonNullOfType(_enumValue)),
					Args: []ArgumentConfig{
						{
							Name:         "includeDeprecated",
							Type:         Boolean(),
							DefaultValue: false,
						},
					},
				},
				{
					Name: "inputFields",
					Type: MustNewListOfType(MustNewNonNullOfType(_inputValue)),
				},
				{
					Name: "ofType",
					Type: _type,
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __Field
	//===--------------------------------------------------------------------------------------====//
	_field = MustNewObject(ObjectConfig{
		Name: "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of which " +
			"has a name, potentially a list of arguments, and a return type.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name: "name",
					Type: MustNewNonNullOfType(String()),
				},
				{
					Name: "description",
					Type: String(),
				},
				{
					Name: "args",
					Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(_inputValue))),
				},
				{
					Name: "type",
					Type: MustNewNonNullOfType(_type),
				},
				{
					Name: "isDeprecated",
					Type: MustNewNonNullOfType(Boolean()),
				},
				{
					Name: "deprecationReason",
					Type: String(),
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __InputValue
	//===--------------------------------------------------------------------------------------====//
	_inputValue = MustNewObject(ObjectConfig{
		Name: "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an " +
			"InputObject are represented as Input Values which describe their type and optionally " +
			"a default value.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name: "name",
					Type: MustNewNonNullOfType(String()),
				},
				{
					Name: "description",
					Type: String(),
				},
				{
					Name: "type",
					Type: MustNewNonNullOfType(_type),
				},
				{
					Name: "defaultValue",
					Description: "A GraphQL-formatted string representing the default value for this " +
						"input value.",
					Type: String(),
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __EnumValue
	//===--------------------------------------------------------------------------------------====//
	_enumValue = MustNewObject(ObjectConfig{
		Name: "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not a " +
			"placeholder for a string or numeric value. However an Enum value is returned in a JSON " +
			"response as a string.",
		Fields: func() (Fields, error) {
			return Fields{
				{
					Name: "name",
					Type: MustNewNonNullOfType(String()),
				},
				{
					Name: "description",
					Type: String(),
				},
				{
					Name: "isDeprecated",
					Type: MustNewNonNullOfType(Boolean()),
				},
				{
					Name: "deprecationReason",
					Type: String(),
				},
			}, nil
		},
	})

	//===--------------------------------------------------------------------------------------====//
	// __TypeKind
	//===--------------------------------------------------------------------------------------====//
	_typeKind = MustNewEnum(EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: EnumValues{
			{
				Name:        "SCALAR",
				Description: "Indicates this type is a scalar.",
			},
			{
				Name:        "OBJECT",
				Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields.",
			},
			{
				Name: "INTERFACE",
				Description: "Indicates this type is an interface. `fields` and `possibleTypes` are " +
					"valid fields.",
			},
			{
				Name:        "UNION",
				Description: "Indicates this type is a union. `possibleTypes` is a valid field.",
			},
			{
				Name:        "ENUM",
				Description: "Indicates this type is an enum. `enumValues` is a valid field.",
			},
			{
				Name:        "INPUT_OBJECT",
				Description: "Indicates this type is an input object. `inputFields` is a valid field.",
			},
			{
				Name:        "LIST",
				Description: "Indicates this type is a list. `ofType` is a valid field.",
			},
			{
				Name:        "NON_NULL",
				Description: "Indicates this type is a non-null. `ofType` is a valid field.",
			},
		},
	})
}

// SchemaMetaType returns the __Schema type.
func SchemaMetaType() *Object {
	return _schema
}

// DirectiveMetaType returns the __Directive type.
func DirectiveMetaType() *Object {
	return _directive
}

// DirectiveLocationMetaType returns the __DirectiveLocation type.
func DirectiveLocationMetaType() *Enum {
	return _directiveLocation
}

// TypeMetaType returns the __Type type.
func TypeMetaType() *Object {
	return _type
}

// FieldMetaType returns the __Field type.
func FieldMetaType() *Object {
	return _field
}

// InputValueMetaType returns the __InputValue type.
func InputValueMetaType() *Object {
	return _inputValue
}

// EnumValueMetaType returns the __EnumValue type.
func EnumValueMetaType() *Object {
	return _enumValue
}

// TypeKindMetaType returns the __TypeKind type.
func TypeKindMetaType() *Enum {
	return _typeKind
}

// IntrospectionTypes returns the list of types used specifically for introspection.
func IntrospectionTypes() []NamedType {
	return []NamedType{
		SchemaMetaType(),
		DirectiveMetaType(),
		DirectiveLocationMetaType(),
		TypeMetaType(),
		FieldMetaType(),
		InputValueMetaType(),
		EnumValueMetaType(),
		TypeKindMetaType(),
	}
}

// IsIntrospectionType returns true if the given type is one of the types used specifically for
// introspection.
func IsIntrospectionType(t Type) bool {
	namedType, ok := t.(NamedType)
	if !ok {
		return false
	}
	for _, introspectionType := range IntrospectionTypes() {
		if namedType == introspectionType {
			return true
		}
	}
	return false
}
