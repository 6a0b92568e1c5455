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

package graphql_test

import (
	"github.com/botobag/selene/graphql"
	"github.com/botobag/selene/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// stubSDLValidator records its invocation and fails with the configured error.
type stubSDLValidator struct {
	err    error
	called bool
}

func (v *stubSDLValidator) ValidateSDL(document *ast.Document, schema *graphql.Schema) error {
	v.called = true
	return v.err
}

// testSchema builds a schema exercising every named type kind plus a custom directive whose
// argument references a type in the schema.
func testSchema() *graphql.Schema {
	var someInterface *graphql.Interface

	someScalar := graphql.MustNewScalar(graphql.ScalarConfig{
		Name: "SomeScalar",
	})

	someEnum := graphql.MustNewEnum(graphql.EnumConfig{
		Name: "SomeEnum",
		Values: graphql.EnumValues{
			{Name: "ONE"},
			{Name: "TWO"},
		},
	})

	someInterface = graphql.MustNewInterface(graphql.InterfaceConfig{
		Name: "SomeInterface",
		Fields: func() (graphql.Fields, error) {
			return graphql.Fields{
				{Name: "some", Type: someInterface},
			}, nil
		},
	})

	someObject := graphql.MustNewObject(graphql.ObjectConfig{
		Name:       "SomeObject",
		Interfaces: graphql.InterfacesOf(someInterface),
		Fields: func() (graphql.Fields, error) {
			return graphql.Fields{
				{Name: "some", Type: someInterface},
			}, nil
		},
	})

	someUnion := graphql.MustNewUnion(graphql.UnionConfig{
		Name:          "SomeUnion",
		PossibleTypes: graphql.UnionMemberTypesOf(someObject),
	})

	someInput := graphql.MustNewInputObject(graphql.InputObjectConfig{
		Name: "SomeInput",
		Fields: graphql.InputFieldsOf(graphql.InputFields{
			{Name: "fooArg", Type: graphql.String()},
		}),
	})

	fooDirective := graphql.MustNewDirective(graphql.DirectiveConfig{
		Name:      "foo",
		Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationObject},
		Args: []graphql.ArgumentConfig{
			{Name: "input", Type: someInput},
		},
	})

	query := graphql.MustNewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldsOf(graphql.Fields{
			{
				Name: "foo",
				Type: someObject,
				Args: []graphql.ArgumentConfig{
					{Name: "input", Type: someInput},
				},
			},
			{Name: "someScalar", Type: someScalar},
			{Name: "someUnion", Type: someUnion},
			{Name: "someEnum", Type: someEnum},
		}),
	})

	return graphql.MustNewSchema(&graphql.SchemaConfig{
		Query: query,
		Types: []graphql.NamedType{
			query,
			someScalar,
			someEnum,
			someInterface,
			someObject,
			someUnion,
			someInput,
		},
		Directives: append(graphql.StandardDirectives(), fooDirective),
	})
}

func extendTestSchema(schema *graphql.Schema, definitions ...ast.Definition) *graphql.Schema {
	extended, err := graphql.ExtendSchema(schema, &ast.Document{Definitions: definitions}, nil)
	Expect(err).ShouldNot(HaveOccurred())
	return extended
}

func lookupObject(schema *graphql.Schema, name string) *graphql.Object {
	t := schema.TypeMap().Lookup(name)
	Expect(t).ShouldNot(BeNil(), "missing type %s", name)
	object, ok := t.(*graphql.Object)
	Expect(ok).Should(BeTrue(), "%s is not an Object", name)
	return object
}

var _ = Describe("ExtendSchema", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = testSchema()
	})

	// graphql-js/src/utilities/__tests__/extendSchema-test.js
	It("returns the original schema when given an empty document", func() {
		extended, err := graphql.ExtendSchema(schema, &ast.Document{}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended).Should(BeIdenticalTo(schema))
	})

	It("returns the original schema when the document has only executable definitions", func() {
		extended, err := graphql.ExtendSchema(schema, &ast.Document{
			Definitions: []ast.Definition{
				&ast.OperationDefinition{
					Operation: ast.OperationTypeQuery,
					Name:      "q",
				},
			},
		}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extended).Should(BeIdenticalTo(schema))
	})

	It("returns the original config when extending a config with no changes", func() {
		config := schema.ToConfig()
		extendedConfig, err := graphql.ExtendSchemaConfig(config, &ast.Document{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(extendedConfig).Should(BeIdenticalTo(config))
	})

	It("rejects a nil document", func() {
		_, err := graphql.ExtendSchema(schema, nil, nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Must provide valid Document AST."))
	})

	It("rejects a nil schema", func() {
		_, err := graphql.ExtendSchema(nil, &ast.Document{}, nil)
		Expect(err).Should(HaveOccurred())
	})

	It("extends objects by adding new fields", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "SomeObject",
				Fields: ast.FieldDefinitionList{
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		someObject := lookupObject(extended, "SomeObject")
		fields := someObject.Fields()
		Expect(len(fields)).Should(Equal(2))
		Expect(fields[0].Name()).Should(Equal("some"))
		Expect(fields[1].Name()).Should(Equal("newField"))
		Expect(fields[1].Type()).Should(BeIdenticalTo(graphql.String()))
	})

	It("does not alter the original schema", func() {
		extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "SomeObject",
				Fields: ast.FieldDefinitionList{
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		someObject := lookupObject(schema, "SomeObject")
		Expect(len(someObject.Fields())).Should(Equal(1))
	})

	It("rebuilds every named type of the original schema", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "Query",
				Fields: ast.FieldDefinitionList{
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		for _, name := range []string{
			"Query", "SomeScalar", "SomeEnum", "SomeInterface", "SomeObject", "SomeUnion", "SomeInput",
		} {
			Expect(extended.TypeMap().Lookup(name)).ShouldNot(
				BeIdenticalTo(schema.TypeMap().Lookup(name)), name)
		}
	})

	It("re-points type references at the rebuilt types", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "Query",
				Fields: ast.FieldDefinitionList{
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		query := lookupObject(extended, "Query")
		fooField := query.Fields().Lookup("foo")
		Expect(fooField).ShouldNot(BeNil())
		Expect(fooField.Type()).Should(BeIdenticalTo(extended.TypeMap().Lookup("SomeObject")))

		args := fooField.Args()
		Expect(len(args)).Should(Equal(1))
		Expect(args[0].Type()).Should(BeIdenticalTo(extended.TypeMap().Lookup("SomeInput")))

		someObject := lookupObject(extended, "SomeObject")
		Expect(someObject.Interfaces()[0]).Should(
			BeIdenticalTo(extended.TypeMap().Lookup("SomeInterface")))

		someUnion := extended.TypeMap().Lookup("SomeUnion").(*graphql.Union)
		Expect(someUnion.PossibleTypes()[0]).Should(BeIdenticalTo(someObject))
	})

	It("replaces an existing field in place when an extension redefines it", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "SomeObject",
				Fields: ast.FieldDefinitionList{
					{Name: "some", Type: ast.NamedType{Name: "String"}},
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		fields := lookupObject(extended, "SomeObject").Fields()
		Expect(len(fields)).Should(Equal(2))
		// The redefined field keeps the original position but takes the new type.
		Expect(fields[0].Name()).Should(Equal("some"))
		Expect(fields[0].Type()).Should(BeIdenticalTo(graphql.String()))
		Expect(fields[1].Name()).Should(Equal("newField"))
	})

	It("builds types that reference each other and themselves", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeDefinition{
				Name: "Foo",
				Fields: ast.FieldDefinitionList{
					{Name: "bar", Type: ast.NamedType{Name: "Bar"}},
					{Name: "self", Type: ast.NamedType{Name: "Foo"}},
				},
			},
			&ast.ObjectTypeDefinition{
				Name: "Bar",
				Fields: ast.FieldDefinitionList{
					{Name: "foo", Type: ast.NamedType{Name: "Foo"}},
				},
			},
		)

		foo := lookupObject(extended, "Foo")
		bar := lookupObject(extended, "Bar")
		Expect(foo.Fields().Lookup("bar").Type()).Should(BeIdenticalTo(bar))
		Expect(foo.Fields().Lookup("self").Type()).Should(BeIdenticalTo(foo))
		Expect(bar.Fields().Lookup("foo").Type()).Should(BeIdenticalTo(foo))
	})

	It("builds wrapping types from type references", func() {
		extended := extendTestSchema(schema,
			&ast.ObjectTypeExtension{
				Name: "Query",
				Fields: ast.FieldDefinitionList{
					{
						Name: "matrix",
						Type: ast.NonNullType{
							Type: ast.ListType{
								ItemType: ast.NonNullType{Type: ast.NamedType{Name: "String"}},
							},
						},
					},
				},
			},
		)

		matrix := lookupObject(extended, "Query").Fields().Lookup("matrix")
		nonNull, ok := matrix.Type().(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		list, ok := nonNull.InnerType().(*graphql.List)
		Expect(ok).Should(BeTrue())
		inner, ok := list.ElementType().(*graphql.NonNull)
		Expect(ok).Should(BeTrue())
		Expect(inner.InnerType()).Should(BeIdenticalTo(graphql.String()))
	})

	It("fails on an unknown type reference and names it", func() {
		_, err := graphql.ExtendSchema(schema, &ast.Document{
			Definitions: []ast.Definition{
				&ast.ObjectTypeExtension{
					Name: "Query",
					Fields: ast.FieldDefinitionList{
						{Name: "quix", Type: ast.NamedType{Name: "Quix"}},
					},
				},
			},
		}, nil)

		Expect(err).Should(HaveOccurred())
		unknownTypeErr := graphql.AsUnknownTypeError(err)
		Expect(unknownTypeErr).ShouldNot(BeNil())
		Expect(unknownTypeErr.TypeName).Should(Equal("Quix"))
		Expect(err.Error()).Should(ContainSubstring(`Unknown type: "Quix".`))
	})

	It("suggests similarly spelled type names for an unknown reference", func() {
		_, err := graphql.ExtendSchema(schema, &ast.Document{
			Definitions: []ast.Definition{
				&ast.ObjectTypeExtension{
					Name: "Query",
					Fields: ast.FieldDefinitionList{
						{Name: "bad", Type: ast.NamedType{Name: "SomeObjec"}},
					},
				},
			},
		}, nil)

		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Did you mean`))
		Expect(err.Error()).Should(ContainSubstring(`"SomeObject"`))
	})

	Describe("built-in types", func() {
		It("never rebuilds the specified scalar types", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeExtension{
					Name: "Query",
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
			)

			Expect(extended.TypeMap().Lookup("String")).Should(BeIdenticalTo(graphql.String()))
			Expect(extended.TypeMap().Lookup("Int")).Should(BeIdenticalTo(graphql.Int()))
		})

		It("discards extensions targeting a built-in type", func() {
			extended := extendTestSchema(schema,
				&ast.ScalarTypeExtension{
					Name: "String",
					Directives: ast.Directives{
						{
							Name: "specifiedBy",
							Arguments: ast.Arguments{
								{Name: "url", Value: ast.StringValue{Value: "https://example.com/string"}},
							},
						},
					},
				},
			)

			str := extended.TypeMap().Lookup("String").(*graphql.Scalar)
			Expect(str).Should(BeIdenticalTo(graphql.String()))
			Expect(str.SpecifiedByURL()).Should(BeEmpty())
		})

		It("resolves a definition reusing a built-in name to the built-in instance", func() {
			extended := extendTestSchema(schema,
				&ast.ScalarTypeDefinition{Name: "Int"},
			)
			Expect(extended.TypeMap().Lookup("Int")).Should(BeIdenticalTo(graphql.Int()))
		})
	})

	Describe("scalar types", func() {
		It("extends a scalar with @specifiedBy", func() {
			extended := extendTestSchema(schema,
				&ast.ScalarTypeExtension{
					Name: "SomeScalar",
					Directives: ast.Directives{
						{
							Name: "specifiedBy",
							Arguments: ast.Arguments{
								{Name: "url", Value: ast.StringValue{Value: "https://example.com/foo_spec"}},
							},
						},
					},
				},
			)

			scalar := extended.TypeMap().Lookup("SomeScalar").(*graphql.Scalar)
			Expect(scalar.SpecifiedByURL()).Should(Equal("https://example.com/foo_spec"))
		})

		It("takes the URL from the last extension carrying @specifiedBy", func() {
			extended := extendTestSchema(schema,
				&ast.ScalarTypeExtension{
					Name: "SomeScalar",
					Directives: ast.Directives{
						{
							Name: "specifiedBy",
							Arguments: ast.Arguments{
								{Name: "url", Value: ast.StringValue{Value: "https://example.com/first"}},
							},
						},
					},
				},
				&ast.ScalarTypeExtension{Name: "SomeScalar"},
				&ast.ScalarTypeExtension{
					Name: "SomeScalar",
					Directives: ast.Directives{
						{
							Name: "specifiedBy",
							Arguments: ast.Arguments{
								{Name: "url", Value: ast.StringValue{Value: "https://example.com/last"}},
							},
						},
					},
				},
			)

			scalar := extended.TypeMap().Lookup("SomeScalar").(*graphql.Scalar)
			Expect(scalar.SpecifiedByURL()).Should(Equal("https://example.com/last"))
		})
	})

	Describe("enum types", func() {
		It("extends an enum by adding new values", func() {
			extended := extendTestSchema(schema,
				&ast.EnumTypeExtension{
					Name: "SomeEnum",
					Values: ast.EnumValueDefinitionList{
						{Name: "THREE"},
					},
				},
			)

			enum := extended.TypeMap().Lookup("SomeEnum").(*graphql.Enum)
			values := enum.Values()
			Expect(len(values)).Should(Equal(3))
			Expect(values[0].Name()).Should(Equal("ONE"))
			Expect(values[1].Name()).Should(Equal("TWO"))
			Expect(values[2].Name()).Should(Equal("THREE"))
			// A value built from SDL takes its name as the internal value.
			Expect(values[2].Value()).Should(Equal("THREE"))
		})

		It("reads @deprecated off a new enum value", func() {
			extended := extendTestSchema(schema,
				&ast.EnumTypeExtension{
					Name: "SomeEnum",
					Values: ast.EnumValueDefinitionList{
						{
							Name: "OLD",
							Directives: ast.Directives{
								{
									Name: "deprecated",
									Arguments: ast.Arguments{
										{Name: "reason", Value: ast.StringValue{Value: "Use TWO."}},
									},
								},
							},
						},
						{
							Name: "OLDER",
							Directives: ast.Directives{
								{Name: "deprecated"},
							},
						},
					},
				},
			)

			enum := extended.TypeMap().Lookup("SomeEnum").(*graphql.Enum)
			old := enum.Value("OLD")
			Expect(old.Deprecation()).ShouldNot(BeNil())
			Expect(old.Deprecation().Reason).Should(Equal("Use TWO."))

			older := enum.Value("OLDER")
			Expect(older.Deprecation()).ShouldNot(BeNil())
			Expect(older.Deprecation().Reason).Should(Equal(graphql.DefaultDeprecationReason))
		})
	})

	Describe("union types", func() {
		It("extends a union by adding new member types", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeDefinition{
					Name: "AnotherObject",
					Fields: ast.FieldDefinitionList{
						{Name: "id", Type: ast.NamedType{Name: "ID"}},
					},
				},
				&ast.UnionTypeExtension{
					Name:  "SomeUnion",
					Types: []ast.NamedType{{Name: "AnotherObject"}},
				},
			)

			union := extended.TypeMap().Lookup("SomeUnion").(*graphql.Union)
			members := union.PossibleTypes()
			Expect(len(members)).Should(Equal(2))
			Expect(members[0]).Should(BeIdenticalTo(extended.TypeMap().Lookup("SomeObject")))
			Expect(members[1]).Should(BeIdenticalTo(extended.TypeMap().Lookup("AnotherObject")))
		})

		It("rejects a non-object member named by a union extension", func() {
			_, err := graphql.ExtendSchema(schema, &ast.Document{
				Definitions: []ast.Definition{
					&ast.UnionTypeExtension{
						Name:  "SomeUnion",
						Types: []ast.NamedType{{Name: "SomeEnum"}},
					},
				},
			}, nil)

			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("can only include Object types"))
		})
	})

	Describe("interface types", func() {
		It("extends an interface by adding new fields", func() {
			extended := extendTestSchema(schema,
				&ast.InterfaceTypeExtension{
					Name: "SomeInterface",
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
			)

			iface := extended.TypeMap().Lookup("SomeInterface").(*graphql.Interface)
			Expect(iface.Fields().Lookup("newField")).ShouldNot(BeNil())
		})

		It("makes an object implement a new interface through an extension", func() {
			extended := extendTestSchema(schema,
				&ast.InterfaceTypeDefinition{
					Name: "NewInterface",
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
				&ast.ObjectTypeExtension{
					Name:       "SomeObject",
					Interfaces: []ast.NamedType{{Name: "NewInterface"}},
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
			)

			someObject := lookupObject(extended, "SomeObject")
			interfaces := someObject.Interfaces()
			Expect(len(interfaces)).Should(Equal(2))
			Expect(interfaces[1]).Should(BeIdenticalTo(extended.TypeMap().Lookup("NewInterface")))
			Expect(extended.PossibleTypes(interfaces[1])).Should(ContainElement(someObject))
		})

		It("allows an interface to implement another interface", func() {
			extended := extendTestSchema(schema,
				&ast.InterfaceTypeDefinition{
					Name: "Node",
					Fields: ast.FieldDefinitionList{
						{Name: "id", Type: ast.NamedType{Name: "ID"}},
					},
				},
				&ast.InterfaceTypeExtension{
					Name:       "SomeInterface",
					Interfaces: []ast.NamedType{{Name: "Node"}},
					Fields: ast.FieldDefinitionList{
						{Name: "id", Type: ast.NamedType{Name: "ID"}},
					},
				},
			)

			iface := extended.TypeMap().Lookup("SomeInterface").(*graphql.Interface)
			Expect(len(iface.Interfaces())).Should(Equal(1))
			Expect(iface.Interfaces()[0]).Should(BeIdenticalTo(extended.TypeMap().Lookup("Node")))
		})

		It("rejects a non-interface in an implements list", func() {
			_, err := graphql.ExtendSchema(schema, &ast.Document{
				Definitions: []ast.Definition{
					&ast.ObjectTypeExtension{
						Name:       "SomeObject",
						Interfaces: []ast.NamedType{{Name: "SomeEnum"}},
					},
				},
			}, nil)

			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("must only implement Interface types"))
		})
	})

	Describe("input object types", func() {
		It("extends an input object by adding new fields", func() {
			extended := extendTestSchema(schema,
				&ast.InputObjectTypeExtension{
					Name: "SomeInput",
					Fields: ast.InputValueDefinitionList{
						{
							Name:         "newField",
							Type:         ast.NamedType{Name: "Int"},
							DefaultValue: ast.IntValue{Literal: "42"},
						},
					},
				},
			)

			input := extended.TypeMap().Lookup("SomeInput").(*graphql.InputObject)
			newField := input.Fields().Lookup("newField")
			Expect(newField).ShouldNot(BeNil())
			Expect(newField.Type()).Should(BeIdenticalTo(graphql.Int()))
			Expect(newField.HasDefaultValue()).Should(BeTrue())
			Expect(newField.DefaultValue()).Should(Equal(int32(42)))
		})

		It("keeps an explicit null default distinguishable from no default", func() {
			extended := extendTestSchema(schema,
				&ast.InputObjectTypeExtension{
					Name: "SomeInput",
					Fields: ast.InputValueDefinitionList{
						{
							Name:         "nullDefault",
							Type:         ast.NamedType{Name: "Int"},
							DefaultValue: ast.NullValue{},
						},
						{
							Name: "noDefault",
							Type: ast.NamedType{Name: "Int"},
						},
					},
				},
			)

			input := extended.TypeMap().Lookup("SomeInput").(*graphql.InputObject)

			nullDefault := input.Fields().Lookup("nullDefault")
			Expect(nullDefault.HasDefaultValue()).Should(BeTrue())
			Expect(nullDefault.DefaultValue()).Should(BeNil())

			noDefault := input.Fields().Lookup("noDefault")
			Expect(noDefault.HasDefaultValue()).Should(BeFalse())
		})
	})

	Describe("root operation types", func() {
		It("re-points the existing roots at the rebuilt types", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeExtension{
					Name: "Query",
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
			)
			Expect(extended.Query()).Should(BeIdenticalTo(extended.TypeMap().Lookup("Query")))
		})

		It("adds a root through a schema extension", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeDefinition{
					Name: "MutationRoot",
					Fields: ast.FieldDefinitionList{
						{Name: "doSomething", Type: ast.NamedType{Name: "String"}},
					},
				},
				&ast.SchemaExtension{
					OperationTypes: []*ast.OperationTypeDefinition{
						{Operation: ast.OperationTypeMutation, Type: ast.NamedType{Name: "MutationRoot"}},
					},
				},
			)

			Expect(extended.Mutation()).Should(BeIdenticalTo(extended.TypeMap().Lookup("MutationRoot")))
			Expect(extended.Query()).Should(BeIdenticalTo(extended.TypeMap().Lookup("Query")))
		})

		It("lets a later schema extension override an earlier one", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeDefinition{
					Name: "FirstRoot",
					Fields: ast.FieldDefinitionList{
						{Name: "a", Type: ast.NamedType{Name: "String"}},
					},
				},
				&ast.ObjectTypeDefinition{
					Name: "SecondRoot",
					Fields: ast.FieldDefinitionList{
						{Name: "b", Type: ast.NamedType{Name: "String"}},
					},
				},
				&ast.SchemaExtension{
					OperationTypes: []*ast.OperationTypeDefinition{
						{Operation: ast.OperationTypeMutation, Type: ast.NamedType{Name: "FirstRoot"}},
					},
				},
				&ast.SchemaExtension{
					OperationTypes: []*ast.OperationTypeDefinition{
						{Operation: ast.OperationTypeMutation, Type: ast.NamedType{Name: "SecondRoot"}},
					},
				},
			)

			Expect(extended.Mutation()).Should(BeIdenticalTo(extended.TypeMap().Lookup("SecondRoot")))
		})

		It("takes the schema description from a schema definition", func() {
			extended := extendTestSchema(schema,
				&ast.SchemaDefinition{
					Description: "The improved schema.",
					OperationTypes: []*ast.OperationTypeDefinition{
						{Operation: ast.OperationTypeQuery, Type: ast.NamedType{Name: "Query"}},
					},
				},
			)

			Expect(extended.Description()).Should(Equal("The improved schema."))
		})

		It("fails fast on an unknown root type", func() {
			_, err := graphql.ExtendSchema(schema, &ast.Document{
				Definitions: []ast.Definition{
					&ast.SchemaExtension{
						OperationTypes: []*ast.OperationTypeDefinition{
							{Operation: ast.OperationTypeMutation, Type: ast.NamedType{Name: "Missing"}},
						},
					},
				},
			}, nil)

			Expect(err).Should(HaveOccurred())
			Expect(graphql.AsUnknownTypeError(err)).ShouldNot(BeNil())
		})
	})

	Describe("directives", func() {
		It("adds newly defined directives", func() {
			extended := extendTestSchema(schema,
				&ast.DirectiveDefinition{
					Name:      "new",
					Locations: []ast.Name{"FIELD"},
					Arguments: ast.InputValueDefinitionList{
						{Name: "if", Type: ast.NamedType{Name: "Boolean"}},
					},
				},
			)

			directive := extended.Directives().Lookup("new")
			Expect(directive).ShouldNot(BeNil())
			Expect(directive.Locations()).Should(Equal([]graphql.DirectiveLocation{
				graphql.DirectiveLocationField,
			}))
			args := directive.Args()
			Expect(len(args)).Should(Equal(1))
			Expect(args[0].Type()).Should(BeIdenticalTo(graphql.Boolean()))
		})

		It("supports repeatable directive definitions", func() {
			extended := extendTestSchema(schema,
				&ast.DirectiveDefinition{
					Name:       "tag",
					Repeatable: true,
					Locations:  []ast.Name{"OBJECT"},
				},
			)

			Expect(extended.Directives().Lookup("tag").Repeatable()).Should(BeTrue())
		})

		It("keeps the standard directives identical", func() {
			extended := extendTestSchema(schema,
				&ast.DirectiveDefinition{Name: "new", Locations: []ast.Name{"FIELD"}},
			)

			Expect(extended.Directives().Lookup("skip")).Should(BeIdenticalTo(graphql.SkipDirective()))
			Expect(extended.Directives().Lookup("include")).Should(
				BeIdenticalTo(graphql.IncludeDirective()))
			Expect(extended.Directives().Lookup("deprecated")).Should(
				BeIdenticalTo(graphql.DeprecatedDirective()))
		})

		It("rebuilds custom directives with argument types re-pointed", func() {
			base := schema.Directives().Lookup("foo")

			extended := extendTestSchema(schema,
				&ast.ObjectTypeExtension{
					Name: "Query",
					Fields: ast.FieldDefinitionList{
						{Name: "newField", Type: ast.NamedType{Name: "String"}},
					},
				},
			)

			foo := extended.Directives().Lookup("foo")
			Expect(foo).ShouldNot(BeIdenticalTo(base))
			args := foo.Args()
			Expect(len(args)).Should(Equal(1))
			Expect(args[0].Type()).Should(BeIdenticalTo(extended.TypeMap().Lookup("SomeInput")))
		})
	})

	Describe("deprecation on fields and arguments", func() {
		It("reads @deprecated off new fields and arguments", func() {
			extended := extendTestSchema(schema,
				&ast.ObjectTypeExtension{
					Name: "SomeObject",
					Fields: ast.FieldDefinitionList{
						{
							Name: "oldField",
							Type: ast.NamedType{Name: "String"},
							Directives: ast.Directives{
								{
									Name: "deprecated",
									Arguments: ast.Arguments{
										{Name: "reason", Value: ast.StringValue{Value: "Use newField."}},
									},
								},
							},
						},
						{
							Name: "newField",
							Type: ast.NamedType{Name: "String"},
							Arguments: ast.InputValueDefinitionList{
								{
									Name: "oldArg",
									Type: ast.NamedType{Name: "String"},
									Directives: ast.Directives{
										{Name: "deprecated"},
									},
								},
							},
						},
					},
				},
			)

			someObject := lookupObject(extended, "SomeObject")

			oldField := someObject.Fields().Lookup("oldField")
			Expect(oldField.Deprecation()).ShouldNot(BeNil())
			Expect(oldField.Deprecation().Reason).Should(Equal("Use newField."))

			newField := someObject.Fields().Lookup("newField")
			Expect(newField.Deprecation()).Should(BeNil())
			args := newField.Args()
			Expect(args[0].Deprecation()).ShouldNot(BeNil())
			Expect(args[0].Deprecation().Reason).Should(Equal(graphql.DefaultDeprecationReason))
		})
	})

	Describe("provenance", func() {
		It("records definition and extension nodes on the types they affected", func() {
			objectExt := &ast.ObjectTypeExtension{
				Name: "SomeObject",
				Fields: ast.FieldDefinitionList{
					{Name: "newField", Type: ast.NamedType{Name: "String"}},
				},
			}
			objectDef := &ast.ObjectTypeDefinition{
				Name: "Brand",
				Fields: ast.FieldDefinitionList{
					{Name: "name", Type: ast.NamedType{Name: "String"}},
				},
			}
			extended := extendTestSchema(schema, objectExt, objectDef)

			someObject := lookupObject(extended, "SomeObject")
			Expect(someObject.Extensions()).Should(Equal([]*ast.ObjectTypeExtension{objectExt}))

			brand := lookupObject(extended, "Brand")
			Expect(brand.Definition()).Should(BeIdenticalTo(objectDef))
		})

		It("records schema extension nodes on the schema config", func() {
			schemaExt := &ast.SchemaExtension{
				OperationTypes: []*ast.OperationTypeDefinition{
					{Operation: ast.OperationTypeQuery, Type: ast.NamedType{Name: "Query"}},
				},
			}
			extended := extendTestSchema(schema, schemaExt)
			Expect(extended.ToConfig().Extensions).Should(Equal([]*ast.SchemaExtension{schemaExt}))
		})
	})

	Describe("validator", func() {
		document := &ast.Document{
			Definitions: []ast.Definition{
				&ast.ScalarTypeDefinition{Name: "NewScalar"},
			},
		}

		It("invokes the validator before merging", func() {
			validator := &stubSDLValidator{}
			_, err := graphql.ExtendSchema(schema, document, &graphql.ExtendSchemaOptions{
				Validator: validator,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(validator.called).Should(BeTrue())
		})

		It("wraps a validation failure", func() {
			validator := &stubSDLValidator{err: graphql.NewError("boom")}
			_, err := graphql.ExtendSchema(schema, document, &graphql.ExtendSchemaOptions{
				Validator: validator,
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("Schema extension failed validation."))
		})

		It("skips the validator with AssumeValid", func() {
			validator := &stubSDLValidator{err: graphql.NewError("boom")}
			_, err := graphql.ExtendSchema(schema, document, &graphql.ExtendSchemaOptions{
				AssumeValid: true,
				Validator:   validator,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(validator.called).Should(BeFalse())
		})

		It("skips the validator with AssumeValidSDL", func() {
			validator := &stubSDLValidator{err: graphql.NewError("boom")}
			_, err := graphql.ExtendSchema(schema, document, &graphql.ExtendSchemaOptions{
				AssumeValidSDL: true,
				Validator:      validator,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(validator.called).Should(BeFalse())
		})
	})

	It("applies a chain of extensions, each building on the previous result", func() {
		first := extendTestSchema(schema,
			&ast.ObjectTypeDefinition{
				Name: "A",
				Fields: ast.FieldDefinitionList{
					{Name: "a", Type: ast.NamedType{Name: "String"}},
				},
			},
		)
		second := extendTestSchema(first,
			&ast.ObjectTypeExtension{
				Name: "A",
				Fields: ast.FieldDefinitionList{
					{Name: "b", Type: ast.NamedType{Name: "String"}},
				},
			},
		)

		Expect(lookupObject(first, "A").Fields().Lookup("b")).Should(BeNil())

		a := lookupObject(second, "A")
		Expect(a.Fields().Lookup("a")).ShouldNot(BeNil())
		Expect(a.Fields().Lookup("b")).ShouldNot(BeNil())
		Expect(a).ShouldNot(BeIdenticalTo(lookupObject(first, "A")))
	})
})
