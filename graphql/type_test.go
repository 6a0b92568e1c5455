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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("List", func() {
	It("wraps a type and prints it in brackets", func() {
		listOfInt, err := graphql.NewListOfType(graphql.Int())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(listOfInt.ElementType()).Should(BeIdenticalTo(graphql.Int()))
		Expect(listOfInt.String()).Should(Equal("[Int]"))
	})

	It("rejects a nil element type", func() {
		_, err := graphql.NewListOfType(nil)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("NonNull", func() {
	It("wraps a type and prints it with a bang", func() {
		nonNullInt, err := graphql.NewNonNullOfType(graphql.Int())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(nonNullInt.InnerType()).Should(BeIdenticalTo(graphql.Int()))
		Expect(nonNullInt.String()).Should(Equal("Int!"))
	})

	// graphql-js/src/type/__tests__/definition-test.js
	It("rejects a non-nullable inner type", func() {
		nonNullInt := graphql.MustNewNonNullOfType(graphql.Int())
		_, err := graphql.NewNonNullOfType(nonNullInt)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Expected a nullable type but got "Int!".`))
	})
})

var _ = Describe("Enum", func() {
	// graphql-js/src/type/__tests__/definition-test.js
	It("defines an enum type with deprecated value", func() {
		enumTypeWithDeprecatedValue, err := graphql.NewEnum(graphql.EnumConfig{
			Name: "EnumWithDeprecatedValue",
			Values: graphql.EnumValues{
				{
					Name: "foo",
					Deprecation: &graphql.Deprecation{
						Reason: "Just because",
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		enumValues := enumTypeWithDeprecatedValue.Values()
		Expect(len(enumValues)).Should(Equal(1))

		enumValue := enumValues[0]
		Expect(enumValue.Name()).Should(Equal("foo"))
		Expect(enumValue.Deprecation()).ShouldNot(BeNil())
		Expect(enumValue.Deprecation().Reason).Should(Equal("Just because"))
		// A value defined without an internal value takes its name.
		Expect(enumValue.Value()).Should(Equal("foo"))
	})

	It("looks up values by name", func() {
		enum := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "Color",
			Values: graphql.EnumValues{
				{Name: "RED", Value: 0},
				{Name: "GREEN", Value: 1},
			},
		})
		Expect(enum.Value("GREEN").Value()).Should(Equal(1))
		Expect(enum.Value("BLUE")).Should(BeNil())
	})
})

var _ = Describe("Type predicates", func() {
	It("tells input types from output types", func() {
		input := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "In",
			Fields: graphql.InputFieldsOf(graphql.InputFields{
				{Name: "f", Type: graphql.Int()},
			}),
		})
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Out",
			Fields: graphql.FieldsOf(graphql.Fields{
				{Name: "f", Type: graphql.Int()},
			}),
		})

		Expect(graphql.IsInputType(input)).Should(BeTrue())
		Expect(graphql.IsInputType(object)).Should(BeFalse())
		Expect(graphql.IsOutputType(object)).Should(BeTrue())
		Expect(graphql.IsOutputType(input)).Should(BeFalse())

		// Scalars and enums go both ways.
		Expect(graphql.IsInputType(graphql.Int())).Should(BeTrue())
		Expect(graphql.IsOutputType(graphql.Int())).Should(BeTrue())
	})

	It("unwraps wrapping types down to the named type", func() {
		wrapped := graphql.MustNewNonNullOfType(
			graphql.MustNewListOfType(
				graphql.MustNewNonNullOfType(graphql.String())))
		Expect(graphql.NamedTypeOf(wrapped)).Should(BeIdenticalTo(graphql.String()))
	})

	It("treats non-null arguments and input fields without defaults as required", func() {
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Search",
			Fields: graphql.FieldsOf(graphql.Fields{
				{
					Name: "find",
					Type: graphql.String(),
					Args: []graphql.ArgumentConfig{
						{Name: "id", Type: graphql.MustNewNonNullOfType(graphql.ID())},
						{
							Name:         "limit",
							Type:         graphql.MustNewNonNullOfType(graphql.Int()),
							DefaultValue: 10,
						},
						{Name: "filter", Type: graphql.String()},
					},
				},
			}),
		})
		args := object.Fields().Lookup("find").Args()
		Expect(graphql.IsRequiredArgument(&args[0])).Should(BeTrue())
		Expect(graphql.IsRequiredArgument(&args[1])).Should(BeFalse())
		Expect(graphql.IsRequiredArgument(&args[2])).Should(BeFalse())

		input := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "Filter",
			Fields: graphql.InputFieldsOf(graphql.InputFields{
				{Name: "required", Type: graphql.MustNewNonNullOfType(graphql.Boolean())},
				{Name: "optional", Type: graphql.Boolean()},
			}),
		})
		Expect(graphql.IsRequiredInputField(input.Fields().Lookup("required"))).Should(BeTrue())
		Expect(graphql.IsRequiredInputField(input.Fields().Lookup("optional"))).Should(BeFalse())
	})

	It("strips at most one non-null wrapper", func() {
		nonNullString := graphql.MustNewNonNullOfType(graphql.String())
		Expect(graphql.NullableTypeOf(nonNullString)).Should(BeIdenticalTo(graphql.String()))
		Expect(graphql.NullableTypeOf(graphql.String())).Should(BeIdenticalTo(graphql.String()))
	})
})
