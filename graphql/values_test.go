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

var _ = Describe("ValueFromAST", func() {
	expectValue := func(valueNode ast.Value, ttype graphql.Type, expected interface{}) {
		value, ok := graphql.ValueFromAST(valueNode, ttype)
		Expect(ok).Should(BeTrue())
		if expected == nil {
			Expect(value).Should(BeNil())
		} else {
			Expect(value).Should(Equal(expected))
		}
	}

	expectNoValue := func(valueNode ast.Value, ttype graphql.Type) {
		value, ok := graphql.ValueFromAST(valueNode, ttype)
		Expect(ok).Should(BeFalse())
		Expect(value).Should(BeNil())
	}

	// graphql-js/src/utilities/__tests__/valueFromAST-test.js
	It("converts simple values", func() {
		expectValue(ast.BooleanValue{Value: true}, graphql.Boolean(), true)
		expectValue(ast.IntValue{Literal: "123"}, graphql.Int(), int32(123))
		expectValue(ast.FloatValue{Literal: "123.456"}, graphql.Float(), float64(123.456))
		expectValue(ast.StringValue{Value: "abc123"}, graphql.String(), "abc123")
		expectValue(ast.IntValue{Literal: "123456"}, graphql.ID(), int32(123456))
		expectValue(ast.StringValue{Value: "123456"}, graphql.ID(), "123456")
	})

	It("converts null to a null value", func() {
		expectValue(ast.NullValue{}, graphql.Boolean(), nil)
	})

	It("yields no value when there is no node", func() {
		expectNoValue(nil, graphql.Boolean())
	})

	It("yields no value for a variable reference", func() {
		expectNoValue(ast.Variable{Name: "var"}, graphql.Boolean())
	})

	It("converts non-null values", func() {
		nonNullBool := graphql.MustNewNonNullOfType(graphql.Boolean())
		expectValue(ast.BooleanValue{Value: true}, nonNullBool, true)
		expectNoValue(ast.NullValue{}, nonNullBool)
	})

	It("converts enum values to their internal values", func() {
		testEnum := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "TestColor",
			Values: graphql.EnumValues{
				{Name: "RED", Value: 1},
				{Name: "GREEN", Value: 2},
			},
		})

		expectValue(ast.EnumValue{Value: "RED"}, testEnum, 1)
		expectValue(ast.NullValue{}, testEnum, nil)
		expectNoValue(ast.EnumValue{Value: "UNKNOWN"}, testEnum)
		// A string literal is not an enum literal.
		expectNoValue(ast.StringValue{Value: "RED"}, testEnum)
	})

	Describe("lists", func() {
		listOfBool := graphql.MustNewListOfType(graphql.Boolean())
		listOfNonNullBool := graphql.MustNewListOfType(
			graphql.MustNewNonNullOfType(graphql.Boolean()))

		It("converts list values", func() {
			expectValue(ast.ListValue{
				Values: []ast.Value{
					ast.BooleanValue{Value: true},
					ast.BooleanValue{Value: false},
				},
			}, listOfBool, []interface{}{true, false})
		})

		It("converts null to a null list", func() {
			expectValue(ast.NullValue{}, listOfBool, nil)
		})

		It("promotes a single value to a list of one", func() {
			expectValue(ast.BooleanValue{Value: true}, listOfBool, []interface{}{true})
		})

		It("keeps invalid nullable items as null", func() {
			expectValue(ast.ListValue{
				Values: []ast.Value{
					ast.BooleanValue{Value: true},
					ast.Variable{Name: "unset"},
				},
			}, listOfBool, []interface{}{true, nil})
		})

		It("rejects an invalid item of a non-null item type", func() {
			expectNoValue(ast.ListValue{
				Values: []ast.Value{
					ast.BooleanValue{Value: true},
					ast.NullValue{},
				},
			}, listOfNonNullBool)
		})
	})

	Describe("input objects", func() {
		testInput := graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "TestInput",
			Fields: graphql.InputFieldsOf(graphql.InputFields{
				{Name: "int", Type: graphql.Int(), DefaultValue: int32(42)},
				{
					Name: "requiredBool",
					Type: graphql.MustNewNonNullOfType(graphql.Boolean()),
				},
			}),
		})

		It("converts input object values", func() {
			expectValue(ast.ObjectValue{
				Fields: []*ast.ObjectField{
					{Name: "int", Value: ast.IntValue{Literal: "123"}},
					{Name: "requiredBool", Value: ast.BooleanValue{Value: false}},
				},
			}, testInput, map[string]interface{}{
				"int":          int32(123),
				"requiredBool": false,
			})
		})

		It("applies defaults for omitted fields", func() {
			expectValue(ast.ObjectValue{
				Fields: []*ast.ObjectField{
					{Name: "requiredBool", Value: ast.BooleanValue{Value: true}},
				},
			}, testInput, map[string]interface{}{
				"int":          int32(42),
				"requiredBool": true,
			})
		})

		It("rejects an input object missing a required field", func() {
			expectNoValue(ast.ObjectValue{
				Fields: []*ast.ObjectField{
					{Name: "int", Value: ast.IntValue{Literal: "123"}},
				},
			}, testInput)
		})

		It("rejects a non-object literal", func() {
			expectNoValue(ast.BooleanValue{Value: true}, testInput)
		})
	})
})

var _ = Describe("DirectiveValues", func() {
	It("reads argument values of an applied directive", func() {
		values, ok := graphql.DirectiveValues(graphql.DeprecatedDirective(), ast.Directives{
			{
				Name: "deprecated",
				Arguments: ast.Arguments{
					{Name: "reason", Value: ast.StringValue{Value: "Old."}},
				},
			},
		})
		Expect(ok).Should(BeTrue())
		Expect(values).Should(Equal(map[string]interface{}{"reason": "Old."}))
	})

	It("applies argument defaults when the argument is omitted", func() {
		values, ok := graphql.DirectiveValues(graphql.DeprecatedDirective(), ast.Directives{
			{Name: "deprecated"},
		})
		Expect(ok).Should(BeTrue())
		Expect(values).Should(Equal(map[string]interface{}{
			"reason": graphql.DefaultDeprecationReason,
		}))
	})

	It("returns false when the directive is not applied", func() {
		_, ok := graphql.DirectiveValues(graphql.DeprecatedDirective(), ast.Directives{
			{Name: "include"},
		})
		Expect(ok).Should(BeFalse())
	})

	It("reads only the first application of a directive", func() {
		values, ok := graphql.DirectiveValues(graphql.DeprecatedDirective(), ast.Directives{
			{
				Name: "deprecated",
				Arguments: ast.Arguments{
					{Name: "reason", Value: ast.StringValue{Value: "first"}},
				},
			},
			{
				Name: "deprecated",
				Arguments: ast.Arguments{
					{Name: "reason", Value: ast.StringValue{Value: "second"}},
				},
			},
		})
		Expect(ok).Should(BeTrue())
		Expect(values["reason"]).Should(Equal("first"))
	})
})
