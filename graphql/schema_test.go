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

var _ = Describe("Schema", func() {
	newQuery := func() *graphql.Object {
		return graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.FieldsOf(graphql.Fields{
				{Name: "hello", Type: graphql.String()},
			}),
		})
	}

	It("collects all reachable named types", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: newQuery()})
		Expect(schema.TypeMap().Lookup("Query")).ShouldNot(BeNil())
		Expect(schema.TypeMap().Lookup("String")).Should(BeIdenticalTo(graphql.String()))
		// Introspection types are always present.
		Expect(schema.TypeMap().Lookup("__Schema")).ShouldNot(BeNil())
	})

	It("rejects two different types sharing a name", func() {
		makeFoo := func() *graphql.Object {
			return graphql.MustNewObject(graphql.ObjectConfig{
				Name: "Foo",
				Fields: graphql.FieldsOf(graphql.Fields{
					{Name: "id", Type: graphql.ID()},
				}),
			})
		}

		_, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: newQuery(),
			Types: []graphql.NamedType{makeFoo(), makeFoo()},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(
			"Schema must contain unique named types but contains multiple types named Foo."))
	})

	It("supplies the standard directives when none are given", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: newQuery()})
		Expect(len(schema.Directives())).Should(Equal(4))
		Expect(schema.Directives().Lookup("skip")).Should(BeIdenticalTo(graphql.SkipDirective()))
		Expect(schema.Directives().Lookup("include")).Should(
			BeIdenticalTo(graphql.IncludeDirective()))
		Expect(schema.Directives().Lookup("deprecated")).Should(
			BeIdenticalTo(graphql.DeprecatedDirective()))
		Expect(schema.Directives().Lookup("specifiedBy")).Should(
			BeIdenticalTo(graphql.SpecifiedByDirective()))
	})

	It("takes a non-nil directive list verbatim", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query:      newQuery(),
			Directives: graphql.DirectiveList{graphql.SkipDirective()},
		})
		Expect(len(schema.Directives())).Should(Equal(1))
		Expect(schema.Directives().Lookup("deprecated")).Should(BeNil())
	})

	It("surfaces errors raised by deferred type references", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return nil, graphql.NewError("fields unavailable")
			},
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("fields unavailable"))
	})

	It("reports an object field without a type", func() {
		query := graphql.MustNewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.FieldsOf(graphql.Fields{
				{Name: "broken"},
			}),
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Must provide type for field "broken".`))
	})

	It("tracks interface implementations", func() {
		iface := graphql.MustNewInterface(graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.FieldsOf(graphql.Fields{
				{Name: "id", Type: graphql.ID()},
			}),
		})
		object := graphql.MustNewObject(graphql.ObjectConfig{
			Name:       "User",
			Interfaces: graphql.InterfacesOf(iface),
			Fields: graphql.FieldsOf(graphql.Fields{
				{Name: "id", Type: graphql.ID()},
			}),
		})
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: newQuery(),
			Types: []graphql.NamedType{object},
		})
		Expect(schema.PossibleTypes(iface)).Should(Equal([]*graphql.Object{object}))
	})

	Describe("TypeFromAST", func() {
		var schema *graphql.Schema

		BeforeEach(func() {
			schema = graphql.MustNewSchema(&graphql.SchemaConfig{Query: newQuery()})
		})

		It("resolves a named type", func() {
			Expect(schema.TypeFromAST(ast.NamedType{Name: "Query"})).Should(
				BeIdenticalTo(schema.TypeMap().Lookup("Query")))
		})

		It("rebuilds wrapping types", func() {
			t := schema.TypeFromAST(ast.NonNullType{
				Type: ast.ListType{ItemType: ast.NamedType{Name: "String"}},
			})
			nonNull, ok := t.(*graphql.NonNull)
			Expect(ok).Should(BeTrue())
			list, ok := nonNull.InnerType().(*graphql.List)
			Expect(ok).Should(BeTrue())
			Expect(list.ElementType()).Should(BeIdenticalTo(graphql.String()))
		})

		It("returns nil for an unknown name", func() {
			Expect(schema.TypeFromAST(ast.NamedType{Name: "Missing"})).Should(BeNil())
		})
	})
})
