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
	"encoding/json"

	"github.com/botobag/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("prints a bare message", func() {
		err := graphql.NewError("something went wrong")
		Expect(err.Error()).Should(Equal("something went wrong"))
	})

	It("prefixes the operation", func() {
		err := graphql.NewError("something went wrong", graphql.Op("graphql.ExtendSchema"))
		Expect(err.Error()).Should(Equal("graphql.ExtendSchema: something went wrong"))
	})

	It("appends the error kind", func() {
		err := graphql.NewError("bad document", graphql.ErrKindInvalidDocument)
		Expect(err.Error()).Should(Equal("bad document: invalid document error"))
	})

	It("propagates the kind from a wrapped error", func() {
		inner := graphql.NewError("inner", graphql.ErrKindValidation)
		outer := graphql.NewError("outer", inner)
		Expect(outer.(*graphql.Error).Kind).Should(Equal(graphql.ErrKindValidation))
	})

	It("wraps an underlying error with a message", func() {
		inner := graphql.NewError("inner", graphql.ErrKindValidation)
		wrapped := graphql.WrapError(inner, "outer")
		Expect(wrapped.Error()).Should(ContainSubstring("outer"))
		Expect(wrapped.Error()).Should(ContainSubstring("inner"))
		Expect(wrapped.(*graphql.Error).Kind).Should(Equal(graphql.ErrKindValidation))

		formatted := graphql.WrapErrorf(inner, "outer %d", 42)
		Expect(formatted.Error()).Should(ContainSubstring("outer 42"))
	})

	It("serializes to a GraphQL error object", func() {
		err := graphql.NewError("boom")
		encoded, jsonErr := json.Marshal(err)
		Expect(jsonErr).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`{"message": "boom"}`))
	})

	It("serializes locations and extensions", func() {
		err := graphql.NewError("boom",
			graphql.ErrorLocation{Line: 2, Column: 4},
			graphql.ErrorExtensions{"code": "BOOM"},
		)
		encoded, jsonErr := json.Marshal(err)
		Expect(jsonErr).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`{
			"message": "boom",
			"locations": [{"line": 2, "column": 4}],
			"extensions": {"code": "BOOM"}
		}`))
	})
})

var _ = Describe("UnknownTypeError", func() {
	It("names the type that failed to resolve", func() {
		err := graphql.NewUnknownTypeError("Quix", nil)
		unknownTypeErr := graphql.AsUnknownTypeError(err)
		Expect(unknownTypeErr).ShouldNot(BeNil())
		Expect(unknownTypeErr.TypeName).Should(Equal("Quix"))
		Expect(err.Error()).Should(ContainSubstring(`Unknown type: "Quix".`))
	})

	It("suggests similarly spelled known types", func() {
		err := graphql.NewUnknownTypeError("Quix", []string{"Quiz", "Unrelated"})
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "Quiz"?`))

		unknownTypeErr := graphql.AsUnknownTypeError(err)
		Expect(unknownTypeErr.Suggestions).Should(Equal([]string{"Quiz"}))
	})

	It("carries the unknown type kind", func() {
		err := graphql.NewUnknownTypeError("Quix", nil)
		Expect(err.(*graphql.Error).Kind).Should(Equal(graphql.ErrKindUnknownType))
	})

	It("returns nil for unrelated errors", func() {
		Expect(graphql.AsUnknownTypeError(graphql.NewError("other"))).Should(BeNil())
	})
})
