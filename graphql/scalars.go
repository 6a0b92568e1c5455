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

// This file defines the scalar types required by specification. They are process-wide singletons;
// a schema that mentions "Int" always refers to the same *Scalar instance, and extensions never
// rebuild them.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//

var intType = MustNewScalar(ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
})

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intType
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//

var floatType = MustNewScalar(ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values " +
		"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
})

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatType
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//

var stringType = MustNewScalar(ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to " +
		"represent free-form human-readable text.",
})

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringType
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//

var booleanType = MustNewScalar(ScalarConfig{
	Name:        "Boolean",
	Description: "The `Boolean` scalar type represents `true` or `false`.",
})

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanType
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//

var idType = MustNewScalar(ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a " +
		"String; however, it is not intended to be human-readable. When expected as an " +
		"input type, any string (such as `\"4\"`) or integer (such as `4`) input value " +
		"will be accepted as an ID.",
})

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idType
}

// SpecifiedScalarTypes returns the list of scalar types defined by the specification.
func SpecifiedScalarTypes() []*Scalar {
	return []*Scalar{
		String(),
		Int(),
		Float(),
		Boolean(),
		ID(),
	}
}

// IsSpecifiedScalarType returns true if the given type is one of the scalar types defined by the
// specification.
func IsSpecifiedScalarType(t Type) bool {
	scalar, ok := t.(*Scalar)
	if !ok {
		return false
	}
	for _, specified := range SpecifiedScalarTypes() {
		if scalar == specified {
			return true
		}
	}
	return false
}
