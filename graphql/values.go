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
	"github.com/botobag/selene/graphql/ast"
)

// ValueFromAST produces the Go value for an AST value node given a type. Returns false when the
// node cannot represent a value of the type; note that a valid "null" comes back as (nil, true),
// distinct from the invalid (nil, false).
//
// GraphQL Value literals.
//
// | GraphQL Value        | Go Value          |
// | -------------------- | ----------------- |
// | Input Object         | map[string]interface{} |
// | List                 | []interface{}     |
// | Boolean              | bool              |
// | String / Enum Value  | string (or the enum's internal value) |
// | Int                  | int32             |
// | Float                | float64           |
// | Null                 | nil               |
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Values
func ValueFromAST(valueNode ast.Value, ttype Type) (interface{}, bool) {
	if valueNode == nil {
		// When there is no node, then there is also no value.
		return nil, false
	}

	if _, ok := valueNode.(ast.Variable); ok {
		// There is no variable context here; a variable reference never yields a value.
		return nil, false
	}

	switch ttype := ttype.(type) {
	case *NonNull:
		if _, ok := valueNode.(ast.NullValue); ok {
			// Invalid: intentionally return no value.
			return nil, false
		}
		return ValueFromAST(valueNode, ttype.InnerType())

	case *List:
		if _, ok := valueNode.(ast.NullValue); ok {
			// This is explicitly returning the value null.
			return nil, true
		}

		itemType := ttype.ElementType()
		if listNode, ok := valueNode.(ast.ListValue); ok {
			coercedValues := make([]interface{}, 0, len(listNode.Values))
			for _, itemNode := range listNode.Values {
				itemValue, ok := ValueFromAST(itemNode, itemType)
				if !ok {
					if IsNonNullType(itemType) {
						// Invalid: intentionally return no value.
						return nil, false
					}
					itemValue = nil
				}
				coercedValues = append(coercedValues, itemValue)
			}
			return coercedValues, true
		}

		// A non-list value applied to a list type coerces to a list of that single item.
		coercedValue, ok := ValueFromAST(valueNode, itemType)
		if !ok {
			return nil, false
		}
		return []interface{}{coercedValue}, true
	}

	if _, ok := valueNode.(ast.NullValue); ok {
		// This is explicitly returning the value null.
		return nil, true
	}

	switch ttype := ttype.(type) {
	case *InputObject:
		objectNode, ok := valueNode.(ast.ObjectValue)
		if !ok {
			// Invalid: intentionally return no value.
			return nil, false
		}

		lookupFieldNode := func(name string) ast.Value {
			for _, fieldNode := range objectNode.Fields {
				if fieldNode.Name.Value() == name {
					return fieldNode.Value
				}
			}
			return nil
		}

		coercedObject := map[string]interface{}{}
		for _, field := range ttype.Fields() {
			fieldNode := lookupFieldNode(field.Name())
			if fieldNode == nil {
				if field.HasDefaultValue() {
					coercedObject[field.Name()] = field.DefaultValue()
				} else if IsNonNullType(field.Type()) {
					// Invalid: intentionally return no value.
					return nil, false
				}
				continue
			}

			fieldValue, ok := ValueFromAST(fieldNode, field.Type())
			if !ok {
				return nil, false
			}
			coercedObject[field.Name()] = fieldValue
		}
		return coercedObject, true

	case *Enum:
		enumValueNode, ok := valueNode.(ast.EnumValue)
		if !ok {
			// Invalid: intentionally return no value.
			return nil, false
		}
		enumValue := ttype.Value(enumValueNode.Value)
		if enumValue == nil {
			return nil, false
		}
		return enumValue.Value(), true

	case *Scalar:
		// Scalars determine their own validity; no coercion occurs at the type system level.
		return valueNode.Interface(), true
	}

	return nil, false
}

// DirectiveValues prepares a map of argument values given a directive definition and the
// directives applied to an AST node. Returns false when the directive does not apply to the node.
// When the directive appears more than once, only the first application is read.
//
// Note: The returned value is a plain map and not an ordered collection; the keys follow the
// directive definition's argument order only when iterated through Args().
func DirectiveValues(def *Directive, directives ast.Directives) (map[string]interface{}, bool) {
	var directiveNode *ast.Directive
	for _, node := range directives {
		if node.Name.Value() == def.Name() {
			directiveNode = node
			break
		}
	}
	if directiveNode == nil {
		return nil, false
	}

	lookupArgumentNode := func(name string) ast.Value {
		for _, argNode := range directiveNode.Arguments {
			if argNode.Name.Value() == name {
				return argNode.Value
			}
		}
		return nil
	}

	values := map[string]interface{}{}
	args := def.Args()
	for i := range args {
		arg := &args[i]
		argumentNode := lookupArgumentNode(arg.Name())
		if argumentNode == nil {
			if arg.HasDefaultValue() {
				values[arg.Name()] = arg.DefaultValue()
			}
			continue
		}

		if value, ok := ValueFromAST(argumentNode, arg.Type()); ok {
			values[arg.Name()] = value
		} else if arg.HasDefaultValue() {
			values[arg.Name()] = arg.DefaultValue()
		}
	}
	return values, true
}
