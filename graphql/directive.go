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
	"fmt"

	"github.com/botobag/selene/graphql/ast"
)

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://graphql.github.io/graphql-spec/June2018/#DirectiveLocations
const (
	// Executable directive location
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation                             = "MUTATION"
	DirectiveLocationSubscription                         = "SUBSCRIPTION"
	DirectiveLocationField                                = "FIELD"
	DirectiveLocationFragmentDefinition                   = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread                       = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment                       = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition                   = "VARIABLE_DEFINITION"

	// Type system directive location
	DirectiveLocationSchema               = "SCHEMA"
	DirectiveLocationScalar               = "SCALAR"
	DirectiveLocationObject               = "OBJECT"
	DirectiveLocationFieldDefinition      = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            = "INTERFACE"
	DirectiveLocationUnion                = "UNION"
	DirectiveLocationEnum                 = "ENUM"
	DirectiveLocationEnumValue            = "ENUM_VALUE"
	DirectiveLocationInputObject          = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition = "INPUT_FIELD_DEFINITION"
)

// DirectiveConfig provides definition for creating a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive type
	Description string

	// Locations in the schema where the defining directive can appear
	Locations []DirectiveLocation

	// Arguments to be provided when using the directive
	Args []ArgumentConfig

	// Repeatable is true if the directive may be applied more than once at a single location.
	Repeatable bool

	// Definition is the AST node the directive was constructed from, if any.
	Definition *ast.DirectiveDefinition
}

// Directive are used by the GraphQL runtime as a way of modifying a validator, execution or client
// tool behavior.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Directives
type Directive struct {
	config DirectiveConfig
	args   []Argument
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

// NewDirective creates a Directive from a DirectiveConfig.
func NewDirective(config DirectiveConfig) (*Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}

	args, err := buildArguments(config.Args)
	if err != nil {
		return nil, err
	}

	return &Directive{
		config:   config,
		args:     args,
		notation: fmt.Sprintf("@%s", config.Name),
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on failure
// instead of returning an error.
func MustNewDirective(config DirectiveConfig) *Directive {
	directive, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return directive
}

// Name of the directive
func (d *Directive) Name() string {
	return d.config.Name
}

// Description provides documentation for the directive.
func (d *Directive) Description() string {
	return d.config.Description
}

// Locations specifies the places where the directive must only be used.
func (d *Directive) Locations() []DirectiveLocation {
	return d.config.Locations
}

// Args indicates the arguments taken by the directive.
func (d *Directive) Args() []Argument {
	return d.args
}

// Repeatable is true if the directive may be applied more than once at a single location.
func (d *Directive) Repeatable() bool {
	return d.config.Repeatable
}

// Definition is the AST node the directive was constructed from, or nil for a directive
// constructed programmatically.
func (d *Directive) Definition() *ast.DirectiveDefinition {
	return d.config.Definition
}

// String implemennts fmt.Stringer.
func (d *Directive) String() string {
	return d.notation
}

// DirectiveList is an ordered collection of directives keyed by name. A name may appear more than
// once; Lookup returns the first match.
type DirectiveList []*Directive

// Lookup finds the directive with given name or returns nil if there's no such one.
func (directives DirectiveList) Lookup(name string) *Directive {
	for _, directive := range directives {
		if directive.Name() == name {
			return directive
		}
	}
	return nil
}
