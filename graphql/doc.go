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

// Package graphql implements the GraphQL type system and schema extension. It provides the
// foundation to build a GraphQL type schema and to derive new schemas from existing ones by
// applying type system definitions and extensions parsed from SDL.
//
// Thunk-Config-Type Design
//
// Each named type kind is created from a Config struct via its NewType function. Cross-references
// between types (the fields of an object, the members of a union and so on) are supplied as thunks:
// functions that yield the referenced types when called. Because a function body referencing other
// types never causes an "initialization loop" the way global variables do, types that depend on
// each other and even on themselves can be declared without additional work.
//
// Thunks are evaluated at most once, when the type is placed into a schema by NewSchema. From that
// point on a type never changes; a schema and everything it holds is immutable after creation.
// ExtendSchema relies on this: extending never touches the schema being extended, it rebuilds every
// named type with its references re-pointed into the new type graph and assembles a fresh schema
// around them.
package graphql
