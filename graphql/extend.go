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
	"sync"

	"github.com/botobag/selene/graphql/ast"
)

// This file implements schema extension: producing a new schema from an existing schema merged
// with the type system definitions and extensions in a parsed document. The original schema is
// never modified; every pre-existing named type is rebuilt with its cross-references re-pointed at
// the rebuilt instances, so the two schemas share no mutable type objects.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Schema-Extension

// SDLValidator validates the type system definitions and extensions in a document against the
// schema being extended before any merging takes place. The validation rules themselves live
// outside this package.
type SDLValidator interface {
	// ValidateSDL returns an error describing the first rule violation found, or nil when the
	// document can be safely applied to the schema.
	ValidateSDL(document *ast.Document, schema *Schema) error
}

// ExtendSchemaOptions configures ExtendSchema.
type ExtendSchemaOptions struct {
	// AssumeValid skips all validation of the document and the resulting schema.
	AssumeValid bool

	// AssumeValidSDL skips document validation against the schema being extended.
	AssumeValidSDL bool

	// Validator checks the document against the schema before merging. When nil, no pre-validation
	// occurs (the caller vouches for the document).
	Validator SDLValidator
}

// ExtendSchema produces a new schema given an existing schema and a document which may contain
// GraphQL type definitions and extensions. The given schema is left untouched. When the document
// contains no type system definitions or extensions, the given schema is returned as is.
func ExtendSchema(schema *Schema, document *ast.Document, opts *ExtendSchemaOptions) (*Schema, error) {
	const op = Op("graphql.ExtendSchema")

	if schema == nil {
		return nil, NewError("Must provide a schema to extend.", op, ErrKindInvalidDocument)
	}
	if document == nil {
		return nil, NewError("Must provide valid Document AST.", op, ErrKindInvalidDocument)
	}

	if opts == nil {
		opts = &ExtendSchemaOptions{}
	}
	if !opts.AssumeValid && !opts.AssumeValidSDL && opts.Validator != nil {
		if err := opts.Validator.ValidateSDL(document, schema); err != nil {
			return nil, NewError("Schema extension failed validation.", op, ErrKindExtension, err)
		}
	}

	config, err := ExtendSchemaConfig(schema.ToConfig(), document)
	if err != nil {
		return nil, err
	}
	if config == schema.ToConfig() {
		// Nothing in the document touched the type system; hand back the identical schema.
		return schema, nil
	}

	return NewSchema(config)
}

// ExtendSchemaConfig produces the configuration of the extended schema given the configuration of
// the schema being extended and a document. When the document contains no type system definitions
// or extensions, the given config is returned as is (pointer-identical), which is how callers
// detect a no-op.
func ExtendSchemaConfig(config *SchemaConfig, document *ast.Document) (*SchemaConfig, error) {
	const op = Op("graphql.ExtendSchemaConfig")

	if config == nil {
		return nil, NewError("Must provide a schema config to extend.", op, ErrKindInvalidDocument)
	}
	if document == nil {
		return nil, NewError("Must provide valid Document AST.", op, ErrKindInvalidDocument)
	}

	partition := partitionDocument(document)
	if !partition.hasChanges() {
		return config, nil
	}

	extender := &schemaExtender{
		config:    config,
		partition: partition,
		typeMap:   map[string]NamedType{},
	}
	return extender.extend(op)
}

//===----------------------------------------------------------------------------------------====//
// Document partition
//===----------------------------------------------------------------------------------------====//

// documentPartition groups the type system definitions and extensions in a document by role.
// Executable definitions (operations and fragments) are not part of the type system and are
// skipped.
type documentPartition struct {
	typeDefs      []ast.TypeDefinition
	typeExts      map[string][]ast.TypeExtension
	directiveDefs []*ast.DirectiveDefinition
	schemaDef     *ast.SchemaDefinition
	schemaExts    []*ast.SchemaExtension
}

// partitionDocument makes a single pass over the document definitions.
func partitionDocument(document *ast.Document) documentPartition {
	partition := documentPartition{
		typeExts: map[string][]ast.TypeExtension{},
	}
	for _, definition := range document.Definitions {
		switch node := definition.(type) {
		case *ast.SchemaDefinition:
			partition.schemaDef = node

		case *ast.SchemaExtension:
			partition.schemaExts = append(partition.schemaExts, node)

		case *ast.DirectiveDefinition:
			partition.directiveDefs = append(partition.directiveDefs, node)

		case ast.TypeDefinition:
			partition.typeDefs = append(partition.typeDefs, node)

		case ast.TypeExtension:
			name := node.TypeName()
			partition.typeExts[name] = append(partition.typeExts[name], node)
		}
	}
	return partition
}

// hasChanges returns true if applying the partitioned document to a schema could produce a schema
// different from the original.
func (partition *documentPartition) hasChanges() bool {
	return len(partition.typeDefs) > 0 ||
		len(partition.typeExts) > 0 ||
		len(partition.directiveDefs) > 0 ||
		partition.schemaDef != nil ||
		len(partition.schemaExts) > 0
}

//===----------------------------------------------------------------------------------------====//
// Standard type table
//===----------------------------------------------------------------------------------------====//

// stdTypeMap maps the names of the specified scalar types and the introspection types to their
// singleton instances. These types are never rebuilt: a reference to "Int" in any schema always
// resolves here first. The map is built lazily because the introspection singletons are only
// populated in init(), which runs after package-level variable initializers.
var stdTypeMap = sync.OnceValue(func() map[string]NamedType {
	typeMap := map[string]NamedType{}
	for _, t := range SpecifiedScalarTypes() {
		typeMap[t.Name()] = t
	}
	for _, t := range IntrospectionTypes() {
		typeMap[t.Name()] = t
	}
	return typeMap
})

//===----------------------------------------------------------------------------------------====//
// Schema extender
//===----------------------------------------------------------------------------------------====//

// schemaExtender rebuilds the type graph. Rebuilt types register into typeMap as they are created;
// their cross-references are deferred behind thunks which read typeMap only after extend() has
// registered every type, so cycles and forward references resolve naturally.
type schemaExtender struct {
	config    *SchemaConfig
	partition documentPartition
	typeMap   map[string]NamedType
}

func (e *schemaExtender) extend(op Op) (*SchemaConfig, error) {
	var (
		partition = e.partition
		config    = e.config
	)

	// Rebuild every named type enumerated by the base config, keeping their order. Root types not
	// listed in Types are rebuilt as well.
	baseTypes := make([]NamedType, 0, len(config.Types)+3)
	seen := map[string]bool{}
	for _, t := range config.Types {
		if t == nil || seen[t.Name()] {
			continue
		}
		seen[t.Name()] = true
		baseTypes = append(baseTypes, t)
	}
	for _, root := range []NamedType{config.Query, config.Mutation, config.Subscription} {
		if root == nil || seen[root.Name()] {
			continue
		}
		seen[root.Name()] = true
		baseTypes = append(baseTypes, root)
	}

	newTypes := make([]NamedType, 0, len(baseTypes)+len(partition.typeDefs))
	for _, t := range baseTypes {
		newTypes = append(newTypes, e.extendNamedType(t))
	}

	// Construct types for the new definitions, in document order. A definition that reuses the name
	// of a standard type yields the standard instance instead of a fresh type.
	for _, node := range partition.typeDefs {
		name := node.TypeName()
		var t NamedType
		if std := stdTypeMap()[name]; std != nil {
			t = std
		} else {
			t = e.buildType(node)
		}
		e.typeMap[name] = t
		newTypes = append(newTypes, t)
	}

	// Carry over the base directives with their argument types re-pointed, then append the newly
	// defined ones in document order. No deduplication occurs here; a duplicate name is the
	// validator's concern.
	baseDirectives := config.Directives
	if baseDirectives == nil {
		baseDirectives = StandardDirectives()
	}
	newDirectives := make(DirectiveList, 0, len(baseDirectives)+len(partition.directiveDefs))
	for _, directive := range baseDirectives {
		newDirectives = append(newDirectives, e.replaceDirective(directive))
	}
	for _, node := range partition.directiveDefs {
		directive, err := e.buildDirective(node, op)
		if err != nil {
			return nil, err
		}
		newDirectives = append(newDirectives, directive)
	}

	// Resolve root operation types: the base roots re-pointed at their rebuilt counterparts, then
	// overridden by the schema definition, then by each schema extension in document order.
	newConfig := &SchemaConfig{
		Description:  config.Description,
		Query:        e.replaceMaybeNamedType(config.Query),
		Mutation:     e.replaceMaybeNamedType(config.Mutation),
		Subscription: e.replaceMaybeNamedType(config.Subscription),
		Types:        newTypes,
		Directives:   newDirectives,
		Definition:   config.Definition,
		Extensions:   config.Extensions,
	}

	if schemaDef := partition.schemaDef; schemaDef != nil {
		if len(schemaDef.Description) > 0 {
			newConfig.Description = schemaDef.Description
		}
		newConfig.Definition = schemaDef
		if err := e.applyOperationTypes(newConfig, schemaDef.OperationTypes, op); err != nil {
			return nil, err
		}
	}
	for _, schemaExt := range partition.schemaExts {
		if err := e.applyOperationTypes(newConfig, schemaExt.OperationTypes, op); err != nil {
			return nil, err
		}
	}
	if len(partition.schemaExts) > 0 {
		extensions := make([]*ast.SchemaExtension, 0, len(config.Extensions)+len(partition.schemaExts))
		extensions = append(extensions, config.Extensions...)
		extensions = append(extensions, partition.schemaExts...)
		newConfig.Extensions = extensions
	}

	return newConfig, nil
}

// applyOperationTypes binds the root operation types named by a schema definition or extension,
// overwriting whatever an earlier node bound.
func (e *schemaExtender) applyOperationTypes(
	config *SchemaConfig, operationTypes []*ast.OperationTypeDefinition, op Op) error {

	for _, operationType := range operationTypes {
		rootType, err := e.getNamedType(operationType.Type.Name.Value(), op)
		if err != nil {
			return err
		}
		switch operationType.Operation {
		case ast.OperationTypeQuery:
			config.Query = rootType
		case ast.OperationTypeMutation:
			config.Mutation = rootType
		case ast.OperationTypeSubscription:
			config.Subscription = rootType
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Type reference resolution
//===----------------------------------------------------------------------------------------====//

// getNamedType resolves a type name to a runtime type: the standard type table first, then the
// types registered during this extension. A name that resolves nowhere produces an error of kind
// ErrKindUnknownType carrying the name and "did you mean" suggestions.
func (e *schemaExtender) getNamedType(name string, op Op) (NamedType, error) {
	if std := stdTypeMap()[name]; std != nil {
		return std, nil
	}
	if t := e.typeMap[name]; t != nil {
		return t, nil
	}

	knownTypeNames := make([]string, 0, len(stdTypeMap())+len(e.typeMap))
	for known := range stdTypeMap() {
		knownTypeNames = append(knownTypeNames, known)
	}
	for known := range e.typeMap {
		knownTypeNames = append(knownTypeNames, known)
	}
	return nil, NewError("", op, NewUnknownTypeError(name, knownTypeNames))
}

// typeFromAST resolves an AST type reference into a runtime type, rebuilding the List and NonNull
// wrappers around the named type at its core.
func (e *schemaExtender) typeFromAST(t ast.Type, op Op) (Type, error) {
	switch ttype := t.(type) {
	case ast.NamedType:
		return e.getNamedType(ttype.Name.Value(), op)

	case ast.ListType:
		elementType, err := e.typeFromAST(ttype.ItemType, op)
		if err != nil {
			return nil, err
		}
		return NewListOfType(elementType)

	case ast.NonNullType:
		innerType, err := e.typeFromAST(ttype.Type, op)
		if err != nil {
			return nil, err
		}
		return NewNonNullOfType(innerType)
	}
	return nil, NewError(fmt.Sprintf("Unexpected type node: %T.", t), op, ErrKindInternal)
}

// replaceType re-points a type reference from the original schema at the rebuilt type graph,
// recreating any List and NonNull wrappers around it.
func (e *schemaExtender) replaceType(t Type) Type {
	switch ttype := t.(type) {
	case *List:
		return MustNewListOfType(e.replaceType(ttype.ElementType()))
	case *NonNull:
		return MustNewNonNullOfType(e.replaceType(ttype.InnerType()))
	}
	return e.replaceMaybeNamedType(t.(NamedType))
}

// replaceNamedType returns the rebuilt counterpart of a named type from the original schema. A
// type that was not rebuilt (because the base config did not enumerate it) is returned as is.
func (e *schemaExtender) replaceNamedType(t NamedType) NamedType {
	if rebuilt := e.typeMap[t.Name()]; rebuilt != nil {
		return rebuilt
	}
	return t
}

// replaceMaybeNamedType is replaceNamedType tolerating a nil type (e.g. an absent mutation root).
func (e *schemaExtender) replaceMaybeNamedType(t NamedType) NamedType {
	if t == nil {
		return nil
	}
	return e.replaceNamedType(t)
}

// replaceDirective rebuilds a directive with its argument types re-pointed at the rebuilt type
// graph. Standard directives are never rebuilt.
func (e *schemaExtender) replaceDirective(directive *Directive) *Directive {
	if IsStandardDirective(directive) {
		return directive
	}

	args := directive.Args()
	argConfigs := make([]ArgumentConfig, len(args))
	for i := range args {
		arg := &args[i]
		argConfigs[i] = ArgumentConfig{
			Name:        arg.Name(),
			Description: arg.Description(),
			Type:        e.replaceType(arg.Type()),
			// Read the stored value directly so a "null" default survives the rebuild.
			DefaultValue: arg.defaultValue,
			Deprecation:  arg.Deprecation(),
			Definition:   arg.Definition(),
		}
	}

	return MustNewDirective(DirectiveConfig{
		Name:        directive.Name(),
		Description: directive.Description(),
		Locations:   directive.Locations(),
		Args:        argConfigs,
		Repeatable:  directive.Repeatable(),
		Definition:  directive.Definition(),
	})
}

//===----------------------------------------------------------------------------------------====//
// Named type extension
//===----------------------------------------------------------------------------------------====//

// extendNamedType rebuilds a named type from the original schema, merging in any extensions the
// document applies to it, and registers the result. Standard types are identity: they are never
// rebuilt, and extensions targeting them are discarded without effect.
func (e *schemaExtender) extendNamedType(t NamedType) NamedType {
	if IsSpecifiedScalarType(t) || IsIntrospectionType(t) {
		e.typeMap[t.Name()] = t
		return t
	}

	var newType NamedType
	switch t := t.(type) {
	case *Scalar:
		newType = e.extendScalarType(t)
	case *Object:
		newType = e.extendObjectType(t)
	case *Interface:
		newType = e.extendInterfaceType(t)
	case *Union:
		newType = e.extendUnionType(t)
	case *Enum:
		newType = e.extendEnumType(t)
	case *InputObject:
		newType = e.extendInputObjectType(t)
	default:
		// Can't happen: the switch above covers every named type kind.
		panic(fmt.Sprintf("unexpected named type %T", t))
	}
	e.typeMap[t.Name()] = newType
	return newType
}

func (e *schemaExtender) extendScalarType(t *Scalar) *Scalar {
	exts := scalarExtensions(e.partition.typeExts[t.Name()])

	// The URL from the last extension carrying @specifiedBy wins over the original.
	url := t.SpecifiedByURL()
	for _, ext := range exts {
		if u, ok := specifiedByURL(ext.Directives); ok {
			url = u
		}
	}

	return MustNewScalar(ScalarConfig{
		Name:           t.Name(),
		Description:    t.Description(),
		SpecifiedByURL: url,
		Definition:     t.Definition(),
		Extensions:     appendScalarExtensions(t.Extensions(), exts),
	})
}

func (e *schemaExtender) extendObjectType(t *Object) *Object {
	const op = Op("graphql.ExtendSchemaConfig")
	exts := objectExtensions(e.partition.typeExts[t.Name()])

	return MustNewObject(ObjectConfig{
		Name:        t.Name(),
		Description: t.Description(),
		Interfaces: func() ([]*Interface, error) {
			var nodes []ast.NamedType
			for _, ext := range exts {
				nodes = append(nodes, ext.Interfaces...)
			}
			return e.extendTypeInterfaces(t.Name(), t.Interfaces(), nodes, op)
		},
		Fields: func() (Fields, error) {
			var nodes []*ast.FieldDefinition
			for _, ext := range exts {
				nodes = append(nodes, ext.Fields...)
			}
			return e.extendFields(t.Fields(), nodes, op)
		},
		Definition: t.Definition(),
		Extensions: appendObjectExtensions(t.Extensions(), exts),
	})
}

func (e *schemaExtender) extendInterfaceType(t *Interface) *Interface {
	const op = Op("graphql.ExtendSchemaConfig")
	exts := interfaceExtensions(e.partition.typeExts[t.Name()])

	return MustNewInterface(InterfaceConfig{
		Name:        t.Name(),
		Description: t.Description(),
		Interfaces: func() ([]*Interface, error) {
			var nodes []ast.NamedType
			for _, ext := range exts {
				nodes = append(nodes, ext.Interfaces...)
			}
			return e.extendTypeInterfaces(t.Name(), t.Interfaces(), nodes, op)
		},
		Fields: func() (Fields, error) {
			var nodes []*ast.FieldDefinition
			for _, ext := range exts {
				nodes = append(nodes, ext.Fields...)
			}
			return e.extendFields(t.Fields(), nodes, op)
		},
		Definition: t.Definition(),
		Extensions: appendInterfaceExtensions(t.Extensions(), exts),
	})
}

func (e *schemaExtender) extendUnionType(t *Union) *Union {
	const op = Op("graphql.ExtendSchemaConfig")
	exts := unionExtensions(e.partition.typeExts[t.Name()])

	return MustNewUnion(UnionConfig{
		Name:        t.Name(),
		Description: t.Description(),
		PossibleTypes: func() ([]*Object, error) {
			var nodes []ast.NamedType
			for _, ext := range exts {
				nodes = append(nodes, ext.Types...)
			}
			return e.extendUnionMembers(t.Name(), t.PossibleTypes(), nodes, op)
		},
		Definition: t.Definition(),
		Extensions: appendUnionExtensions(t.Extensions(), exts),
	})
}

func (e *schemaExtender) extendEnumType(t *Enum) *Enum {
	exts := enumExtensions(e.partition.typeExts[t.Name()])

	values := t.Values()
	valueConfigs := make(EnumValues, 0, len(values))
	for _, value := range values {
		valueConfigs = append(valueConfigs, EnumValueConfig{
			Name:        value.Name(),
			Description: value.Description(),
			Value:       value.Value(),
			Deprecation: value.Deprecation(),
			Definition:  value.Definition(),
		})
	}
	for _, ext := range exts {
		for _, node := range ext.Values {
			valueConfigs = append(valueConfigs, buildEnumValueConfig(node))
		}
	}

	return MustNewEnum(EnumConfig{
		Name:        t.Name(),
		Description: t.Description(),
		Values:      valueConfigs,
		Definition:  t.Definition(),
		Extensions:  appendEnumExtensions(t.Extensions(), exts),
	})
}

func (e *schemaExtender) extendInputObjectType(t *InputObject) *InputObject {
	const op = Op("graphql.ExtendSchemaConfig")
	exts := inputObjectExtensions(e.partition.typeExts[t.Name()])

	return MustNewInputObject(InputObjectConfig{
		Name:        t.Name(),
		Description: t.Description(),
		Fields: func() (InputFields, error) {
			fields := t.Fields()
			fieldConfigs := make(InputFields, 0, len(fields))
			for _, field := range fields {
				fieldConfigs = append(fieldConfigs, InputFieldConfig{
					Name:        field.Name(),
					Description: field.Description(),
					Type:        e.replaceType(field.Type()),
					// Read the stored value directly so a "null" default survives the rebuild.
					DefaultValue: field.defaultValue,
					Deprecation:  field.Deprecation(),
					Definition:   field.Definition(),
				})
			}
			for _, ext := range exts {
				for _, node := range ext.Fields {
					fieldConfig, err := e.buildInputFieldConfig(node, op)
					if err != nil {
						return nil, err
					}
					fieldConfigs = append(fieldConfigs, fieldConfig)
				}
			}
			return fieldConfigs, nil
		},
		Definition: t.Definition(),
		Extensions: appendInputObjectExtensions(t.Extensions(), exts),
	})
}

// extendFields rebuilds the fields of an object or interface type: the original fields with their
// types and argument types re-pointed, followed by the field definitions contributed by extension
// nodes. A contributed field whose name collides with an original one replaces it in place (see
// buildFieldMap).
func (e *schemaExtender) extendFields(
	fields FieldMap, nodes []*ast.FieldDefinition, op Op) (Fields, error) {

	fieldConfigs := make(Fields, 0, len(fields)+len(nodes))
	for _, field := range fields {
		args := field.Args()
		argConfigs := make([]ArgumentConfig, len(args))
		for i := range args {
			arg := &args[i]
			argConfigs[i] = ArgumentConfig{
				Name:        arg.Name(),
				Description: arg.Description(),
				Type:        e.replaceType(arg.Type()),
				// Read the stored value directly so a "null" default survives the rebuild.
				DefaultValue: arg.defaultValue,
				Deprecation:  arg.Deprecation(),
				Definition:   arg.Definition(),
			}
		}
		fieldConfigs = append(fieldConfigs, FieldConfig{
			Name:        field.Name(),
			Description: field.Description(),
			Type:        e.replaceType(field.Type()),
			Args:        argConfigs,
			Deprecation: field.Deprecation(),
			Definition:  field.Definition(),
		})
	}

	for _, node := range nodes {
		fieldConfig, err := e.buildFieldConfig(node, op)
		if err != nil {
			return nil, err
		}
		fieldConfigs = append(fieldConfigs, fieldConfig)
	}
	return fieldConfigs, nil
}

// extendTypeInterfaces rebuilds the implemented-interface list of an object or interface type: the
// original entries re-pointed, followed by the interfaces named by extension nodes.
func (e *schemaExtender) extendTypeInterfaces(
	typeName string, interfaces []*Interface, nodes []ast.NamedType, op Op) ([]*Interface, error) {

	result := make([]*Interface, 0, len(interfaces)+len(nodes))
	for _, iface := range interfaces {
		// A rebuilt interface is always an interface; the rebuild preserves kind.
		result = append(result, e.replaceNamedType(iface).(*Interface))
	}
	for _, node := range nodes {
		t, err := e.getNamedType(node.Name.Value(), op)
		if err != nil {
			return nil, err
		}
		iface, ok := t.(*Interface)
		if !ok {
			return nil, NewError(fmt.Sprintf(
				`Type "%s" must only implement Interface types, it cannot implement "%s".`,
				typeName, t), op, ErrKindValidation)
		}
		result = append(result, iface)
	}
	return result, nil
}

// extendUnionMembers rebuilds the member list of a union type: the original members re-pointed,
// followed by the types named by extension nodes.
func (e *schemaExtender) extendUnionMembers(
	unionName string, members []*Object, nodes []ast.NamedType, op Op) ([]*Object, error) {

	result := make([]*Object, 0, len(members)+len(nodes))
	for _, member := range members {
		result = append(result, e.replaceNamedType(member).(*Object))
	}
	for _, node := range nodes {
		t, err := e.getNamedType(node.Name.Value(), op)
		if err != nil {
			return nil, err
		}
		object, ok := t.(*Object)
		if !ok {
			return nil, NewError(fmt.Sprintf(
				`Union type "%s" can only include Object types, it cannot include "%s".`,
				unionName, t), op, ErrKindValidation)
		}
		result = append(result, object)
	}
	return result, nil
}

//===----------------------------------------------------------------------------------------====//
// Type construction from definitions
//===----------------------------------------------------------------------------------------====//

// buildType constructs a fresh named type from a type definition node, folding in any extensions
// the document applies to the same name. All type references are deferred behind thunks, so the
// definitions may reference each other (and themselves) in any order.
func (e *schemaExtender) buildType(node ast.TypeDefinition) NamedType {
	const op = Op("graphql.ExtendSchemaConfig")
	exts := e.partition.typeExts[node.TypeName()]

	switch node := node.(type) {
	case *ast.ScalarTypeDefinition:
		scalarExts := scalarExtensions(exts)
		url, _ := specifiedByURL(node.Directives)
		for _, ext := range scalarExts {
			if u, ok := specifiedByURL(ext.Directives); ok {
				url = u
			}
		}
		return MustNewScalar(ScalarConfig{
			Name:           node.Name.Value(),
			Description:    node.Description,
			SpecifiedByURL: url,
			Definition:     node,
			Extensions:     scalarExts,
		})

	case *ast.ObjectTypeDefinition:
		objectExts := objectExtensions(exts)
		return MustNewObject(ObjectConfig{
			Name:        node.Name.Value(),
			Description: node.Description,
			Interfaces: func() ([]*Interface, error) {
				nodes := node.Interfaces
				for _, ext := range objectExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Interfaces...)
				}
				return e.extendTypeInterfaces(node.Name.Value(), nil, nodes, op)
			},
			Fields: func() (Fields, error) {
				nodes := node.Fields
				for _, ext := range objectExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Fields...)
				}
				return e.extendFields(nil, nodes, op)
			},
			Definition: node,
			Extensions: objectExts,
		})

	case *ast.InterfaceTypeDefinition:
		interfaceExts := interfaceExtensions(exts)
		return MustNewInterface(InterfaceConfig{
			Name:        node.Name.Value(),
			Description: node.Description,
			Interfaces: func() ([]*Interface, error) {
				nodes := node.Interfaces
				for _, ext := range interfaceExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Interfaces...)
				}
				return e.extendTypeInterfaces(node.Name.Value(), nil, nodes, op)
			},
			Fields: func() (Fields, error) {
				nodes := node.Fields
				for _, ext := range interfaceExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Fields...)
				}
				return e.extendFields(nil, nodes, op)
			},
			Definition: node,
			Extensions: interfaceExts,
		})

	case *ast.UnionTypeDefinition:
		unionExts := unionExtensions(exts)
		return MustNewUnion(UnionConfig{
			Name:        node.Name.Value(),
			Description: node.Description,
			PossibleTypes: func() ([]*Object, error) {
				nodes := node.Types
				for _, ext := range unionExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Types...)
				}
				return e.extendUnionMembers(node.Name.Value(), nil, nodes, op)
			},
			Definition: node,
			Extensions: unionExts,
		})

	case *ast.EnumTypeDefinition:
		enumExts := enumExtensions(exts)
		valueConfigs := make(EnumValues, 0, len(node.Values))
		for _, valueNode := range node.Values {
			valueConfigs = append(valueConfigs, buildEnumValueConfig(valueNode))
		}
		for _, ext := range enumExts {
			for _, valueNode := range ext.Values {
				valueConfigs = append(valueConfigs, buildEnumValueConfig(valueNode))
			}
		}
		return MustNewEnum(EnumConfig{
			Name:        node.Name.Value(),
			Description: node.Description,
			Values:      valueConfigs,
			Definition:  node,
			Extensions:  enumExts,
		})

	case *ast.InputObjectTypeDefinition:
		inputObjectExts := inputObjectExtensions(exts)
		return MustNewInputObject(InputObjectConfig{
			Name:        node.Name.Value(),
			Description: node.Description,
			Fields: func() (InputFields, error) {
				nodes := node.Fields
				for _, ext := range inputObjectExts {
					nodes = append(nodes[:len(nodes):len(nodes)], ext.Fields...)
				}
				fieldConfigs := make(InputFields, 0, len(nodes))
				for _, fieldNode := range nodes {
					fieldConfig, err := e.buildInputFieldConfig(fieldNode, op)
					if err != nil {
						return nil, err
					}
					fieldConfigs = append(fieldConfigs, fieldConfig)
				}
				return fieldConfigs, nil
			},
			Definition: node,
			Extensions: inputObjectExts,
		})
	}

	// Can't happen: the switch above covers every type definition kind.
	panic(fmt.Sprintf("unexpected type definition %T", node))
}

// buildFieldConfig constructs a field config from a field definition node.
func (e *schemaExtender) buildFieldConfig(node *ast.FieldDefinition, op Op) (FieldConfig, error) {
	fieldType, err := e.typeFromAST(node.Type, op)
	if err != nil {
		return FieldConfig{}, err
	}

	argConfigs := make([]ArgumentConfig, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		argType, err := e.typeFromAST(argNode.Type, op)
		if err != nil {
			return FieldConfig{}, err
		}
		argConfigs = append(argConfigs, ArgumentConfig{
			Name:         argNode.Name.Value(),
			Description:  argNode.Description,
			Type:         argType,
			DefaultValue: defaultValueFromAST(argNode.DefaultValue, argType, NilArgumentDefaultValue),
			Deprecation:  deprecationOf(argNode.Directives),
			Definition:   argNode,
		})
	}

	return FieldConfig{
		Name:        node.Name.Value(),
		Description: node.Description,
		Type:        fieldType,
		Args:        argConfigs,
		Deprecation: deprecationOf(node.Directives),
		Definition:  node,
	}, nil
}

// buildInputFieldConfig constructs an input field config from an input value definition node.
func (e *schemaExtender) buildInputFieldConfig(
	node *ast.InputValueDefinition, op Op) (InputFieldConfig, error) {

	fieldType, err := e.typeFromAST(node.Type, op)
	if err != nil {
		return InputFieldConfig{}, err
	}

	return InputFieldConfig{
		Name:         node.Name.Value(),
		Description:  node.Description,
		Type:         fieldType,
		DefaultValue: defaultValueFromAST(node.DefaultValue, fieldType, NilInputFieldDefaultValue),
		Deprecation:  deprecationOf(node.Directives),
		Definition:   node,
	}, nil
}

// buildEnumValueConfig constructs an enum value config from an enum value definition node. The
// internal value of a value built from SDL is its name.
func buildEnumValueConfig(node *ast.EnumValueDefinition) EnumValueConfig {
	return EnumValueConfig{
		Name:        node.Name.Value(),
		Description: node.Description,
		Deprecation: deprecationOf(node.Directives),
		Definition:  node,
	}
}

// buildDirective constructs a directive from a directive definition node. Unlike types, directive
// arguments resolve eagerly; buildDirective must therefore run after every type has been
// registered.
func (e *schemaExtender) buildDirective(node *ast.DirectiveDefinition, op Op) (*Directive, error) {
	locations := make([]DirectiveLocation, len(node.Locations))
	for i, location := range node.Locations {
		locations[i] = DirectiveLocation(location.Value())
	}

	argConfigs := make([]ArgumentConfig, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		argType, err := e.typeFromAST(argNode.Type, op)
		if err != nil {
			return nil, err
		}
		argConfigs = append(argConfigs, ArgumentConfig{
			Name:         argNode.Name.Value(),
			Description:  argNode.Description,
			Type:         argType,
			DefaultValue: defaultValueFromAST(argNode.DefaultValue, argType, NilArgumentDefaultValue),
			Deprecation:  deprecationOf(argNode.Directives),
			Definition:   argNode,
		})
	}

	return NewDirective(DirectiveConfig{
		Name:        node.Name.Value(),
		Description: node.Description,
		Locations:   locations,
		Args:        argConfigs,
		Repeatable:  node.Repeatable,
		Definition:  node,
	})
}

//===----------------------------------------------------------------------------------------====//
// Metadata extraction
//===----------------------------------------------------------------------------------------====//

// deprecationOf reads the @deprecated directive off an AST node's applied directives. The reason
// argument falls back to DefaultDeprecationReason through the directive's argument default.
func deprecationOf(directives ast.Directives) *Deprecation {
	values, ok := DirectiveValues(DeprecatedDirective(), directives)
	if !ok {
		return nil
	}
	reason, _ := values["reason"].(string)
	return &Deprecation{Reason: reason}
}

// specifiedByURL reads the url argument of the @specifiedBy directive off an AST node's applied
// directives. The second return is false when the directive is not applied.
func specifiedByURL(directives ast.Directives) (string, bool) {
	values, ok := DirectiveValues(SpecifiedByDirective(), directives)
	if !ok {
		return "", false
	}
	url, _ := values["url"].(string)
	return url, true
}

// defaultValueFromAST evaluates a default value literal against its type, mapping an explicit
// "null" to the given marker so it stays distinguishable from an absent default.
func defaultValueFromAST(node ast.Value, ttype Type, nilMarker interface{}) interface{} {
	if node == nil {
		return nil
	}
	value, ok := ValueFromAST(node, ttype)
	if !ok {
		return nil
	}
	if value == nil {
		return nilMarker
	}
	return value
}

//===----------------------------------------------------------------------------------------====//
// Extension node filters
//===----------------------------------------------------------------------------------------====//

// The per-kind rebuilds only consume extension nodes of their own kind. An extension whose kind
// does not match the type it names is left for the validator to report.

func scalarExtensions(exts []ast.TypeExtension) []*ast.ScalarTypeExtension {
	var result []*ast.ScalarTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.ScalarTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

func objectExtensions(exts []ast.TypeExtension) []*ast.ObjectTypeExtension {
	var result []*ast.ObjectTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.ObjectTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

func interfaceExtensions(exts []ast.TypeExtension) []*ast.InterfaceTypeExtension {
	var result []*ast.InterfaceTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.InterfaceTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

func unionExtensions(exts []ast.TypeExtension) []*ast.UnionTypeExtension {
	var result []*ast.UnionTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.UnionTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

func enumExtensions(exts []ast.TypeExtension) []*ast.EnumTypeExtension {
	var result []*ast.EnumTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.EnumTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

func inputObjectExtensions(exts []ast.TypeExtension) []*ast.InputObjectTypeExtension {
	var result []*ast.InputObjectTypeExtension
	for _, ext := range exts {
		if ext, ok := ext.(*ast.InputObjectTypeExtension); ok {
			result = append(result, ext)
		}
	}
	return result
}

// The append helpers below never alias the original extension list; the original type keeps its
// own provenance untouched.

func appendScalarExtensions(
	old []*ast.ScalarTypeExtension, added []*ast.ScalarTypeExtension) []*ast.ScalarTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.ScalarTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}

func appendObjectExtensions(
	old []*ast.ObjectTypeExtension, added []*ast.ObjectTypeExtension) []*ast.ObjectTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.ObjectTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}

func appendInterfaceExtensions(
	old []*ast.InterfaceTypeExtension, added []*ast.InterfaceTypeExtension) []*ast.InterfaceTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.InterfaceTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}

func appendUnionExtensions(
	old []*ast.UnionTypeExtension, added []*ast.UnionTypeExtension) []*ast.UnionTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.UnionTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}

func appendEnumExtensions(
	old []*ast.EnumTypeExtension, added []*ast.EnumTypeExtension) []*ast.EnumTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.EnumTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}

func appendInputObjectExtensions(
	old []*ast.InputObjectTypeExtension, added []*ast.InputObjectTypeExtension) []*ast.InputObjectTypeExtension {
	if len(added) == 0 {
		return old
	}
	result := make([]*ast.InputObjectTypeExtension, 0, len(old)+len(added))
	return append(append(result, old...), added...)
}
