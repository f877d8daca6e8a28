// Package synth turns a parsed property tree into mock data or mock-producing
// source code. Every output form is an Emitter driven by the same Walk, so the
// data and source forms always agree on structure and generator choice.
package synth

import (
	"github.com/toyz/fakegen/internal/models"
)

// Emitter builds one kind of output from the shapes of a property tree.
// Children are passed as thunks; an emitter evaluates only the ones it needs.
type Emitter[T any] interface {
	// Array receives the array node and a thunk building one element
	Array(node *models.PropertyNode, element func() T) T
	// Union receives one thunk per alternative, in declaration order
	Union(node *models.PropertyNode, variants []func() T) T
	// Object receives the ordered fields; node is nil for a top-level record
	Object(node *models.PropertyNode, fields []Field[T]) T
	Enum(node *models.PropertyNode, values []string) T
	Literal(node *models.PropertyNode) T
	// Leaf receives the generator chosen by the rule table
	Leaf(node *models.PropertyNode, gen Generator) T
}

// Field is one member of an object passed to an Emitter
type Field[T any] struct {
	Node  *models.PropertyNode
	Build func() T
}

// Walk dispatches node to e. Array wrappers are handled first, then the base
// shape: union, object, enum, literal, and finally a leaf resolved by rules.
func Walk[T any](node *models.PropertyNode, rules *RuleSet, e Emitter[T]) T {
	if node.IsArray {
		elem := node.Element()
		return e.Array(node, func() T { return Walk(elem, rules, e) })
	}

	switch node.Kind() {
	case models.UnionKind:
		variants := node.Variants()
		thunks := make([]func() T, len(variants))
		for i, variant := range variants {
			thunks[i] = func() T { return Walk(variant, rules, e) }
		}
		return e.Union(node, thunks)
	case models.ObjectKind:
		return e.Object(node, Fields(node.ObjectChildren, rules, e))
	case models.EnumKind:
		return e.Enum(node, node.EnumValues)
	case models.LiteralKind:
		return e.Literal(node)
	default:
		return e.Leaf(node, rules.Resolve(node))
	}
}

// Fields wraps each property in a thunk walking it with e
func Fields[T any](props []*models.PropertyNode, rules *RuleSet, e Emitter[T]) []Field[T] {
	fields := make([]Field[T], len(props))
	for i, prop := range props {
		fields[i] = Field[T]{
			Node:  prop,
			Build: func() T { return Walk(prop, rules, e) },
		}
	}
	return fields
}
