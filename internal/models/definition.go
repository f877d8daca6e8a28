package models

// DeclarationKind identifies which introducer declared a definition
type DeclarationKind string

const (
	InterfaceDeclaration DeclarationKind = "interface"
	TypeAliasDeclaration DeclarationKind = "type"
)

// Kind describes the base shape of a property node, ignoring any array wrapper
type Kind int

const (
	ScalarKind Kind = iota
	LiteralKind
	UnionKind
	ObjectKind
	EnumKind
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case LiteralKind:
		return "literal"
	case UnionKind:
		return "union"
	case ObjectKind:
		return "object"
	case EnumKind:
		return "enum"
	default:
		return "unknown"
	}
}

// PropertyNode represents one declared field or nested member of a definition.
// Nodes are produced by the parser and treated as read-only afterwards.
type PropertyNode struct {
	Name         string `json:"name" yaml:"name"`                 // field name, unique within its enclosing list
	DeclaredType string `json:"declaredType" yaml:"declaredType"` // base type text with array wrappers removed
	IsOptional   bool   `json:"isOptional" yaml:"isOptional"`     // declared with the `?` marker

	IsArray    bool `json:"isArray" yaml:"isArray"`                           // outer type is T[] or Array<T>
	Dimensions int  `json:"dimensions,omitempty" yaml:"dimensions,omitempty"` // number of sequence wrappers, 0 when not an array

	IsUnion       bool            `json:"isUnion" yaml:"isUnion"`
	UnionMembers  []string        `json:"unionMembers,omitempty" yaml:"unionMembers,omitempty"` // alternatives with literal quoting removed
	UnionVariants []*PropertyNode `json:"-" yaml:"-"`                                           // alternatives classified as nodes, parallel to UnionMembers

	IsObject       bool            `json:"isObject" yaml:"isObject"`
	ObjectChildren []*PropertyNode `json:"objectChildren,omitempty" yaml:"objectChildren,omitempty"`

	IsEnum     bool     `json:"isEnum" yaml:"isEnum"`
	EnumValues []string `json:"enumValues,omitempty" yaml:"enumValues,omitempty"`

	IsLiteral bool `json:"isLiteral,omitempty" yaml:"isLiteral,omitempty"` // scalar whose text is a quoted, numeric, boolean or null literal
}

// Kind returns the base shape of the node
func (n *PropertyNode) Kind() Kind {
	switch {
	case n.IsUnion:
		return UnionKind
	case n.IsObject:
		return ObjectKind
	case n.IsEnum:
		return EnumKind
	case n.IsLiteral:
		return LiteralKind
	default:
		return ScalarKind
	}
}

// Element returns the node describing one element of an array node.
// Non-array nodes are returned unchanged.
func (n *PropertyNode) Element() *PropertyNode {
	if !n.IsArray {
		return n
	}
	elem := *n
	elem.Dimensions = n.Dimensions - 1
	if elem.Dimensions < 0 {
		elem.Dimensions = 0
	}
	elem.IsArray = elem.Dimensions > 0
	return &elem
}

// Variants returns the classified union alternatives. Nodes built without
// variants fall back to one node per member, where members that do not name a
// primitive type are treated as string literals.
func (n *PropertyNode) Variants() []*PropertyNode {
	if len(n.UnionVariants) == len(n.UnionMembers) {
		return n.UnionVariants
	}
	variants := make([]*PropertyNode, len(n.UnionMembers))
	for i, member := range n.UnionMembers {
		variant := &PropertyNode{Name: n.Name, DeclaredType: member}
		if !IsPrimitiveTypeName(member) {
			variant.DeclaredType = QuoteLiteral(member)
			variant.IsLiteral = true
		}
		variants[i] = variant
	}
	return variants
}

// LiteralValue returns the Go value of a literal node
func (n *PropertyNode) LiteralValue() interface{} {
	return ParseLiteral(n.DeclaredType)
}

// InterfaceDefinition represents the result of parsing one definition text
type InterfaceDefinition struct {
	Name        string          `json:"name" yaml:"name"`
	Kind        DeclarationKind `json:"kind" yaml:"kind"`
	Properties  []*PropertyNode `json:"properties" yaml:"properties"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Diagnostic records a field declaration the parser skipped
type Diagnostic struct {
	Path   string `json:"path,omitempty" yaml:"path,omitempty"` // dotted path of the enclosing object, empty at top level
	Chunk  string `json:"chunk" yaml:"chunk"`                   // the raw field text that was skipped
	Reason string `json:"reason" yaml:"reason"`
}

// HasDiagnostics returns true if any field declaration was skipped
func (d *InterfaceDefinition) HasDiagnostics() bool {
	return len(d.Diagnostics) > 0
}

// Property returns the top-level property with the given name
func (d *InterfaceDefinition) Property(name string) (*PropertyNode, bool) {
	for _, prop := range d.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return nil, false
}
