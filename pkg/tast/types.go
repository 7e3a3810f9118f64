// Package tast defines the typed-AST contract the (external, out-of-scope)
// frontend hands to the core: a parser + type checker's output, with
// resolved symbols and modifiers already attached. Every type here is
// JSON-tagged so a frontend process can serialize it across a process
// boundary, or a test can build fixtures from literal JSON — see file.go.
package tast

// Position mirrors ir.Position; kept as an independent type so this
// package has no dependency on internal/ir (the frontend boundary must
// not leak internal IR shapes).
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Location spans Start to End within File.
type Location struct {
	File  string   `json:"file"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// PrimitiveKind enumerates the source language's primitive types.
type PrimitiveKind string

const (
	PrimNumber  PrimitiveKind = "number"
	PrimString  PrimitiveKind = "string"
	PrimBoolean PrimitiveKind = "boolean"
	PrimVoid    PrimitiveKind = "void"
	PrimAny     PrimitiveKind = "any"
	PrimUnknown PrimitiveKind = "unknown"
	PrimNever   PrimitiveKind = "never"
)

// TypeKind discriminates the Type union below. tast.Type is a flat,
// JSON-friendly encoding of the same shapes as ir.Type (one struct with an
// explicit Kind tag, rather than a closed Go interface) because it must
// round-trip through JSON from an external frontend.
type TypeKind string

const (
	TypePrimitive    TypeKind = "primitive"
	TypeArray        TypeKind = "array"
	TypeTuple        TypeKind = "tuple"
	TypeObject       TypeKind = "object"
	TypeFunction     TypeKind = "function"
	TypeUnion        TypeKind = "union"
	TypeIntersection TypeKind = "intersection"
	TypeReference    TypeKind = "reference"
	TypeLiteral      TypeKind = "literal"
)

// Type is the typed AST's flat type encoding. Only the fields relevant to
// Kind are populated; the rest are left zero.
type Type struct {
	Kind TypeKind `json:"kind"`

	Primitive PrimitiveKind `json:"primitive,omitempty"`

	Elem  *Type  `json:"elem,omitempty"`  // array
	Elems []Type `json:"elems,omitempty"` // tuple, union, intersection

	Props    []PropertySignature `json:"props,omitempty"`    // object
	IndexKey *Type               `json:"indexKey,omitempty"` // object index signature
	IndexVal *Type               `json:"indexVal,omitempty"`

	Params     []Parameter     `json:"params,omitempty"` // function
	Ret        *Type           `json:"ret,omitempty"`
	TypeParams []TypeParameter `json:"typeParams,omitempty"`
	IsAsync    bool            `json:"isAsync,omitempty"`

	Name     string `json:"name,omitempty"` // reference
	TypeArgs []Type `json:"typeArgs,omitempty"`

	LiteralKind  string `json:"literalKind,omitempty"` // literal: "string"|"number"|"boolean"
	LiteralValue any    `json:"literalValue,omitempty"`
}

// PropertySignature is one member of an object type or interface.
type PropertySignature struct {
	Name     string `json:"name"`
	Type     Type   `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Readonly bool   `json:"readonly,omitempty"`
}

// Parameter is a function/method parameter.
type Parameter struct {
	Name     string      `json:"name"`
	Type     *Type       `json:"type,omitempty"`
	Optional bool        `json:"optional,omitempty"`
	Default  *Expression `json:"default,omitempty"`
	Rest     bool        `json:"rest,omitempty"`
	// AccessModifier is non-empty ("public"|"private"|"protected") when
	// this parameter is a constructor-parameter-property; ReadonlyMod
	// mirrors a `readonly` modifier alongside it.
	AccessModifier string `json:"accessModifier,omitempty"`
	ReadonlyMod    bool   `json:"readonlyMod,omitempty"`
}

// TypeParameter is a single generic parameter.
type TypeParameter struct {
	Name       string `json:"name"`
	Constraint *Type  `json:"constraint,omitempty"`
	Default    *Type  `json:"default,omitempty"`
}
