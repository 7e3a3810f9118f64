package ir

// Type is the sum of all IR type shapes. It is a closed set: typ() is
// unexported so only this package can produce new kinds, which is what
// makes the type mapper's switch over Type exhaustive by construction.
type Type interface {
	typ()
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

// PrimitiveType is a primitive type reference, e.g. `number` or `string`.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (*PrimitiveType) typ() {}

// ArrayType is `T[]` / `Array<T>`.
type ArrayType struct {
	Elem Type
}

func (*ArrayType) typ() {}

// TupleType is `[T1, T2, ...]`.
type TupleType struct {
	Elems []Type
}

func (*TupleType) typ() {}

// IndexSignature is `{ [key: K]: V }`.
type IndexSignature struct {
	KeyType   Type
	ValueType Type
}

// PropertySignature is one named member of an object type or interface.
type PropertySignature struct {
	Name     string
	Type     Type
	Optional bool
	Readonly bool
}

// ObjectType is a structural object type: `{ a: number, b?: string }`.
// IndexSig is nil unless the object type has an index signature.
type ObjectType struct {
	Props    []PropertySignature
	IndexSig *IndexSignature
}

func (*ObjectType) typ() {}

// TypeParameter is a single generic parameter, e.g. `T extends Base = Default`.
type TypeParameter struct {
	Name       string
	Constraint Type
	Default    Type
}

// Parameter is a single function parameter.
type Parameter struct {
	Name     string
	Type     Type
	Optional bool
	Default  Expression
	Rest     bool
}

// FunctionType is a function type, e.g. `(a: number) => string`.
type FunctionType struct {
	Params     []Parameter
	Ret        Type
	TypeParams []TypeParameter
	IsAsync    bool
}

func (*FunctionType) typ() {}

// UnionType is `A | B | C`.
type UnionType struct {
	Types []Type
}

func (*UnionType) typ() {}

// IntersectionType is `A & B & C`.
type IntersectionType struct {
	Types []Type
}

func (*IntersectionType) typ() {}

// ReferenceType is a named type reference, optionally generic:
// `Foo`, `Array<string>`, `Map<K, V>`.
type ReferenceType struct {
	Name     string
	TypeArgs []Type
}

func (*ReferenceType) typ() {}

// LiteralKind enumerates the literal value kinds a LiteralType can pin to.
type LiteralKind string

const (
	LiteralKindString  LiteralKind = "string"
	LiteralKindNumber  LiteralKind = "number"
	LiteralKindBoolean LiteralKind = "boolean"
)

// LiteralType is a literal type, e.g. `"ok"`, `42`, `true`.
type LiteralType struct {
	Kind  LiteralKind
	Value any
}

func (*LiteralType) typ() {}

// IsNever reports whether t is the bottom type.
func IsNever(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.Kind == PrimNever
}

// IsTopType reports whether t is `any` or `unknown` — the two types the
// type mapper collapses to an empty interface.
func IsTopType(t Type) bool {
	p, ok := t.(*PrimitiveType)
	return ok && (p.Kind == PrimAny || p.Kind == PrimUnknown)
}
