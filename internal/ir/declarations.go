package ir

// Declaration is the sum of all top-level (or class-member-adjacent)
// declaration kinds.
type Declaration interface {
	Node
	decl()
	DeclName() string
	Modifiers() ModifierSet
}

type declBase struct {
	Location SourceLocation
	Name     string
	Mods     ModifierSet
}

func (d *declBase) Loc() SourceLocation   { return d.Location }
func (d *declBase) decl()                 {}
func (d *declBase) DeclName() string      { return d.Name }
func (d *declBase) Modifiers() ModifierSet {
	if d.Mods == nil {
		return ModifierSet{}
	}
	return d.Mods
}

// VariableDecl is a single `const`/`let`/`var` binding. A source statement
// declaring multiple bindings (`let a = 1, b = 2;`) lowers to N of these —
// see internal/lowering's variable-statement splitting rule.
type VariableDecl struct {
	declBase
	Type    Type // nil when absent; emitter infers
	Init    Expression
	IsConst bool
}

func (n *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(n) }

// FunctionDecl is a top-level function declaration.
type FunctionDecl struct {
	declBase
	Params     []Parameter
	Ret        Type
	TypeParams []TypeParameter
	Body       *BlockStmt
	IsAsync    bool
}

func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }

// ClassMember is the sum of the two class member kinds.
type ClassMember interface {
	Node
	member()
	MemberName() string
	Modifiers() ModifierSet
}

type memberBase struct {
	Location SourceLocation
	Name     string
	Mods     ModifierSet
}

func (m *memberBase) Loc() SourceLocation { return m.Location }
func (m *memberBase) member()             {}
func (m *memberBase) MemberName() string  { return m.Name }
func (m *memberBase) Modifiers() ModifierSet {
	if m.Mods == nil {
		return ModifierSet{}
	}
	return m.Mods
}

// PropertyMember is an instance or static field. IsConstructorParam is set
// by lowering when this property originated from a constructor-parameter
// property (`constructor(private x: number)`).
type PropertyMember struct {
	memberBase
	Type               Type
	Init               Expression
	IsConstructorParam bool
}

func (n *PropertyMember) Accept(v Visitor) { v.VisitPropertyMember(n) }

// MethodMember is a method, constructor (Name == "constructor"), getter
// (Name == "get_X"), or setter (Name == "set_X").
type MethodMember struct {
	memberBase
	Params     []Parameter
	Ret        Type
	TypeParams []TypeParameter
	Body       *BlockStmt
	IsAsync    bool
}

func (n *MethodMember) Accept(v Visitor) { v.VisitMethodMember(n) }

// IsConstructor reports whether this method is the class constructor.
func (n *MethodMember) IsConstructor() bool { return n.Name == "constructor" }

// IsAccessor reports whether this method is a getter or setter, and which.
func (n *MethodMember) IsAccessor() (isGetter, isSetter bool) {
	return len(n.Name) > 4 && n.Name[:4] == "get_", len(n.Name) > 4 && n.Name[:4] == "set_"
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	declBase
	Parent      string // empty when no `extends` clause
	Interfaces  []string
	TypeParams  []TypeParameter
	Properties  []*PropertyMember
	Methods     []*MethodMember
	Constructor *MethodMember // nil when absent
	IsAbstract  bool
}

func (n *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(n) }

// InterfaceDecl is an interface declaration, lowered (per spec.md §4.1) so
// that method signatures become PropertySignature entries whose Type is a
// FunctionType, and a lone index signature becomes a property named
// "[index]".
type InterfaceDecl struct {
	declBase
	TypeParams []TypeParameter
	Extends    []string
	Props      []PropertySignature
}

func (n *InterfaceDecl) Accept(v Visitor) { v.VisitInterfaceDecl(n) }

// IndexPropertyName is the synthetic PropertySignature.Name used to carry a
// lone `[key: K]: V` index signature through InterfaceDecl.Props.
const IndexPropertyName = "[index]"

// TypeAliasDecl is `type Name<T> = Body;`. Body is preserved verbatim; the
// type mapper and emitter jointly decide the target representation.
type TypeAliasDecl struct {
	declBase
	TypeParams []TypeParameter
	Body       Type
}

func (n *TypeAliasDecl) Accept(v Visitor) { v.VisitTypeAliasDecl(n) }

// EnumMember is one member of an enum declaration.
type EnumMember struct {
	Name string
	// Value is nil for an auto-numbered numeric member. It holds an
	// int64 or a string once lowering can resolve the initializer to a
	// literal immediately; this is the form the emitter consumes.
	Value any
	// ValueExpr is the original initializer expression, preserved
	// verbatim per spec so a later optimizer pass can fold a
	// non-literal initializer that Value couldn't capture. Nil when the
	// member has no initializer.
	ValueExpr Expression
}

// EnumDecl is an enum declaration. IsHeterogeneous is true when any member
// has a string initializer, per spec.md's heterogeneous marker rule.
type EnumDecl struct {
	declBase
	Members         []EnumMember
	IsHeterogeneous bool
}

func (n *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(n) }
