package compiler

// Program is the root syntax tree handed to the module loader: an ordered
// list of top-level items exactly as they appeared in the source file.
type Program struct {
	Items []ProgramItem
}

// ProgramItem is a tagged union over the three kinds of top-level
// declaration Nemet supports. Exactly one of Func, Static or Import is set.
type ProgramItem struct {
	Func   *Function
	Static *StaticVariable
	Import *ImportDecl
}

// ImportDecl names a sibling source file (without its .nmt suffix) and the
// subset of its top-level functions that should be registered and lowered.
// A nil Names (an import written without a name list) means "import for
// side effects only": none of that file's functions are lowered, but its
// own imports are still followed. The parser accepts this form in any file.
type ImportDecl struct {
	Path  string
	Names []string
}

// StaticVariable is a top-level variable binding. Unlike a local
// VariableDecl it is never popped off a scope stack: it lives in the data
// section for the lifetime of the process.
type StaticVariable struct {
	Name    string
	Type    VariableType
	Init    *Expr // nil if uninitialized
	Mutable bool
}

// Function is a named, typed callable: a signature plus a body block.
type Function struct {
	Name   string
	Params []Param
	Return *VariableType // nil if the function has no return value
	Body   *Block
}

// Param is one entry in a function's parameter list.
type Param struct {
	Name string
	Type VariableType
}

// TypeKind tags the variant of VariableType in play.
type TypeKind int

const (
	TInt TypeKind = iota
	TChar
	TBool
	TPointer
	TArray
)

// VariableType is Nemet's (tiny) type system: enough to pick operand sizes,
// nothing more. Elem and Length are only meaningful when Kind == TArray.
type VariableType struct {
	Kind   TypeKind
	Elem   *VariableType
	Length int
}

// ByteSize returns the total storage footprint of a value of this type.
func (t VariableType) ByteSize() int {
	switch t.Kind {
	case TChar:
		return 1
	case TArray:
		return t.Elem.ElementSize() * t.Length
	default:
		return 8
	}
}

// ElementSize returns the width of one element: equal to ByteSize for
// scalars, and the per-element width for arrays.
func (t VariableType) ElementSize() int {
	if t.Kind == TArray {
		return t.Elem.ElementSize()
	}
	return t.ByteSize()
}

// Block is a lexical block: a flat statement list plus nothing else. Scope
// bookkeeping (the block-id, the scope stack push/pop) is a lowering-time
// concern, not part of the syntax tree.
type Block struct {
	Stmts []Stmt
}

// StmtKind tags the variant of Stmt in play.
type StmtKind int

const (
	SDecl StmtKind = iota
	SAssign
	SIf
	SWhile
	SPrint
	SReturn
	SBreak
	SContinue
	SExpr
	SInlineAsm
)

// Stmt is a tagged union over every statement kind the lowerer handles.
// Only the fields relevant to Kind are populated.
type Stmt struct {
	Kind StmtKind
	Pos  Pos

	Decl   *VariableDecl // SDecl
	Assign *Assignment   // SAssign
	If     *IfStmt       // SIf
	While  *WhileStmt    // SWhile
	Print  Expr          // SPrint
	Return *Expr         // SReturn (nil for a bare `return;`)
	Expr   Expr          // SExpr
	Asm    []string      // SInlineAsm, one entry per string literal
}

// VariableDecl introduces a new local (or, at top level, static) binding.
type VariableDecl struct {
	Name    string
	Type    *VariableType // nil selects the 8-byte Int default
	Init    *Expr         // nil if uninitialized
	Mutable bool
}

// AssignOp is the set of compound-assignment operators Nemet supports.
type AssignOp int

const (
	OpAssign AssignOp = iota
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
)

// Assignment stores through an lvalue: a bare variable or an array index
// into one. Left is constrained to those two Expr kinds by the lowerer, not
// by the type system.
type Assignment struct {
	Left  Expr
	Op    AssignOp
	Right Expr
}

// IfStmt models one level of an if/elif/else chain. Else and Elif are
// mutually exclusive; both nil means a bare `if`.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block
	Elif *IfStmt
}

// WhileStmt is Nemet's only loop form.
type WhileStmt struct {
	Cond Expr
	Body *Block
}

// ExprKind tags the variant of Expr in play.
type ExprKind int

const (
	EInt ExprKind = iota
	EChar
	EString
	EVar
	EBinary
	ECompare
	EUnary
	ECall
	EPtr
	EIndex
)

// BinOp is the arithmetic/bitwise binary operator set.
type BinOp int

const (
	BAdd BinOp = iota
	BSub
	BMul
	BDiv
	BMod
	BOr
	BAnd
	BShl
	BShr
)

// CompareOp is the comparison operator set.
type CompareOp int

const (
	CEq CompareOp = iota
	CNeq
	CLt
	CGt
	CLe
	CGe
)

// UnaryOp is the unary operator set.
type UnaryOp int

const (
	UPlus UnaryOp = iota
	UMinus
	UNot
)

// Expr is a tagged union over every expression kind the lowerer handles.
// Only the fields relevant to Kind are populated.
type Expr struct {
	Kind ExprKind

	IntVal  int64   // EInt
	CharVal byte    // EChar
	StrVal  string  // EString
	Name    string  // EVar, EIndex (the indexed variable's name)
	Left    *Expr   // EBinary, ECompare
	Right   *Expr   // EBinary, ECompare, EUnary (operand)
	BinOp   BinOp   // EBinary
	CmpOp   CompareOp // ECompare
	UnOp    UnaryOp // EUnary
	Callee  string  // ECall
	Args    []Expr  // ECall
	Operand *Expr   // EPtr (must resolve to EVar), EIndex (the indexer)
}
