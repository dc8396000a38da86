package ir

import (
	"github.com/lhaig/nullcheck/internal/types"
)

// Pos is a source range as byte offsets into the original file.
type Pos struct {
	Start int
	End   int
}

// NoPos marks nodes that have no source location.
var NoPos = Pos{Start: -1, End: -1}

// Program is a set of independent compilation units.
type Program struct {
	Files []*File
}

// File represents a single compilation unit.
type File struct {
	Name  string
	Path  string // original file path
	Decls []Decl
}

// Symbol identifies a call target. Symbols are compared by pointer.
type Symbol struct {
	Name       string
	ReturnType *types.Type
	Intrinsic  bool
}

// Variable identifies a local variable or parameter. Variables are compared by pointer.
type Variable struct {
	ID        int
	Name      string
	Type      *types.Type
	Temporary bool // introduced by the compiler, no source-level name
}

// --- Declarations ---

// Decl is the interface for all top-level declarations.
type Decl interface {
	DeclName() string
	declNode()
}

// Function represents a function declaration.
type Function struct {
	Name       string
	Params     []*Variable
	ReturnType *types.Type
	Body       []Stmt
}

func (d *Function) DeclName() string { return d.Name }
func (*Function) declNode()          {}

// Property represents a top-level property with an optional initializer.
type Property struct {
	Name        string
	Type        *types.Type
	Initializer Expr // nil if absent
}

func (d *Property) DeclName() string { return d.Name }
func (*Property) declNode()          {}

// --- Statements ---

// Stmt is the interface for all IR statement nodes.
type Stmt interface {
	stmtNode()
}

// VarDecl declares a local and initializes it once.
type VarDecl struct {
	Var  *Variable
	Init Expr
}

func (*VarDecl) stmtNode() {}

// AssignStmt stores into an existing local.
type AssignStmt struct {
	Var   *Variable
	Value Expr
}

func (*AssignStmt) stmtNode() {}

// ExprStmt wraps an expression evaluated for its side effects.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// IfStmt represents an if/else statement.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else branch
	Pos  Pos
}

func (*IfStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

func (*WhileStmt) stmtNode() {}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	Value Expr // nil for bare return
}

func (*ReturnStmt) stmtNode() {}

// --- Expressions ---

// Expr is the interface for all IR expression nodes.
type Expr interface {
	ExprType() *types.Type
	ExprPos() Pos
	exprNode()
}

// CallExpr represents a call to a function or intrinsic.
type CallExpr struct {
	Callee *Symbol
	Args   []Expr
	Type   *types.Type
	Pos    Pos
}

func (e *CallExpr) ExprType() *types.Type { return e.Type }
func (e *CallExpr) ExprPos() Pos          { return e.Pos }
func (*CallExpr) exprNode()               {}

// GetValue reads a local variable or parameter.
type GetValue struct {
	Var *Variable
	Pos Pos
}

func (e *GetValue) ExprType() *types.Type {
	if e.Var == nil {
		return nil
	}
	return e.Var.Type
}
func (e *GetValue) ExprPos() Pos { return e.Pos }
func (*GetValue) exprNode()      {}

// BlockExpr evaluates Stmts in order, then Result, which is the block's value.
type BlockExpr struct {
	Stmts  []Stmt
	Result Expr
	Type   *types.Type
	Origin string // lowering that produced the block, empty for source blocks
	Pos    Pos
}

func (e *BlockExpr) ExprType() *types.Type { return e.Type }
func (e *BlockExpr) ExprPos() Pos          { return e.Pos }
func (*BlockExpr) exprNode()               {}

// ImplicitCast changes the static type of Operand without a runtime check.
type ImplicitCast struct {
	Operand Expr
	Type    *types.Type
	Pos     Pos
}

func (e *ImplicitCast) ExprType() *types.Type { return e.Type }
func (e *ImplicitCast) ExprPos() Pos          { return e.Pos }
func (*ImplicitCast) exprNode()               {}

// Op is a binary operator.
type Op int

const (
	OpEq Op = iota // ==
	OpNe           // !=
	OpAdd          // +
	OpLt           // <
)

// String returns the source spelling of the operator
func (op Op) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpAdd:
		return "+"
	case OpLt:
		return "<"
	default:
		return "?"
	}
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
	Type  *types.Type
	Pos   Pos
}

func (e *BinaryExpr) ExprType() *types.Type { return e.Type }
func (e *BinaryExpr) ExprPos() Pos          { return e.Pos }
func (*BinaryExpr) exprNode()               {}

// FieldAccess reads a field of Receiver.
type FieldAccess struct {
	Receiver Expr
	Field    string
	Type     *types.Type
	Pos      Pos
}

func (e *FieldAccess) ExprType() *types.Type { return e.Type }
func (e *FieldAccess) ExprPos() Pos          { return e.Pos }
func (*FieldAccess) exprNode()               {}

// IfExpr is a conditional expression with both branches.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Type *types.Type
	Pos  Pos
}

func (e *IfExpr) ExprType() *types.Type { return e.Type }
func (e *IfExpr) ExprPos() Pos          { return e.Pos }
func (*IfExpr) exprNode()               {}

// IntLit represents an integer literal.
type IntLit struct {
	Value int64
	Pos   Pos
}

func (e *IntLit) ExprType() *types.Type { return types.Int }
func (e *IntLit) ExprPos() Pos          { return e.Pos }
func (*IntLit) exprNode()               {}

// StringLit represents a string literal.
type StringLit struct {
	Value string
	Pos   Pos
}

func (e *StringLit) ExprType() *types.Type { return types.String }
func (e *StringLit) ExprPos() Pos          { return e.Pos }
func (*StringLit) exprNode()               {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value bool
	Pos   Pos
}

func (e *BoolLit) ExprType() *types.Type { return types.Boolean }
func (e *BoolLit) ExprPos() Pos          { return e.Pos }
func (*BoolLit) exprNode()               {}

// NullLit represents the null constant.
type NullLit struct {
	Type *types.Type // Nothing? unless the front end narrowed it
	Pos  Pos
}

func (e *NullLit) ExprType() *types.Type {
	if e.Type == nil {
		return types.NullableNothing
	}
	return e.Type
}
func (e *NullLit) ExprPos() Pos { return e.Pos }
func (*NullLit) exprNode()      {}
