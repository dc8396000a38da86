package ir

import (
	"github.com/lhaig/nullcheck/internal/types"
)

// BlockBuilder assembles a BlockExpr inside a scope. Every node it creates
// carries the builder's source range.
type BlockBuilder struct {
	scope  *Scope
	pos    Pos
	origin string
	stmts  []Stmt
}

// NewBlockBuilder creates a builder whose temporaries are defined in scope.
func NewBlockBuilder(scope *Scope, pos Pos, origin string) *BlockBuilder {
	return &BlockBuilder{scope: scope, pos: pos, origin: origin}
}

// Temporary declares a fresh temporary initialized from value and returns it.
func (b *BlockBuilder) Temporary(value Expr) *Variable {
	v := b.scope.FreshTemporary(value.ExprType())
	b.stmts = append(b.stmts, &VarDecl{Var: v, Init: value})
	return v
}

// Add appends a statement to the block.
func (b *BlockBuilder) Add(stmt Stmt) {
	b.stmts = append(b.stmts, stmt)
}

// AddExpr appends an expression evaluated for its side effects.
func (b *BlockBuilder) AddExpr(e Expr) {
	b.stmts = append(b.stmts, &ExprStmt{Expr: e})
}

// Get reads v.
func (b *BlockBuilder) Get(v *Variable) *GetValue {
	return &GetValue{Var: v, Pos: b.pos}
}

// Call builds a call to callee with the given arguments.
func (b *BlockBuilder) Call(callee *Symbol, args ...Expr) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, Type: callee.ReturnType, Pos: b.pos}
}

// IfThen builds an if statement with no else branch.
func (b *BlockBuilder) IfThen(cond Expr, then Expr) *IfStmt {
	return &IfStmt{Cond: cond, Then: []Stmt{&ExprStmt{Expr: then}}, Pos: b.pos}
}

// EqualsNull builds the test e == null.
func (b *BlockBuilder) EqualsNull(e Expr) *BinaryExpr {
	return &BinaryExpr{
		Op:    OpEq,
		Left:  e,
		Right: &NullLit{Pos: b.pos},
		Type:  types.Boolean,
		Pos:   b.pos,
	}
}

// ImplicitCast builds an unchecked cast of e to t.
func (b *BlockBuilder) ImplicitCast(e Expr, t *types.Type) *ImplicitCast {
	return &ImplicitCast{Operand: e, Type: t, Pos: b.pos}
}

// Block finishes the block with result as its value. The block's type is the
// result's type.
func (b *BlockBuilder) Block(result Expr) *BlockExpr {
	return &BlockExpr{
		Stmts:  b.stmts,
		Result: result,
		Type:   result.ExprType(),
		Origin: b.origin,
		Pos:    b.pos,
	}
}
