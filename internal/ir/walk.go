package ir

// Inspect visits every expression reachable from node depth-first, parents
// before children. If fn returns false the children of that expression are
// skipped. Inspect never modifies the tree.
func Inspect(node interface{}, fn func(Expr) bool) {
	switch n := node.(type) {
	case *Program:
		for _, f := range n.Files {
			Inspect(f, fn)
		}
	case *File:
		for _, d := range n.Decls {
			Inspect(d, fn)
		}
	case *Function:
		inspectStmts(n.Body, fn)
	case *Property:
		if n.Initializer != nil {
			inspectExpr(n.Initializer, fn)
		}
	case Stmt:
		inspectStmt(n, fn)
	case Expr:
		inspectExpr(n, fn)
	}
}

func inspectStmts(stmts []Stmt, fn func(Expr) bool) {
	for _, s := range stmts {
		inspectStmt(s, fn)
	}
}

func inspectStmt(s Stmt, fn func(Expr) bool) {
	switch n := s.(type) {
	case *VarDecl:
		inspectExpr(n.Init, fn)
	case *AssignStmt:
		inspectExpr(n.Value, fn)
	case *ExprStmt:
		inspectExpr(n.Expr, fn)
	case *IfStmt:
		inspectExpr(n.Cond, fn)
		inspectStmts(n.Then, fn)
		inspectStmts(n.Else, fn)
	case *WhileStmt:
		inspectExpr(n.Cond, fn)
		inspectStmts(n.Body, fn)
	case *ReturnStmt:
		inspectExpr(n.Value, fn)
	}
}

func inspectExpr(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *CallExpr:
		for _, a := range n.Args {
			inspectExpr(a, fn)
		}
	case *BlockExpr:
		inspectStmts(n.Stmts, fn)
		inspectExpr(n.Result, fn)
	case *ImplicitCast:
		inspectExpr(n.Operand, fn)
	case *BinaryExpr:
		inspectExpr(n.Left, fn)
		inspectExpr(n.Right, fn)
	case *FieldAccess:
		inspectExpr(n.Receiver, fn)
	case *IfExpr:
		inspectExpr(n.Cond, fn)
		inspectExpr(n.Then, fn)
		inspectExpr(n.Else, fn)
	}
}

// FindCalls returns every call to callee reachable from node, in visit order.
func FindCalls(node interface{}, callee *Symbol) []*CallExpr {
	var calls []*CallExpr
	Inspect(node, func(e Expr) bool {
		if c, ok := e.(*CallExpr); ok && c.Callee == callee {
			calls = append(calls, c)
		}
		return true
	})
	return calls
}

// CountCalls returns the number of calls to callee reachable from node.
func CountCalls(node interface{}, callee *Symbol) int {
	return len(FindCalls(node, callee))
}
