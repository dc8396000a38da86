package lower

import (
	"fmt"

	"github.com/lhaig/nullcheck/internal/ir"
)

// callVisitor decides what replaces a call whose arguments have already been
// transformed. Returning the call itself leaves it in place.
type callVisitor func(call *ir.CallExpr, scope *ir.Scope) (ir.Expr, error)

// transformer rewrites a file in a single depth-first pass, storing each
// replacement back into its parent's slot. The innermost scope is passed down
// explicitly. Nodes returned by visitCall are not visited again.
type transformer struct {
	visitCall callVisitor
}

func (t *transformer) file(f *ir.File) error {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ir.Function:
			scope := ir.NewDeclScope(d.Name)
			for _, p := range d.Params {
				// duplicates are reported by ir.Validate
				_ = scope.Define(p)
			}
			if err := t.stmts(d.Body, scope); err != nil {
				return fmt.Errorf("function %s: %w", d.Name, err)
			}

		case *ir.Property:
			if d.Initializer == nil {
				continue
			}
			init, err := t.expr(d.Initializer, ir.NewDeclScope(d.Name))
			if err != nil {
				return fmt.Errorf("property %s: %w", d.Name, err)
			}
			d.Initializer = init

		default:
			return fmt.Errorf("unknown declaration type %T", decl)
		}
	}
	return nil
}

func (t *transformer) stmts(stmts []ir.Stmt, scope *ir.Scope) error {
	for _, s := range stmts {
		if err := t.stmt(s, scope); err != nil {
			return err
		}
	}
	return nil
}

func (t *transformer) stmt(stmt ir.Stmt, scope *ir.Scope) error {
	var err error

	switch s := stmt.(type) {
	case *ir.VarDecl:
		if s.Init, err = t.expr(s.Init, scope); err != nil {
			return err
		}
		if s.Var != nil {
			_ = scope.Define(s.Var)
		}

	case *ir.AssignStmt:
		s.Value, err = t.expr(s.Value, scope)

	case *ir.ExprStmt:
		s.Expr, err = t.expr(s.Expr, scope)

	case *ir.IfStmt:
		if s.Cond, err = t.expr(s.Cond, scope); err != nil {
			return err
		}
		if err = t.stmts(s.Then, scope.Child()); err != nil {
			return err
		}
		err = t.stmts(s.Else, scope.Child())

	case *ir.WhileStmt:
		if s.Cond, err = t.expr(s.Cond, scope); err != nil {
			return err
		}
		err = t.stmts(s.Body, scope.Child())

	case *ir.ReturnStmt:
		if s.Value != nil {
			s.Value, err = t.expr(s.Value, scope)
		}

	default:
		return fmt.Errorf("unknown statement type %T", stmt)
	}

	return err
}

func (t *transformer) expr(expr ir.Expr, scope *ir.Scope) (ir.Expr, error) {
	var err error

	switch e := expr.(type) {
	case nil:
		return nil, nil

	case *ir.CallExpr:
		for i, arg := range e.Args {
			if e.Args[i], err = t.expr(arg, scope); err != nil {
				return nil, err
			}
		}
		return t.visitCall(e, scope)

	case *ir.BlockExpr:
		inner := scope.Child()
		if err = t.stmts(e.Stmts, inner); err != nil {
			return nil, err
		}
		if e.Result, err = t.expr(e.Result, inner); err != nil {
			return nil, err
		}

	case *ir.ImplicitCast:
		if e.Operand, err = t.expr(e.Operand, scope); err != nil {
			return nil, err
		}

	case *ir.BinaryExpr:
		if e.Left, err = t.expr(e.Left, scope); err != nil {
			return nil, err
		}
		if e.Right, err = t.expr(e.Right, scope); err != nil {
			return nil, err
		}

	case *ir.FieldAccess:
		if e.Receiver, err = t.expr(e.Receiver, scope); err != nil {
			return nil, err
		}

	case *ir.IfExpr:
		if e.Cond, err = t.expr(e.Cond, scope); err != nil {
			return nil, err
		}
		if e.Then, err = t.expr(e.Then, scope); err != nil {
			return nil, err
		}
		if e.Else, err = t.expr(e.Else, scope); err != nil {
			return nil, err
		}

	case *ir.GetValue, *ir.IntLit, *ir.StringLit, *ir.BoolLit, *ir.NullLit:
		// leaves

	default:
		return nil, fmt.Errorf("unknown expression type %T", expr)
	}

	return expr, nil
}
