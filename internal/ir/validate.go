package ir

import (
	"fmt"
)

// Validate checks an IR file for structural correctness and returns a list of
// error messages. An empty slice indicates the file is valid.
func Validate(file *File) []string {
	var errors []string

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *Function:
			context := fmt.Sprintf("function %s", d.Name)
			if d.ReturnType == nil {
				errors = append(errors, fmt.Sprintf("function %s has nil ReturnType", d.Name))
			}
			scope := NewDeclScope(d.Name)
			for _, p := range d.Params {
				if err := scope.Define(p); err != nil {
					errors = append(errors, fmt.Sprintf("%s: %s", context, err))
				}
			}
			errors = append(errors, validateStmts(d.Body, scope, context)...)

		case *Property:
			context := fmt.Sprintf("property %s", d.Name)
			if d.Type == nil {
				errors = append(errors, fmt.Sprintf("property %s has nil Type", d.Name))
			}
			if d.Initializer != nil {
				errors = append(errors, validateExpr(d.Initializer, NewDeclScope(d.Name), context)...)
			}

		default:
			errors = append(errors, fmt.Sprintf("unknown declaration type %T", decl))
		}
	}

	return errors
}

// validateStmts checks statements in order, defining locals as they appear.
func validateStmts(stmts []Stmt, scope *Scope, context string) []string {
	var errors []string
	for i, stmt := range stmts {
		errors = append(errors, validateStmt(stmt, scope, fmt.Sprintf("%s statement %d", context, i))...)
	}
	return errors
}

// validateStmt checks a single statement.
func validateStmt(stmt Stmt, scope *Scope, context string) []string {
	var errors []string

	switch s := stmt.(type) {
	case *VarDecl:
		if s.Init == nil {
			errors = append(errors, fmt.Sprintf("%s: VarDecl has nil Init", context))
		} else {
			errors = append(errors, validateExpr(s.Init, scope, context)...)
		}
		if s.Var == nil {
			errors = append(errors, fmt.Sprintf("%s: VarDecl has nil Var", context))
			break
		}
		if s.Var.Type == nil {
			errors = append(errors, fmt.Sprintf("%s: variable %q has nil Type", context, s.Var.Name))
		}
		if err := scope.Define(s.Var); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %s", context, err))
		}

	case *AssignStmt:
		if !scope.Visible(s.Var) {
			errors = append(errors, fmt.Sprintf("%s: AssignStmt writes undeclared variable %s", context, varName(s.Var)))
		}
		if s.Value == nil {
			errors = append(errors, fmt.Sprintf("%s: AssignStmt has nil Value", context))
		} else {
			errors = append(errors, validateExpr(s.Value, scope, context)...)
		}

	case *ExprStmt:
		if s.Expr == nil {
			errors = append(errors, fmt.Sprintf("%s: ExprStmt has nil Expr", context))
		} else {
			errors = append(errors, validateExpr(s.Expr, scope, context)...)
		}

	case *IfStmt:
		if s.Cond == nil {
			errors = append(errors, fmt.Sprintf("%s: IfStmt has nil Cond", context))
		} else {
			errors = append(errors, validateExpr(s.Cond, scope, context)...)
		}
		errors = append(errors, validateStmts(s.Then, scope.Child(), fmt.Sprintf("%s (then)", context))...)
		errors = append(errors, validateStmts(s.Else, scope.Child(), fmt.Sprintf("%s (else)", context))...)

	case *WhileStmt:
		if s.Cond == nil {
			errors = append(errors, fmt.Sprintf("%s: WhileStmt has nil Cond", context))
		} else {
			errors = append(errors, validateExpr(s.Cond, scope, context)...)
		}
		errors = append(errors, validateStmts(s.Body, scope.Child(), fmt.Sprintf("%s (while body)", context))...)

	case *ReturnStmt:
		// ReturnStmt.Value can be nil for Unit returns
		if s.Value != nil {
			errors = append(errors, validateExpr(s.Value, scope, context)...)
		}

	default:
		errors = append(errors, fmt.Sprintf("%s: unknown statement type %T", context, stmt))
	}

	return errors
}

// validateExpr checks an expression for validity.
func validateExpr(expr Expr, scope *Scope, context string) []string {
	var errors []string

	if expr == nil {
		errors = append(errors, fmt.Sprintf("%s: nil expression", context))
		return errors
	}

	switch e := expr.(type) {
	case *CallExpr:
		if e.Callee == nil {
			errors = append(errors, fmt.Sprintf("%s: CallExpr has nil Callee", context))
		}
		if e.Type == nil {
			errors = append(errors, fmt.Sprintf("%s: CallExpr has nil Type", context))
		}
		for i, arg := range e.Args {
			errors = append(errors, validateExpr(arg, scope, fmt.Sprintf("%s (arg %d)", context, i))...)
		}

	case *GetValue:
		if !scope.Visible(e.Var) {
			errors = append(errors, fmt.Sprintf("%s: GetValue reads undeclared variable %s", context, varName(e.Var)))
		}

	case *BlockExpr:
		inner := scope.Child()
		errors = append(errors, validateStmts(e.Stmts, inner, fmt.Sprintf("%s (block)", context))...)
		if e.Result == nil {
			errors = append(errors, fmt.Sprintf("%s: BlockExpr has nil Result", context))
			break
		}
		errors = append(errors, validateExpr(e.Result, inner, context)...)
		if !e.Type.Equal(e.Result.ExprType()) {
			errors = append(errors, fmt.Sprintf("%s: BlockExpr type %s does not match result type %s",
				context, e.Type, e.Result.ExprType()))
		}

	case *ImplicitCast:
		if e.Type == nil {
			errors = append(errors, fmt.Sprintf("%s: ImplicitCast has nil Type", context))
		}
		errors = append(errors, validateExpr(e.Operand, scope, context)...)

	case *BinaryExpr:
		errors = append(errors, validateExpr(e.Left, scope, context)...)
		errors = append(errors, validateExpr(e.Right, scope, context)...)

	case *FieldAccess:
		errors = append(errors, validateExpr(e.Receiver, scope, context)...)

	case *IfExpr:
		errors = append(errors, validateExpr(e.Cond, scope, context)...)
		errors = append(errors, validateExpr(e.Then, scope, context)...)
		errors = append(errors, validateExpr(e.Else, scope, context)...)

	case *IntLit, *StringLit, *BoolLit, *NullLit:
		// No validation needed for leaf nodes

	default:
		errors = append(errors, fmt.Sprintf("%s: unknown expression type %T", context, expr))
	}

	return errors
}

func varName(v *Variable) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", v.Name)
}
