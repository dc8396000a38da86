package ir

import (
	"strings"
	"testing"

	"github.com/lhaig/nullcheck/internal/types"
)

func containsError(errors []string, substr string) bool {
	for _, err := range errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateValidFile(t *testing.T) {
	x := &Variable{Name: "x", Type: types.MakeNullable(types.String)}
	y := &Variable{Name: "y", Type: types.MakeNullable(types.String)}
	file := &File{
		Name: "test.kt",
		Decls: []Decl{
			&Function{
				Name:       "main",
				Params:     []*Variable{x},
				ReturnType: types.Unit,
				Body: []Stmt{
					&VarDecl{Var: y, Init: &GetValue{Var: x}},
					&AssignStmt{Var: y, Value: &NullLit{}},
					&WhileStmt{Cond: &BoolLit{Value: false}, Body: []Stmt{&ExprStmt{Expr: &GetValue{Var: y}}}},
					&ReturnStmt{},
				},
			},
		},
	}

	errors := Validate(file)
	if len(errors) > 0 {
		t.Errorf("expected no errors, got: %v", errors)
	}
}

func TestValidateMissingReturnType(t *testing.T) {
	file := &File{
		Decls: []Decl{
			&Function{Name: "main", ReturnType: nil},
		},
	}

	errors := Validate(file)
	found := false
	for _, err := range errors {
		if err == "function main has nil ReturnType" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected error about nil ReturnType, got: %v", errors)
	}
}

func TestValidateUndeclaredVariable(t *testing.T) {
	ghost := &Variable{Name: "ghost", Type: types.Int}
	file := &File{
		Decls: []Decl{
			&Function{
				Name:       "main",
				ReturnType: types.Int,
				Body:       []Stmt{&ReturnStmt{Value: &GetValue{Var: ghost}}},
			},
		},
	}

	errors := Validate(file)
	if !containsError(errors, `GetValue reads undeclared variable "ghost"`) {
		t.Errorf("expected undeclared variable error, got: %v", errors)
	}
}

func TestValidateBlockLocalsDoNotEscape(t *testing.T) {
	tmp := &Variable{Name: "tmp0", Type: types.Int, Temporary: true}
	file := &File{
		Decls: []Decl{
			&Function{
				Name:       "main",
				ReturnType: types.Int,
				Body: []Stmt{
					&ExprStmt{Expr: &BlockExpr{
						Stmts:  []Stmt{&VarDecl{Var: tmp, Init: &IntLit{Value: 1}}},
						Result: &GetValue{Var: tmp},
						Type:   types.Int,
					}},
					&ReturnStmt{Value: &GetValue{Var: tmp}},
				},
			},
		},
	}

	errors := Validate(file)
	if len(errors) != 1 {
		t.Fatalf("expected exactly 1 error, got: %v", errors)
	}
	if !strings.Contains(errors[0], "statement 1") {
		t.Errorf("expected the error on the return statement, got: %s", errors[0])
	}
}

func TestValidateBlockTypeMismatch(t *testing.T) {
	file := &File{
		Decls: []Decl{
			&Property{
				Name: "p",
				Type: types.String,
				Initializer: &BlockExpr{
					Result: &IntLit{Value: 1},
					Type:   types.String,
				},
			},
		},
	}

	errors := Validate(file)
	if !containsError(errors, "BlockExpr type String does not match result type Int") {
		t.Errorf("expected block type mismatch, got: %v", errors)
	}
}

func TestValidateNilChildren(t *testing.T) {
	file := &File{
		Decls: []Decl{
			&Function{
				Name:       "main",
				ReturnType: types.Unit,
				Body: []Stmt{
					&ExprStmt{Expr: nil},
					&ExprStmt{Expr: &CallExpr{Callee: nil, Args: []Expr{nil}}},
					&IfStmt{Cond: nil},
				},
			},
		},
	}

	errors := Validate(file)
	for _, want := range []string{
		"ExprStmt has nil Expr",
		"CallExpr has nil Callee",
		"CallExpr has nil Type",
		"(arg 0): nil expression",
		"IfStmt has nil Cond",
	} {
		if !containsError(errors, want) {
			t.Errorf("expected error containing %q, got: %v", want, errors)
		}
	}
}
