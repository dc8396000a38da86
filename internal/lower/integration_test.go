package lower_test

import (
	"context"
	"testing"

	"github.com/lhaig/nullcheck/internal/backend"
	"github.com/lhaig/nullcheck/internal/ir"
	"github.com/lhaig/nullcheck/internal/lower"
	"github.com/lhaig/nullcheck/internal/types"
)

// buildGreeter builds:
//
//	val default: String = lookup("greeting")!!
//	fun greet(name: String?): String {
//	    val n = name!!
//	    return n + user(n)!!.first!!
//	}
func buildGreeter(syms *backend.Symbols) *ir.File {
	nullableString := types.MakeNullable(types.String)
	user := types.Named("User")
	lookup := &ir.Symbol{Name: "lookup", ReturnType: nullableString}
	findUser := &ir.Symbol{Name: "user", ReturnType: types.MakeNullable(user)}
	name := &ir.Variable{Name: "name", Type: nullableString}
	n := &ir.Variable{Name: "n", Type: types.String}

	assert := func(arg ir.Expr, t *types.Type, start int) *ir.CallExpr {
		return &ir.CallExpr{Callee: syms.CheckNotNull, Args: []ir.Expr{arg}, Type: t, Pos: ir.Pos{Start: start, End: start + 2}}
	}

	return &ir.File{
		Name: "greeter.kt",
		Path: "src/greeter.kt",
		Decls: []ir.Decl{
			&ir.Property{
				Name:        "default",
				Type:        types.String,
				Initializer: assert(&ir.CallExpr{Callee: lookup, Args: []ir.Expr{&ir.StringLit{Value: "greeting"}}, Type: nullableString}, types.String, 10),
			},
			&ir.Function{
				Name:       "greet",
				Params:     []*ir.Variable{name},
				ReturnType: types.String,
				Body: []ir.Stmt{
					&ir.VarDecl{Var: n, Init: assert(&ir.GetValue{Var: name}, types.String, 50)},
					&ir.ReturnStmt{Value: &ir.BinaryExpr{
						Op:   ir.OpAdd,
						Left: &ir.GetValue{Var: n},
						Right: assert(&ir.FieldAccess{
							Receiver: assert(&ir.CallExpr{Callee: findUser, Args: []ir.Expr{&ir.GetValue{Var: n}}, Type: types.MakeNullable(user)}, user, 70),
							Field:    "first",
							Type:     nullableString,
						}, types.String, 80),
						Type: types.String,
					}},
				},
			},
		},
	}
}

func TestLowerGreeter(t *testing.T) {
	tests := []struct {
		name string
		cfg  backend.Config
		want string
	}{
		{
			name: "unified",
			cfg:  backend.Config{LanguageVersion: "1.4"},
			want: `val default: String = { val tmp0_default = lookup("greeting"); checkNotNull(tmp0_default); tmp0_default as String }
fun greet(name: String?): String { val n = { checkNotNull(name); name as String }; return n + { val tmp1_greet = { val tmp0_greet = user(n); checkNotNull(tmp0_greet); tmp0_greet as User }.first; checkNotNull(tmp1_greet); tmp1_greet as String } }`,
		},
		{
			name: "legacy",
			cfg:  backend.Config{LanguageVersion: "1.3"},
			want: `val default: String = { val tmp0_default = lookup("greeting"); if (tmp0_default == null) throwNpe(); tmp0_default as String }
fun greet(name: String?): String { val n = { if (name == null) throwNpe(); name as String }; return n + { val tmp1_greet = { val tmp0_greet = user(n); if (tmp0_greet == null) throwNpe(); tmp0_greet as User }.first; if (tmp1_greet == null) throwNpe(); tmp1_greet as String } }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := backend.NewContext(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			file := buildGreeter(ctx.Symbols)
			prog := &ir.Program{Files: []*ir.File{file}}

			if err := lower.NewPipeline(ctx, lower.CheckNotNullPhase).Run(context.Background(), prog); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if errs := ir.Validate(file); len(errs) > 0 {
				t.Fatalf("IR validation errors: %v", errs)
			}
			if got := ir.Dump(file); got != tt.want {
				t.Errorf("unexpected output:\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}
