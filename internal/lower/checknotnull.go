package lower

import (
	"github.com/lhaig/nullcheck/internal/backend"
	"github.com/lhaig/nullcheck/internal/ir"
)

const checkNotNullOrigin = "CheckNotNullLowering"

// CheckNotNullLowering replaces calls to the CHECK_NOT_NULL intrinsic, which
// the front end emits for `e!!`, with an explicit null check followed by an
// implicit cast of the checked value to the call's type.
type CheckNotNullLowering struct {
	symbols *backend.Symbols
	unified bool // fixed for the lifetime of the pass
}

// NewCheckNotNullLowering creates the pass. The unified-check setting is read
// from ctx once, here.
func NewCheckNotNullLowering(ctx *backend.Context) *CheckNotNullLowering {
	return &CheckNotNullLowering{
		symbols: ctx.Symbols,
		unified: ctx.UnifiedNullChecks,
	}
}

// Lower rewrites file in place.
func (p *CheckNotNullLowering) Lower(file *ir.File) error {
	t := &transformer{visitCall: p.visitCall}
	return t.file(file)
}

func (p *CheckNotNullLowering) visitCall(call *ir.CallExpr, scope *ir.Scope) (ir.Expr, error) {
	if call.Callee != p.symbols.CheckNotNull {
		return call, nil
	}
	block, err := rewriteCheckNotNull(call, scope, p.symbols, p.unified)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// rewriteCheckNotNull lowers one CHECK_NOT_NULL call whose argument has
// already been lowered. The argument is evaluated exactly once in the result.
//
// Unified:  { val tmp = arg; checkNotNull(tmp); tmp as T }
// Legacy:   { val tmp = arg; if (tmp == null) throwNpe(); tmp as T }
//
// When arg is already a variable read no temporary is introduced.
func rewriteCheckNotNull(call *ir.CallExpr, scope *ir.Scope, symbols *backend.Symbols, unified bool) (*ir.BlockExpr, error) {
	if len(call.Args) != 1 || call.Args[0] == nil {
		return nil, malformed(call)
	}
	value := call.Args[0]

	b := ir.NewBlockBuilder(scope.Child(), call.Pos, checkNotNullOrigin)

	// A check on a variable must keep reading that variable: later redundant
	// null check elimination remembers that it is non-null once this succeeds.
	var arg *ir.Variable
	if get, ok := value.(*ir.GetValue); ok {
		if get.Var == nil {
			return nil, malformed(call)
		}
		arg = get.Var
	} else {
		arg = b.Temporary(value)
	}

	// Language version 1.4 and later call checkNotNull, which throws
	// NullPointerException. Older versions inline the test and call throwNpe,
	// which throws KotlinNullPointerException.
	if unified {
		b.AddExpr(b.Call(symbols.CheckNotNullUnified, b.Get(arg)))
	} else {
		b.Add(b.IfThen(b.EqualsNull(b.Get(arg)), b.Call(symbols.ThrowNpe)))
	}

	return b.Block(b.ImplicitCast(b.Get(arg), call.Type)), nil
}

func malformed(call *ir.CallExpr) *MalformedIntrinsicCallError {
	return &MalformedIntrinsicCallError{
		Callee: call.Callee.Name,
		Args:   len(call.Args),
		Pos:    call.Pos,
	}
}
