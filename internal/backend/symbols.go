package backend

import (
	"github.com/lhaig/nullcheck/internal/ir"
	"github.com/lhaig/nullcheck/internal/types"
)

// Symbols holds the intrinsics the null-check lowering reads and emits.
type Symbols struct {
	// CheckNotNull is the compiler intrinsic emitted for `e!!`. Its call type
	// is the non-null type of the argument, so ReturnType is only a bound.
	CheckNotNull *ir.Symbol

	// CheckNotNullUnified is the runtime routine that throws
	// NullPointerException when its argument is null.
	CheckNotNullUnified *ir.Symbol

	// ThrowNpe is the legacy runtime routine that unconditionally throws
	// KotlinNullPointerException.
	ThrowNpe *ir.Symbol
}

// NewSymbols creates a fresh set of intrinsic symbols.
func NewSymbols() *Symbols {
	return &Symbols{
		CheckNotNull:        &ir.Symbol{Name: "CHECK_NOT_NULL", ReturnType: types.Any, Intrinsic: true},
		CheckNotNullUnified: &ir.Symbol{Name: "checkNotNull", ReturnType: types.Unit, Intrinsic: true},
		ThrowNpe:            &ir.Symbol{Name: "throwNpe", ReturnType: types.Nothing, Intrinsic: true},
	}
}
