package lower

import (
	"fmt"

	"github.com/lhaig/nullcheck/internal/ir"
)

// MalformedIntrinsicCallError reports a matched intrinsic call that does not
// have exactly one value argument. Such calls can only come from a broken
// earlier pass, so the lowering of the file is abandoned.
type MalformedIntrinsicCallError struct {
	Callee string
	Args   int
	Pos    ir.Pos
}

func (e *MalformedIntrinsicCallError) Error() string {
	return fmt.Sprintf("malformed call to intrinsic %s at %d-%d: expected 1 value argument, got %d",
		e.Callee, e.Pos.Start, e.Pos.End, e.Args)
}

// FileError attaches the file and phase to a lowering failure.
type FileError struct {
	File  string
	Phase string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: phase %s: %v", e.File, e.Phase, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
