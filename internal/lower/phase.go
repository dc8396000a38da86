package lower

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lhaig/nullcheck/internal/backend"
	"github.com/lhaig/nullcheck/internal/diagnostic"
	"github.com/lhaig/nullcheck/internal/ir"
)

// FileLoweringPass rewrites one compilation unit in place.
type FileLoweringPass interface {
	Lower(file *ir.File) error
}

// Phase is a named pass that runs once per file.
type Phase struct {
	Name        string
	Description string
	New         func(ctx *backend.Context) FileLoweringPass
}

// CheckNotNullPhase lowers `!!` assertions.
var CheckNotNullPhase = Phase{
	Name:        "CheckNotNullLowering",
	Description: `Lower calls to the CHECK_NOT_NULL intrinsic, which are generated for "!!" expressions.`,
	New: func(ctx *backend.Context) FileLoweringPass {
		return NewCheckNotNullLowering(ctx)
	},
}

// Pipeline runs a sequence of phases over every file of a program.
// Files are independent: each is owned by one goroutine and only the
// read-only backend.Context is shared.
type Pipeline struct {
	Context     *backend.Context
	Phases      []Phase
	Parallelism int       // max files lowered at once; <= 0 means unlimited
	Trace       io.Writer // optional, one line per phase and file

	mu sync.Mutex // guards Trace
}

// NewPipeline creates a pipeline running phases in order.
func NewPipeline(ctx *backend.Context, phases ...Phase) *Pipeline {
	return &Pipeline{Context: ctx, Phases: phases}
}

// RunFile runs every phase over file sequentially. The first failing phase
// aborts the file and is returned as a *FileError.
func (p *Pipeline) RunFile(file *ir.File) error {
	for _, ph := range p.Phases {
		p.tracef("phase %s: %s\n", ph.Name, fileLabel(file))
		if err := ph.New(p.Context).Lower(file); err != nil {
			return &FileError{File: fileLabel(file), Phase: ph.Name, Err: err}
		}
	}
	return nil
}

// Run lowers every file of prog concurrently. The first failure cancels the
// files that have not started yet and is returned.
func (p *Pipeline) Run(ctx context.Context, prog *ir.Program) error {
	g, ctx := errgroup.WithContext(ctx)
	if p.Parallelism > 0 {
		g.SetLimit(p.Parallelism)
	}

	for _, file := range prog.Files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.RunFile(file)
		})
	}

	return g.Wait()
}

func (p *Pipeline) tracef(format string, args ...interface{}) {
	if p.Trace == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.Trace, format, args...)
}

func fileLabel(f *ir.File) string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// Diagnose converts a lowering error into diagnostics. A nil error yields an
// empty collection.
func Diagnose(err error) *diagnostic.Diagnostics {
	diag := diagnostic.New()
	if err == nil {
		return diag
	}

	file := ""
	var fe *FileError
	if errors.As(err, &fe) {
		file = fe.File
	}

	var me *MalformedIntrinsicCallError
	if errors.As(err, &me) {
		diag.ErrorWithHint(file, me.Pos.Start, me.Pos.End, me.Error(),
			"the call was produced by an earlier compiler pass; this is a compiler bug")
		return diag
	}

	diag.ErrorfInFile(file, -1, -1, "%s", err)
	return diag
}
