// Package schema validates pass documents against the envelope contract
// of the compiler_pass_v1 schema using an embedded CUE definition.
//
// Validation here is coarser than decoding with the pass package: it
// checks the hybrid-tagged envelope (the five pass_class discriminants,
// the same-named payload fields, recursive loop shapes) but deliberately
// leaves the standard-pass field sets open, since that catalog grows
// independently of this library. Use it to triage documents from
// untrusted producers before committing to a full decode.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed pass.cue
var schemaSrc string

var (
	compileOnce sync.Once
	passSchema  cue.Value
	compileErr  error
)

// compiled returns the #Pass definition from the embedded schema,
// compiling it on first use. The compiled value is immutable and shared
// across calls.
func compiled() (cue.Value, error) {
	compileOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(schemaSrc)
		if err := v.Err(); err != nil {
			compileErr = formatCUEError(err)
			return
		}
		passSchema = v.LookupPath(cue.ParsePath("#Pass"))
		if err := passSchema.Err(); err != nil {
			compileErr = formatCUEError(err)
		}
	})
	return passSchema, compileErr
}

// Validate checks an encoded pass document against the envelope schema.
// A nil return means the envelope is well-formed; it does not guarantee
// the per-variant payload fields are, which is the decoder's job.
func Validate(data []byte) error {
	sch, err := compiled()
	if err != nil {
		return err
	}

	expr, err := cuejson.Extract("document.json", data)
	if err != nil {
		return formatCUEError(err)
	}
	doc := sch.Context().BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return formatCUEError(err)
	}

	unified := sch.Unify(doc)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// ValidationError reports a schema violation with source position when
// CUE can attribute one.
type ValidationError struct {
	Message string
	Pos     token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &ValidationError{
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return &ValidationError{Message: firstErr.Error()}
}
