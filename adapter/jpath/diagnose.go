package jpath

import (
	"errors"
	"fmt"

	"github.com/attrkit/jsonmap/domain"
)

// Diagnose compiles text and reports the outcome as a string. Valid text
// yields "<bytes consumed>:<canonical form>", where the canonical form
// recompiles to an equivalent expression. Malformed text yields
// "<offset>:<message>". Malformed input is a normal, reportable outcome;
// Diagnose never fails.
func Diagnose(compiler domain.Compiler, text string) string {
	expr, consumed, err := compiler.Compile(text)
	if err != nil {
		var serr domain.ErrSyntax
		if errors.As(err, &serr) {
			return fmt.Sprintf("%d:%s", serr.Offset, serr.Message)
		}
		return fmt.Sprintf("0:%s", err)
	}
	return fmt.Sprintf("%d:%s", consumed, expr)
}
