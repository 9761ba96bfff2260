package cli

import (
	"errors"

	"github.com/notesai/notesai-cli/internal/client/validation"
)

// printErr reports a handler error to the user. Validation failures are
// expanded to one line per field so the user sees every violated rule at
// once; anything else is printed as-is.
func printErr(err error) {
	var fieldErrs *validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs.Errors {
			printlnFn(fe.Message)
		}
		return
	}
	printlnFn("Error:", err.Error())
}
