// Package checklog is the checker's small diagnostics helper: a thin
// wrapper over the standard log package plus fatih/color, matching the
// teacher's own CLI diagnostics convention (main.go's color.Red/color.Green)
// and standing in for carcara's log::warn! call sites
// (_examples/original_source/alethe-proof-checker/src/checker/lia_generic.rs:37,
// .../rules/linear_arithmetic.rs:364).
package checklog

import (
	"log"

	"github.com/fatih/color"
)

// Warnf logs a yellow warning to stderr, for conditions the checker
// tolerates rather than fails on (an unrecognized rule under
// SkipUnknownRules, a lia_generic step falling back after a solver
// failure).
func Warnf(format string, args ...interface{}) {
	log.Print(color.YellowString("warning: "+format, args...))
}
