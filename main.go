// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kanso-lang/alethe/internal/checker"
	"github.com/kanso-lang/alethe/internal/lia"
	"github.com/kanso-lang/alethe/internal/parser"
	"github.com/kanso-lang/alethe/internal/term"
)

func main() {
	strict := false
	useCvc5 := false
	args := os.Args[1:]
	var positional []string
	for _, a := range args {
		switch a {
		case "--strict":
			strict = true
		case "--check-lia-generic":
			useCvc5 = true
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) < 2 {
		fmt.Println("Usage: alethe [--strict] [--check-lia-generic] <problem.smt2> <proof.alethe>")
		os.Exit(1)
	}

	problemPath, proofPath := positional[0], positional[1]

	problemSrc, err := os.ReadFile(problemPath)
	if err != nil {
		color.Red("Failed to read problem file: %s", err)
		os.Exit(1)
	}
	proofSrc, err := os.ReadFile(proofPath)
	if err != nil {
		color.Red("Failed to read proof file: %s", err)
		os.Exit(1)
	}

	pool := term.NewPool()
	prelude, premises, env, err := parser.ParseProblem(pool, problemPath, string(problemSrc))
	if err != nil {
		reportParseError(string(problemSrc), err)
		os.Exit(1)
	}

	proofTree, err := parser.ParseProof(pool, env, premises, proofPath, string(proofSrc))
	if err != nil {
		reportParseError(string(proofSrc), err)
		os.Exit(1)
	}

	cfg := checker.Config{
		Strict:                   strict,
		SkipUnknownRules:         !strict,
		CheckLiaGenericUsingCvc5: useCvc5,
		Prelude:                  prelude,
	}
	if useCvc5 {
		cfg.LiaBridge = lia.NewBridge(&lia.Cvc5Solver{})
	}
	c := checker.New(pool, cfg)

	if err := c.Check(proofTree); err != nil {
		var bridgeErr *checker.LiaGenericRequiresBridgeError
		if errors.As(err, &bridgeErr) {
			color.Yellow("note: step %q could not be checked through the external lia_generic bridge (see internal/lia)", bridgeErr.StepID)
		}
		color.Red("❌ Proof rejected: %s", err)
		os.Exit(1)
	}

	color.Green("✅ Proof accepted for %s", proofPath)
}

// reportParseError prints a friendly caret-style parse error message,
// mirroring the teacher's reportParseError (main.go).
func reportParseError(src string, err error) {
	pe, ok := err.(*parser.ParseError)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	lines := strings.Split(src, "\n")
	if pe.Pos.Line <= 0 || pe.Pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pe.Pos.Line-1]
	caret := strings.Repeat(" ", pe.Pos.Column-1) + "^"

	color.Red("❌ Syntax error in %s at line %d, column %d:", pe.Pos.Filename, pe.Pos.Line, pe.Pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message)
}
