// Command glox runs Lox programs: `glox script.lox` executes a file,
// `glox` with no argument starts the interactive prompt. A file run exits
// 65 after a scan/parse error and 70 after a runtime error; the prompt
// keeps going, carrying its global bindings from line to line.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	lox "github.com/Dipoolx2/glox"
)

const (
	appName     = "glox"
	historyFile = ".glox_history"
	prompt      = "> "
)

var (
	dumpAST = flag.Bool("ast", false, "print the parsed AST instead of executing")
	explain = flag.Bool("explain", false, "append caret snippets to prompt diagnostics")
)

var errColor = color.New(color.FgRed)

// errorWriter tints diagnostic output red. The color package turns itself
// off when stderr is not a terminal, so redirected output stays plain.
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	errColor.Fprint(os.Stderr, string(p))
	return len(p), nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	switch args := flag.Args(); len(args) {
	case 0:
		os.Exit(runPrompt())
	case 1:
		os.Exit(runFile(args[0]))
	default:
		usage()
		os.Exit(64)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `glox %s

Usage:
  %s [flags] [script]

With a script path the file is executed; without one an interactive
prompt starts. Flags:
`, lox.Version, appName)
	flag.PrintDefaults()
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	runner := lox.NewRunner(os.Stdout, errorWriter{})
	if *dumpAST {
		return dumpProgram(runner, string(src))
	}

	res := runner.Run(string(src))
	switch {
	case res.HadError:
		return 65
	case res.HadRuntimeError:
		return 70
	default:
		return 0
	}
}

// dumpProgram stops after the parse and prints the parenthesized AST.
func dumpProgram(runner *lox.Runner, src string) int {
	rep := runner.Reporter
	tokens := lox.NewLexer(src, rep).ScanTokens()
	statements := lox.NewParser(tokens, rep).Parse()
	if rep.HadError {
		return 65
	}
	fmt.Println(lox.FormatProgram(statements))
	return 0
}

func runPrompt() int {
	fmt.Printf("glox %s REPL\nCtrl+C cancels input, Ctrl+D exits.\n", lox.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	runner := lox.NewRunner(os.Stdout, errorWriter{})
	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF and friends end the session
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		// One bad line never ends the session: Run resets the error
		// flags on the next call, while globals persist in the runner.
		runner.Run(line)
		if *explain {
			for _, d := range runner.Reporter.Diagnostics() {
				fmt.Fprint(os.Stderr, lox.Explain(line, d))
			}
		}
	}
}
