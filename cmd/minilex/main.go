// Command minilex scans a source file and prints its tokens.
//
// Usage:
//
//	minilex [-debug] <file>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KimNorgaard/minilex"
)

const rule = "----------------------"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minilex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "Report scan statistics on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Argument mistakes are reported but are not failures.
	switch fs.NArg() {
	case 0:
		fmt.Fprintln(stdout, "Please provide an input file through the commandline arguments for the lex.")
		return 0
	case 1:
	default:
		fmt.Fprintln(stdout, "Too many commandline arguments.")
		return 0
	}

	filename := fs.Arg(0)
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stdout, "**Error. File %q: %v\n", filename, err)
		return 1
	}

	start := time.Now()
	tokens, err := minilex.Lex(src)
	if *debug {
		fmt.Fprintf(stderr, "[lex] %s: %d bytes, %d tokens in %s\n", filename, len(src), len(tokens), time.Since(start))
	}
	if err != nil {
		fmt.Fprintln(stdout, "**Error**")
		fmt.Fprintln(stdout, rule)
		fmt.Fprintln(stdout, err)
		fmt.Fprintln(stdout, rule)
		return 1
	}

	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "Finished Lexing the file %s\n", filename)
	fmt.Fprintln(stdout, "File Contents:")
	fmt.Fprintln(stdout, string(src))
	fmt.Fprintln(stdout, "Here are the Results:")
	fmt.Fprintln(stdout, rule)
	if err := minilex.Print(stdout, tokens); err != nil {
		fmt.Fprintf(stderr, "minilex: writing tokens: %v\n", err)
		return 1
	}
	return 0
}
