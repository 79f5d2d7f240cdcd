package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/elf-tools/elfview/elf"
	"github.com/elf-tools/elfview/report"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func printError(err error, verbose bool) {
	fmt.Fprintf(os.Stderr, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	if !verbose {
		return
	}
	if st, ok := err.(stackTracer); ok {
		for _, f := range st.StackTrace() {
			fmt.Fprintf(os.Stderr, "%+v\n", f)
		}
	}
}

func main() {
	fs := flag.NewFlagSet("elfview", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose errors (print a stack trace)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\nOptions:\n", os.Args[0])
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) != 1 {
		fs.Usage()
		os.Exit(1)
	}
	obj, err := elf.ExtractFile(args[0])
	if err != nil {
		printError(err, *verbose)
		os.Exit(1)
	}
	p := report.New(os.Stdout)
	if *noColor {
		p.Color = false
	}
	p.Print(obj)
}
