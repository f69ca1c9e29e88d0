// Command ndoc reads a document from a file, reporting any parse errors
// and warnings to stderr, and writes it back out to stdout. It is a thin
// consumer of the ndoc package, not part of the core format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ndoc-lang/ndoc"
)

func main() {
	view := flag.Bool("view", false, "parse into a ViewDocument instead of an owning Document")
	indentSpaces := flag.Bool("indent-spaces", false, "write with spaces instead of the default tab indentation")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: ndoc [-view] [-indent-spaces] FILENAME")
		os.Exit(1)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ndoc:", err)
		os.Exit(1)
	}

	sink := ndoc.ErrorSink(func(kind ndoc.ErrorKind, b byte, line, column int) {
		level := "Error"
		if kind.IsWarning() {
			level = "Warning"
		}
		if b != 0 {
			fmt.Fprintf(os.Stderr, "(line: %d, column: %d) %s: %s %q\n", line, column, level, kind, b)
			return
		}
		fmt.Fprintf(os.Stderr, "(line: %d, column: %d) %s: %s\n", line, column, level, kind)
	})

	writeOpts := []ndoc.WriteOption{}
	if *indentSpaces {
		writeOpts = append(writeOpts, ndoc.IndentWithSpaces())
	}

	if *view {
		doc, _ := ndoc.ParseIntoView(src, ndoc.WithErrorSink(sink))
		if err := ndoc.Write(os.Stdout, doc, writeOpts...); err != nil {
			fmt.Fprintln(os.Stderr, "ndoc:", err)
			os.Exit(1)
		}
		return
	}

	doc, _ := ndoc.Parse(src, ndoc.WithErrorSink(sink))
	if err := ndoc.Write(os.Stdout, doc, writeOpts...); err != nil {
		fmt.Fprintln(os.Stderr, "ndoc:", err)
		os.Exit(1)
	}
}
