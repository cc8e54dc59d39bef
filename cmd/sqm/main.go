// Command sqm prints an SQM document as JSON.
//
//	sqm [-strict] [-allow-unclosed] [-query path] [-i] [file]
//
// The document is read from file, or from stdin if no file is given. With
// -query only the value at the dotted path (for example Mission.Entities.Item0)
// is printed. With -i an interactive prompt evaluates paths against the
// document.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConradIrwin/sqm-go"
	"github.com/peterh/liner"
)

const historyFile = ".sqm_history"

func main() {
	strict := flag.Bool("strict", false, "treat unrecognized lines as errors")
	allowUnclosed := flag.Bool("allow-unclosed", false, "accept documents that end inside a class or array")
	query := flag.String("query", "", "dotted path of the value to print")
	interactive := flag.Bool("i", false, "query the document interactively")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file may be given")
		os.Exit(2)
	}

	var input []byte
	var err error
	if flag.NArg() == 1 {
		input, err = os.ReadFile(flag.Arg(0))
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	opts := []sqm.Option{}
	if *strict {
		opts = append(opts, sqm.Strict())
	}
	if *allowUnclosed {
		opts = append(opts, sqm.AllowUnclosed())
	}

	doc, err := sqm.Parse(input, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing document: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		os.Exit(repl(doc))
	}

	if err := printPath(os.Stdout, doc, *query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitPath(query string) []string {
	query = strings.Trim(strings.TrimSpace(query), ".")
	if query == "" {
		return nil
	}
	return strings.Split(query, ".")
}

func printPath(w io.Writer, doc *sqm.Object, query string) error {
	v, ok := doc.Lookup(splitPath(query)...)
	if !ok {
		return fmt.Errorf("no value at %q", query)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printKeys(w io.Writer, doc *sqm.Object, query string) error {
	v, ok := doc.Lookup(splitPath(query)...)
	if !ok {
		return fmt.Errorf("no value at %q", query)
	}
	switch v := v.(type) {
	case *sqm.Object:
		for _, k := range v.Keys() {
			fmt.Fprintln(w, k)
		}
	case *sqm.Sequence:
		fmt.Fprintf(w, "%d items\n", v.Len())
	default:
		return fmt.Errorf("%q is a scalar", query)
	}
	return nil
}

func repl(doc *sqm.Object) int {
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

	for {
		line, err := ln.Prompt("sqm> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case ":quit":
			return 0
		case ":keys":
			err = printKeys(os.Stdout, doc, arg)
		default:
			if strings.HasPrefix(cmd, ":") {
				fmt.Println("unknown command. Type :keys [path] or :quit.")
				continue
			}
			err = printPath(os.Stdout, doc, line)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
