package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"jsparse/ast"
	"jsparse/errors"
	"jsparse/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: jsparse <file.js>")
		os.Exit(1)
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	program, err := parser.Parse(string(source), parser.Options{EmitLogs: false})
	duration := time.Since(start)

	if err != nil {
		fmt.Print(formatError(path, string(source), err))
		color.Red("Parse failed after %s", formatDuration(duration))
		os.Exit(1)
	}

	fmt.Println(ast.Dump(program))
	color.Green("Parsed %s in %s", path, formatDuration(duration))
}

func formatError(path, source string, err error) string {
	reporter := errors.NewReporter(path, source)
	switch e := err.(type) {
	case *errors.SyntaxError:
		if e.Position != nil {
			return reporter.Format(*e.Position, 1, e.Message)
		}
		return fmt.Sprintf("%s\n", e.Error())
	case *errors.LexError:
		return reporter.Format(e.Position, len(e.Prefix), e.Error())
	default:
		return fmt.Sprintf("%s\n", err.Error())
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
