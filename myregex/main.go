package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/hivi6/myregex/regex"
)

var (
	matchColor   = color.New(color.FgGreen)
	noMatchColor = color.New(color.FgRed)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// lines longer than this are rejected by the scanner
const maxLineLength = 1 << 20

var errPatternRejected = errors.New("pattern rejected")

var cli struct {
	Pattern  string `arg:"" optional:"" name:"pattern" help:"Pattern to compile, read from the first input line if omitted" type:"string"`
	Input    string `short:"i" name:"input" help:"Read input from this file instead of stdin" type:"existingfile"`
	Trace    bool   `short:"t" help:"Print the grammar rules to stderr while compiling"`
	Describe bool   `short:"d" help:"Print the compiled transition table"`
	Color    string `enum:"auto,always,never" default:"auto" help:"When to colour the output (${enum})"`
}

type driver struct {
	in  io.Reader
	out io.Writer

	// nil disables the parse trace
	trace       io.Writer
	describe    bool
	interactive bool
}

func main() {
	kong.Parse(&cli,
		kong.Name("myregex"),
		kong.Description("Compiles a pattern and reports for every input line whether the whole line matches it."),
		kong.UsageOnError(),
	)

	switch cli.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	d := driver{
		in:          os.Stdin,
		out:         color.Output,
		describe:    cli.Describe,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	if cli.Trace {
		d.trace = os.Stderr
	}

	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			log.Fatalf("%s: %v", cli.Input, err)
		}
		defer f.Close()
		d.in = f
		d.interactive = false
	}

	err := d.run(cli.Pattern)
	if errors.Is(err, errPatternRejected) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func (d *driver) prompt(s string) {
	if d.interactive {
		fmt.Fprint(d.out, s)
	}
}

// run compiles pattern, or the first input line if pattern is empty, and
// prints one result per remaining input line
func (d *driver) run(pattern string) error {
	scanner := bufio.NewScanner(d.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	if pattern == "" {
		d.prompt("enter a regex pattern: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		pattern = scanner.Text()
	}

	var opts []regex.Option
	if d.trace != nil {
		opts = append(opts, regex.WithTrace(d.trace))
	}
	re, err := regex.Compile(pattern, opts...)
	if err != nil {
		errorColor.Fprintln(d.out, err)
		return errPatternRejected
	}

	if d.describe {
		fmt.Fprint(d.out, re)
	}

	for {
		d.prompt("enter string to match: ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		c := noMatchColor
		matched := re.Match(line)
		if matched {
			c = matchColor
		}
		fmt.Fprintf(d.out, "match(%s, %s): %s\n", pattern, line, c.Sprint(matched))
	}

	// end the dangling prompt
	if d.interactive {
		fmt.Fprintln(d.out)
	}
	return scanner.Err()
}
