// Command seqfmt joins input lines into a single rendered sequence.
//
// Usage: seqfmt [flags] [file...]
//
// Each argument is a file of newline-separated elements; "-" or no arguments
// reads stdin. All elements are rendered as one sequence to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/bjaus/seqfmt"
)

func main() {
	styleName := flag.String("style", "", "preset style name (list, tuple, set, angle)")
	delimiter := flag.StringP("delimiter", "d", "", "delimiter character between elements")
	open := flag.String("open", "", "opening terminator character")
	closing := flag.String("close", "", "closing terminator character")
	noSpace := flag.Bool("no-space", false, "omit the space after each delimiter")
	newline := flag.Bool("newline", isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		"append a trailing newline (default: only when stdout is a terminal)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	style, err := buildStyle(*styleName, *delimiter, *open, *closing, *noSpace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seqfmt: %v\n", err)
		os.Exit(2)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var lines []string
	for _, path := range paths {
		chunk, err := readLines(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seqfmt: %v\n", err)
			os.Exit(1)
		}
		lines = append(lines, chunk...)
	}

	if err := seqfmt.Display(lines).Style(style).Render(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "seqfmt: write error: %v\n", err)
		os.Exit(1)
	}
	if *newline {
		fmt.Println()
	}
}

// buildStyle resolves the preset, then applies individual flag overrides.
// Character flags must hold exactly one character.
func buildStyle(name, delimiter, open, closing string, noSpace bool) (seqfmt.Style, error) {
	style := seqfmt.Default()
	if name != "" {
		var err error
		if style, err = seqfmt.ParseStyle(name); err != nil {
			return seqfmt.Style{}, err
		}
	}
	for _, f := range []struct {
		flag  string
		value string
		dst   *rune
	}{
		{"--delimiter", delimiter, &style.Delimiter},
		{"--open", open, &style.Open},
		{"--close", closing, &style.Close},
	} {
		if f.value == "" {
			continue
		}
		runes := []rune(f.value)
		if len(runes) != 1 {
			return seqfmt.Style{}, fmt.Errorf("%s: %q is not a single character", f.flag, f.value)
		}
		*f.dst = runes[0]
	}
	if noSpace {
		style.Space = false
	}
	return style, nil
}

func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return scanLines(r)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
