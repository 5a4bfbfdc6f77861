package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// filenamePattern is the set of file names accepted by the save prompt.
// No separators, so the file always lands in the working directory.
var filenamePattern = regexp.MustCompile(`^[\w\-. ]+$`)

// prompter runs plain line-based prompts over a reader/writer pair.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// confirm asks a yes/no question. An empty answer takes the default.
func (p *prompter) confirm(message string, def bool) (bool, error) {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}

	for {
		fmt.Fprintf(p.out, "%s [%s] ", message, hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// input asks for a line of text. An empty answer takes the default.
func (p *prompter) input(message, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s (%s): ", message, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", message)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// selectOption presents a numbered menu and returns the chosen index.
func (p *prompter) selectOption(message string, options []string) (int, error) {
	fmt.Fprintln(p.out, message)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(p.out, "Enter a number (1-%d): ", len(options))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.out, "Please enter a valid number.")
	}
}

// multiSelect presents a numbered menu and returns the chosen indexes.
// An empty answer selects everything.
func (p *prompter) multiSelect(message string, options []string) ([]int, error) {
	fmt.Fprintln(p.out, message)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprint(p.out, "Enter numbers separated by commas, or press Enter for all: ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		if line == "" {
			all := make([]int, len(options))
			for i := range options {
				all[i] = i
			}
			return all, nil
		}

		picked, ok := parseSelection(line, len(options))
		if ok {
			return picked, nil
		}
		fmt.Fprintln(p.out, "Please enter valid numbers.")
	}
}

// parseSelection parses "1,3,4" into zero-based indexes, deduplicated
// and kept in input order.
func parseSelection(line string, max int) ([]int, bool) {
	seen := make(map[int]bool)
	var picked []int

	for _, part := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > max {
			return nil, false
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		picked = append(picked, n-1)
	}

	if len(picked) == 0 {
		return nil, false
	}
	return picked, true
}

// savePath asks for a file name, validating the name and confirming
// before overwriting an existing file.
func (p *prompter) savePath(def string) (string, error) {
	for {
		name, err := p.input("Enter file name", def)
		if err != nil {
			return "", err
		}

		if !filenamePattern.MatchString(name) {
			fmt.Fprintln(p.out, "Please enter a valid file name.")
			continue
		}

		if _, err := os.Stat(name); err == nil {
			overwrite, err := p.confirm("File already exists. Overwrite?", false)
			if err != nil {
				return "", err
			}
			if !overwrite {
				continue
			}
		}

		return name, nil
	}
}
