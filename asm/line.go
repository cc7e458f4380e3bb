package asm

import (
	"bufio"
	"io"
	"strings"
)

// Line is a non-blank source line with its comment removed.
type Line struct {
	LineNo int    // 1-based line number in the source.
	Text   string // Line text, trimmed of comment and surrounding space.
}

// ReadLines reads the non-blank lines of an assembly source.
func ReadLines(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1

		text, _, _ := strings.Cut(scanner.Text(), ";")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		lines = append(lines, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()

	return
}
