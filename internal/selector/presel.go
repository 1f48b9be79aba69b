package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// PreselAll marks every line.
func (l *Lines) PreselAll() {
	l.SetAll()
}

// PreselListed toggles the marks of the given 1-based line numbers. Numbers
// outside the list are ignored.
func (l *Lines) PreselListed(numbers []int) {
	for _, n := range numbers {
		l.toggleNumber(n)
	}
}

func (l *Lines) toggleNumber(n int) {
	if n < 1 || n > len(l.lines) {
		return
	}
	l.lines[n-1].Marked = !l.lines[n-1].Marked
}

// PreselFromFile toggles the lines listed in the file at path. See
// PreselFrom.
func (l *Lines) PreselFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open preselect file: %w", err)
	}
	defer f.Close()
	return l.PreselFrom(f)
}

type scanState int

const (
	seekDigit scanState = iota
	collectDigits
)

// PreselFrom toggles the lines whose 1-based numbers appear in r. Numbers
// are runs of decimal digits; anything else separates them.
func (l *Lines) PreselFrom(r io.Reader) error {
	br := bufio.NewReader(r)
	state := seekDigit
	var digits []byte

	flush := func() {
		if n, err := strconv.Atoi(string(digits)); err == nil {
			l.toggleNumber(n)
		}
		digits = digits[:0]
	}

	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			if state == collectDigits {
				flush()
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read preselect file: %w", err)
		}

		isDigit := ch >= '0' && ch <= '9'
		switch state {
		case seekDigit:
			if isDigit {
				digits = append(digits, ch)
				state = collectDigits
			}
		case collectDigits:
			if isDigit {
				digits = append(digits, ch)
			} else {
				flush()
				state = seekDigit
			}
		}
	}
}
