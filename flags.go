package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fractionFlag is an optional float flag constrained to [0,1].
type fractionFlag struct {
	value float32
	set   bool
}

func (f *fractionFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(float64(f.value), 'g', -1, 32)
}

func (f *fractionFlag) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return errors.New("not a valid number")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%v is outside the range 0-1", v)
	}

	f.value, f.set = float32(v), true
	return nil
}

// Fraction returns nil when the flag was not given.
func (f *fractionFlag) Fraction() *float32 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// wordFileFlag reads a custom word list from the file named by its value.
type wordFileFlag struct {
	path  string
	words []string
}

func (f *wordFileFlag) String() string {
	if f == nil {
		return ""
	}
	return f.path
}

func (f *wordFileFlag) Set(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read custom word file: %w", err)
	}

	f.path = path
	f.words = parseWords(string(data))
	return nil
}

// parseWords splits s into lines, trims each one and drops blanks.
func parseWords(s string) []string {
	var words []string
	for _, line := range strings.FieldsFunc(s, isLineBreak) {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return words
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
