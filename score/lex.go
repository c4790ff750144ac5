// Package score parses melody lines like "a4:1 c#5:0.5 r:0.5 e5" into
// pitched steps with durations in beats.
package score

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	typeUnknown tokenType = iota
	typeName
	typeNumber
	typeColon
	typeEOF
)

const eof = -1

type token struct {
	typ  tokenType
	pos  int
	text string
}

func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	return l.lex()
}

type lexer struct {
	input string

	width int
	start int
	pos   int

	tokens []token
	err    error
}

func (l *lexer) lex() ([]token, error) {
	for {
		switch r := l.next(); {
		case r == eof:
			l.yieldToken(typeEOF)
			return l.tokens, l.err
		case unicode.IsLetter(r):
			l.lexName()
		case isDigit(r) || r == '.':
			l.lexNumber()
		case r == ':':
			l.yieldToken(typeColon)
		case r == ' ' || r == '\t':
			l.ignoreSpace()
		default:
			l.invalidChar(r)
		}
		if l.err != nil {
			return l.tokens, l.err
		}
	}
}

func (l *lexer) next() rune {
	if len(l.input) == l.pos {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) yieldToken(t tokenType) {
	s := l.input[l.start:l.pos]
	l.tokens = append(l.tokens, token{t, l.pos, s})
	l.start = l.pos
	l.width = 0
}

func (l *lexer) errorf(format string, args ...interface{}) {
	l.err = fmt.Errorf(format, args...)
}

func (l *lexer) invalidChar(r rune) {
	l.errorf("unexpected character: %#U", r)
}

func (l *lexer) ignoreSpace() {
	for {
		if r := l.peek(); r != ' ' && r != '\t' {
			break
		}
		l.next()
	}
	l.start = l.pos
}

// lexName scans a note name: a pitch letter, optional accidentals and an
// octave, e.g. "a4", "c#5", "bb2". A bare "r" marks a rest.
func (l *lexer) lexName() {
	for {
		switch r := l.next(); {
		case unicode.IsLetter(r) || r == '#' || isDigit(r):
		default:
			l.backup()
			l.yieldToken(typeName)
			return
		}
	}
}

const digits = "0123456789"

func (l *lexer) lexNumber() {
	l.backup()
	l.take(digits)
	if l.accept(".") {
		l.take(digits)
	}
	switch r := l.peek(); {
	case r == ' ' || r == '\t' || r == eof:
		l.yieldToken(typeNumber)
	default:
		l.invalidChar(r)
	}
}

func (l *lexer) take(set string) int {
	var n int
	for isOneOf(l.next(), set) {
		n++
	}
	l.backup()
	return n
}

func (l *lexer) accept(set string) bool {
	if isOneOf(l.next(), set) {
		return true
	}
	l.backup()
	return false
}

func isOneOf(r rune, set string) bool {
	for _, c := range set {
		if r == c {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
