package configparsing

import (
	"strings"
	"unicode/utf8"
)

// eof is the cursor's current character once the input is exhausted.
const eof = rune(-1)

// cursor walks an immutable input string one rune at a time.
type cursor struct {
	input string
	pos   int  // byte offset of ch
	ch    rune // current character, or eof
	width int  // byte width of ch
	line  int  // 1-indexed line of ch
	col   int  // 1-indexed column of ch
}

func newCursor(input string) cursor {
	c := cursor{input: input, line: 1, col: 1}
	c.decode()
	return c
}

func (c *cursor) decode() {
	if c.pos >= len(c.input) {
		c.ch = eof
		c.width = 0
		return
	}
	c.ch, c.width = utf8.DecodeRuneInString(c.input[c.pos:])
}

// advance moves past the current character. It is a no-op at eof.
func (c *cursor) advance() {
	if c.ch == eof {
		return
	}
	if c.ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	c.pos += c.width
	c.decode()
}

// Lexer produces tokens from configuration text on demand.
type Lexer struct {
	cur cursor
}

// NewLexer creates a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{cur: newCursor(input)}
}

// Next scans and returns the next token. Once the input is exhausted it keeps
// returning the end-of-input token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	line, col := l.cur.line, l.cur.col
	switch ch := l.cur.ch; {
	case ch == eof:
		return Token{Kind: KindEOF, Text: eofText, Line: line, Col: col}, nil
	case ch == '[':
		l.cur.advance()
		return Token{Kind: KindLBrack, Text: "[", Line: line, Col: col}, nil
	case ch == ']':
		l.cur.advance()
		return Token{Kind: KindRBrack, Text: "]", Line: line, Col: col}, nil
	case isAliasChar(ch):
		// Must be checked before the path rule, so "[name]" and bare words are
		// classified as alias names.
		return Token{Kind: KindAlias, Text: l.scanAlias(), Line: line, Col: col}, nil
	case ch == '*':
		l.cur.advance()
		return Token{Kind: KindGlob, Text: "*", Line: line, Col: col}, nil
	case !isLineEnd(ch):
		return Token{Kind: KindPath, Text: l.scanPath(), Line: line, Col: col}, nil
	default:
		return Token{}, &LexicalError{Char: ch, Line: line, Col: col}
	}
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.cur.ch) {
		l.cur.advance()
	}
}

func (l *Lexer) scanAlias() string {
	start := l.cur.pos
	for isAliasChar(l.cur.ch) {
		l.cur.advance()
	}
	return l.cur.input[start:l.cur.pos]
}

// scanPath consumes the rest of the line. Trailing blanks are not part of the path.
func (l *Lexer) scanPath() string {
	start := l.cur.pos
	for !isLineEnd(l.cur.ch) {
		l.cur.advance()
	}
	return strings.TrimRight(l.cur.input[start:l.cur.pos], " \t")
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isAliasChar(ch rune) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '_' || ch == '-'
}

func isLineEnd(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == 0 || ch == eof
}
