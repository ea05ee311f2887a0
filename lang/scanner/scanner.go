// Package scanner turns Lox source bytes into a stream of tokens.
package scanner

import (
	"strconv"

	"github.com/mna/lox/lang/token"
)

// Scanner tokenizes a single source file. A zero Scanner is not usable;
// construct one with New.
type Scanner struct {
	src    []byte
	start  int // start of the lexeme currently being scanned
	cur    int // offset of the next byte to read
	line   int
	errors ErrorList
}

// New returns a Scanner ready to tokenize src.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanAll scans every token in src and returns them, including the trailing
// EOF token. The returned error, if non-nil, is an ErrorList.
func ScanAll(src []byte) ([]token.Token, error) {
	s := New(src)
	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, s.errors.Err()
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.cur]
	s.cur++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// match consumes the current byte and returns true if it equals want,
// otherwise it leaves the cursor untouched and returns false.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) errorf(msg string) { s.errors.Add(s.line, msg) }

func (s *Scanner) make(k token.Kind) token.Token {
	return token.Token{Kind: k, Lexeme: string(s.src[s.start:s.cur]), Line: s.line}
}

// Scan returns the next token. Once EOF is returned, further calls keep
// returning EOF.
func (s *Scanner) Scan() token.Token {
	s.skipIgnorable()
	s.start = s.cur
	if s.atEnd() {
		return token.Token{Kind: token.EOF, Line: s.line}
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case ';':
		return s.make(token.SEMI)
	case '*':
		return s.make(token.STAR)
	case '/':
		return s.make(token.SLASH)
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQ)
		}
		return s.make(token.BANG)
	case '=':
		if s.match('=') {
			return s.make(token.EQ_EQ)
		}
		return s.make(token.EQ)
	case '<':
		if s.match('=') {
			return s.make(token.LT_EQ)
		}
		return s.make(token.LT)
	case '>':
		if s.match('=') {
			return s.make(token.GT_EQ)
		}
		return s.make(token.GT)
	case '"':
		return s.string()
	default:
		s.errorf("unexpected character '" + string(c) + "'")
		return s.Scan()
	}
}

// skipIgnorable consumes whitespace, line comments and block comments.
func (s *Scanner) skipIgnorable() {
	for {
		if s.atEnd() {
			return
		}
		switch c := s.peek(); c {
		case ' ', '\r', '\t':
			s.cur++
		case '\n':
			s.cur++
			s.line++
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.cur++
				}
			} else if s.peekNext() == '*' {
				s.blockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

// blockComment consumes a /* ... */ comment. Nested block comments are
// tolerated: each "/*" increases the nesting depth and each "*/" decreases
// it, so the comment only ends once the outermost one closes.
func (s *Scanner) blockComment() {
	startLine := s.line
	s.cur += 2 // consume "/*"
	depth := 1
	for depth > 0 {
		if s.atEnd() {
			s.line = startLine
			s.errorf("unterminated block comment")
			return
		}
		switch {
		case s.peek() == '/' && s.peekNext() == '*':
			s.cur += 2
			depth++
		case s.peek() == '*' && s.peekNext() == '/':
			s.cur += 2
			depth--
		case s.peek() == '\n':
			s.line++
			s.cur++
		default:
			s.cur++
		}
	}
}

func (s *Scanner) string() token.Token {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}
	if s.atEnd() {
		s.line = startLine
		s.errorf("unterminated string")
		return token.Token{Kind: token.ILLEGAL, Lexeme: string(s.src[s.start:s.cur]), Line: startLine}
	}
	s.cur++ // consume closing quote
	val := string(s.src[s.start+1 : s.cur-1])
	return token.Token{Kind: token.STRING, Lexeme: string(s.src[s.start:s.cur]), Literal: val, Line: startLine}
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++ // consume '.'
		for isDigit(s.peek()) {
			s.cur++
		}
	}
	lit := string(s.src[s.start:s.cur])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf("invalid number literal: " + lit)
	}
	return token.Token{Kind: token.NUMBER, Lexeme: lit, Literal: v, Line: s.line}
}

func (s *Scanner) identifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.cur++
	}
	lit := string(s.src[s.start:s.cur])
	return token.Token{Kind: token.Lookup(lit), Lexeme: lit, Line: s.line}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
