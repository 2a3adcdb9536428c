package token

import (
	"unicode"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
)

// Lexer breaks a single equation line into tokens. It keeps no state between calls.
type Lexer struct{}

func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize converts the input string into a slice of Tokens ending with EOF.
// Example: Input: `(a AND b) ⊕ !c -> out`
func (*Lexer) Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}
	return s.run()
}

type scanner struct {
	input []rune
	pos   int
}

func (l *scanner) run() ([]Token, error) {
	var tokens []Token

	l.skipWhitespace()
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		start := l.pos

		switch {
		case ch == '(':
			tokens = append(tokens, Token{Type: LPAREN, Value: "(", Pos: start})
			l.pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: RPAREN, Value: ")", Pos: start})
			l.pos++
		case ch == '=':
			tokens = append(tokens, Token{Type: EQUALS, Value: "=", Pos: start})
			l.pos++
		case ch == '-':
			if l.pos+1 >= len(l.input) || l.input[l.pos+1] != '>' {
				return nil, apperr.NewLex(start)
			}
			tokens = append(tokens, Token{Type: EQUALS, Value: "->", Pos: start})
			l.pos += 2
		case isIdentStart(ch):
			tokens = append(tokens, l.readWord())
		case isDigit(ch):
			tok, err := l.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			kind, ok := Lookup(string(ch))
			if !ok {
				return nil, apperr.NewLex(start)
			}
			tokens = append(tokens, Token{Type: OPERATOR, Op: kind, Value: string(ch), Pos: start})
			l.pos++
		}
		l.skipWhitespace()
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(l.input)})
	return tokens, nil
}

func (l *scanner) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *scanner) readWord() Token {
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}

	word := string(l.input[start:l.pos])

	if kind, ok := Lookup(word); ok {
		return Token{Type: OPERATOR, Op: kind, Value: word, Pos: start}
	}
	if _, ok := constants[word]; ok {
		return Token{Type: CONST, Value: word, Pos: start}
	}
	return Token{Type: IDENT, Value: word, Pos: start}
}

// readNumber accepts only the constants 0 and 1. Identifiers cannot start with a digit.
func (l *scanner) readNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}

	word := string(l.input[start:l.pos])
	if word != "0" && word != "1" {
		return Token{}, apperr.NewLex(start)
	}
	return Token{Type: CONST, Value: word, Pos: start}, nil
}

// Identifiers are ASCII: [A-Za-z_][A-Za-z0-9_]*.
func isIdentStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
