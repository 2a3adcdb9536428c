package parser

import (
	"unicode/utf8"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/expr"
	"github.com/DjordjeVuckovic/booltable/internal/token"
)

const (
	// MaxNesting bounds how deeply parentheses and NOT chains may nest.
	MaxNesting = 1000
	// MaxLineLength bounds a line in runes, which also bounds the depth of operator chains.
	MaxLineLength = 64 * 1024
)

// Parser turns an equation line into an expression tree.
//
// Binding, tightest first: NOT, AND, XOR, OR. Binary operators are
// left-associative, NOT is a prefix operator and may repeat.
type Parser struct {
	tokenizer token.Tokenizer
}

func New() *Parser {
	return &Parser{
		tokenizer: token.NewLexer(),
	}
}

// ParseLine tokenizes and parses a single `<expression> = <name>` line.
// Lines longer than MaxLineLength fail at position MaxLineLength.
func (p *Parser) ParseLine(line string) (*expr.Equation, error) {
	if utf8.RuneCountInString(line) > MaxLineLength {
		return nil, apperr.NewParse(MaxLineLength)
	}
	tokens, err := p.tokenizer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse builds an Equation from an EOF-terminated token slice.
func (p *Parser) Parse(tokens []token.Token) (*expr.Equation, error) {
	eq, err := splitAssignment(tokens)
	if err != nil {
		return nil, err
	}

	output, err := parseOutput(tokens[eq+1:])
	if err != nil {
		return nil, err
	}

	// The '=' token terminates the left region.
	s := &state{
		tokens:    tokens[:eq+1],
		variables: make([]string, 0),
		seen:      make(map[string]struct{}),
	}
	root, err := s.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := s.peek(); tok.Type != token.EQUALS {
		return nil, errorAt(tok)
	}

	return &expr.Equation{
		Output:    output,
		Variables: s.variables,
		Expr:      root,
	}, nil
}

func splitAssignment(tokens []token.Token) (int, error) {
	eq := -1
	for i, tok := range tokens {
		if tok.Type != token.EQUALS {
			continue
		}
		if eq >= 0 {
			return 0, apperr.NewParse(tok.Pos)
		}
		eq = i
	}
	if eq < 0 {
		return 0, apperr.NewParseAtEnd()
	}
	return eq, nil
}

func parseOutput(rest []token.Token) (string, error) {
	if len(rest) == 0 || rest[0].Type == token.EOF {
		return "", apperr.NewParseAtEnd()
	}
	if rest[0].Type != token.IDENT {
		return "", errorAt(rest[0])
	}
	if len(rest) > 1 && rest[1].Type != token.EOF {
		return "", errorAt(rest[1])
	}
	return rest[0].Value, nil
}

type state struct {
	tokens    []token.Token
	pos       int
	depth     int
	variables []string
	seen      map[string]struct{}
}

func (s *state) parseOr() (expr.Expr, error) {
	left, err := s.parseXor()
	if err != nil {
		return nil, err
	}
	for s.peek().IsOperator(token.Or) {
		s.advance()
		right, err := s.parseXor()
		if err != nil {
			return nil, err
		}
		left = expr.Or{Left: left, Right: right}
	}
	return left, nil
}

func (s *state) parseXor() (expr.Expr, error) {
	left, err := s.parseAnd()
	if err != nil {
		return nil, err
	}
	for s.peek().IsOperator(token.Xor) {
		s.advance()
		right, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expr.Xor{Left: left, Right: right}
	}
	return left, nil
}

func (s *state) parseAnd() (expr.Expr, error) {
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	for s.peek().IsOperator(token.And) {
		s.advance()
		right, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		left = expr.And{Left: left, Right: right}
	}
	return left, nil
}

func (s *state) parseUnary() (expr.Expr, error) {
	tok := s.peek()
	if !tok.IsOperator(token.Not) {
		return s.parsePrimary()
	}
	if err := s.enter(tok); err != nil {
		return nil, err
	}
	defer s.leave()

	s.advance()
	operand, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	return expr.Not{Operand: operand}, nil
}

func (s *state) parsePrimary() (expr.Expr, error) {
	tok := s.peek()
	switch tok.Type {
	case token.IDENT:
		s.advance()
		s.insertVar(tok.Value)
		return expr.Var{Name: tok.Value}, nil
	case token.CONST:
		s.advance()
		return expr.Const{Value: tok.Bool()}, nil
	case token.LPAREN:
		if err := s.enter(tok); err != nil {
			return nil, err
		}
		defer s.leave()

		s.advance()
		inner, err := s.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := s.peek(); closing.Type != token.RPAREN {
			return nil, errorAt(closing)
		}
		s.advance()
		return inner, nil
	default:
		return nil, errorAt(tok)
	}
}

// peek never runs past the terminator, so callers always see a token.
func (s *state) peek() token.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

func (s *state) advance() {
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
}

// enter fails at tok once nesting passes MaxNesting.
func (s *state) enter(tok token.Token) error {
	s.depth++
	if s.depth > MaxNesting {
		return apperr.NewParse(tok.Pos)
	}
	return nil
}

func (s *state) leave() {
	s.depth--
}

func (s *state) insertVar(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.variables = append(s.variables, name)
}

func errorAt(tok token.Token) error {
	if tok.Type == token.EOF {
		return apperr.NewParseAtEnd()
	}
	return apperr.NewParse(tok.Pos)
}
