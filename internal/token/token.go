package token

type Type int

const (
	EOF Type = iota
	IDENT
	CONST
	OPERATOR
	LPAREN
	RPAREN
	EQUALS
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case CONST:
		return "CONST"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case EQUALS:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}

// OperatorKind is the boolean operation an OPERATOR token stands for.
// Several spellings share one kind, see Lookup.
type OperatorKind int

const (
	Not OperatorKind = iota
	And
	Or
	Xor
)

func (k OperatorKind) String() string {
	switch k {
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
// Pos is the rune offset of the token's first character in the input line.
type Token struct {
	Type  Type
	Op    OperatorKind
	Value string
	Pos   int
}

// IsOperator reports whether the token is an operator of the given kind.
func (t Token) IsOperator(kind OperatorKind) bool {
	return t.Type == OPERATOR && t.Op == kind
}

// Bool returns the value of a CONST token.
func (t Token) Bool() bool {
	return t.Value == "true" || t.Value == "1"
}

var keywords = map[string]OperatorKind{
	"NOT": Not,
	"AND": And,
	"OR":  Or,
	"XOR": Xor,
}

// ∨ is OR only.
var symbols = map[rune]OperatorKind{
	'!': Not,
	'¬': Not,
	'.': And,
	'+': Or,
	'∨': Or,
	'^': Xor,
	'⊕': Xor,
	'⊻': Xor,
}

var constants = map[string]struct{}{
	"true":  {},
	"false": {},
	"1":     {},
	"0":     {},
}

// Lookup maps an operator spelling to its kind. Keywords are case-sensitive.
func Lookup(spelling string) (OperatorKind, bool) {
	if kind, ok := keywords[spelling]; ok {
		return kind, true
	}
	r := []rune(spelling)
	if len(r) == 1 {
		kind, ok := symbols[r[0]]
		return kind, ok
	}
	return 0, false
}
