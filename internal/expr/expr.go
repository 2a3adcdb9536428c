// Package expr holds the boolean expression tree produced by the parser.
//
// Expr is a closed set of node types; code that walks a tree switches on the
// concrete type and treats anything else as a programming error.
package expr

import "fmt"

type Expr interface {
	fmt.Stringer
	node()
}

// Var is a free variable, bound per truth table row.
type Var struct {
	Name string
}

// Const is a literal true or false.
type Const struct {
	Value bool
}

type Not struct {
	Operand Expr
}

type And struct {
	Left, Right Expr
}

type Or struct {
	Left, Right Expr
}

type Xor struct {
	Left, Right Expr
}

func (Var) node()   {}
func (Const) node() {}
func (Not) node()   {}
func (And) node()   {}
func (Or) node()    {}
func (Xor) node()   {}

func (v Var) String() string {
	return v.Name
}

func (c Const) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (n Not) String() string {
	return fmt.Sprintf("(NOT %s)", n.Operand)
}

func (a And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

func (o Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}

func (x Xor) String() string {
	return fmt.Sprintf("(%s XOR %s)", x.Left, x.Right)
}

// Equation is one parsed input line: an expression bound to an output name.
type Equation struct {
	Output    string
	Variables []string
	Expr      Expr
}

func (e *Equation) String() string {
	return fmt.Sprintf("%s = %s", e.Expr, e.Output)
}
