package truthtable

import (
	"fmt"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/expr"
)

// Eval computes e under the assignment a. Both sides of a binary node are always
// evaluated so an unbound variable is reported wherever it appears.
func Eval(e expr.Expr, a Assignment) (bool, error) {
	switch n := e.(type) {
	case expr.Var:
		v, ok := a[n.Name]
		if !ok {
			return false, apperr.NewUnbound(n.Name)
		}
		return v, nil
	case expr.Const:
		return n.Value, nil
	case expr.Not:
		v, err := Eval(n.Operand, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case expr.And:
		l, r, err := evalBoth(n.Left, n.Right, a)
		return l && r, err
	case expr.Or:
		l, r, err := evalBoth(n.Left, n.Right, a)
		return l || r, err
	case expr.Xor:
		l, r, err := evalBoth(n.Left, n.Right, a)
		return l != r, err
	default:
		return false, fmt.Errorf("unsupported expression node %T", e)
	}
}

func evalBoth(left, right expr.Expr, a Assignment) (bool, bool, error) {
	l, err := Eval(left, a)
	if err != nil {
		return false, false, err
	}
	r, err := Eval(right, a)
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}
