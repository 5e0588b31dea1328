package manifest

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fromCty converts an evaluated cty.Value into its native Go equivalent so
// the context store captures an ordinary runtime type for each entry. Whole
// numbers become int, other numbers float64. Collections of strings become
// []string so widgets can read them with a single typed lookup; mixed
// collections fall back to []any.
func fromCty(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, err
		}
		return s, nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(val, &b); err != nil {
			return nil, err
		}
		return b, nil

	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elems := val.AsValueSlice()
		out := make([]any, 0, len(elems))
		allStrings := true
		for _, elem := range elems {
			goElem, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			if _, ok := goElem.(string); !ok {
				allStrings = false
			}
			out = append(out, goElem)
		}
		if allStrings {
			strs := make([]string, len(out))
			for i, v := range out {
				strs[i] = v.(string)
			}
			return strs, nil
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for name, elem := range val.AsValueMap() {
			goElem, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			out[name] = goElem
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported context value type %s", ty.FriendlyName())
	}
}
