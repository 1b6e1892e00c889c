package processors

import (
	"fmt"
	"strings"
)

// UnresolvedCostError reports records that reached the metrics stage without a unit cost.
type UnresolvedCostError struct {
	Keys []string
}

func (e *UnresolvedCostError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf("%d key(s) still need a unit cost: %s", len(e.Keys), strings.Join(quoted, ", "))
}
