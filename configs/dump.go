package configs

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/reusee/dscope"
)

// DumpConfigurables writes the resolved value of every Configurable
// dependency type in the scope, one per line, sorted by expression.
func DumpConfigurables(scope dscope.Scope, w io.Writer) {
	var types []reflect.Type
	for t := range scope.AllTypes() {
		if t.Implements(configurableType) {
			types = append(types, t)
		}
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, t := range types {
		fnType := reflect.FuncOf([]reflect.Type{t}, nil, false)
		fn := reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
			value := args[0].Interface()
			fmt.Fprintf(w, "%s = %v\n", value.(Configurable).ConfigExpr(), value)
			return nil
		})
		scope.Call(fn.Interface())
	}
}
