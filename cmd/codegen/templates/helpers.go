package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(n int) string {
	return prefixedStrings("T", n)
}

func signalArgs(n int) string {
	return prefixedStrings("s", n)
}

func fieldArgs(n int) string {
	return prefixedStrings("p.v", n)
}

func signalParams(n int) string {
	params := make([]string, n)
	for i := range params {
		params[i] = "s" + strconv.Itoa(i) + " Signal[T" + strconv.Itoa(i) + "]"
	}
	return strings.Join(params, ", ")
}

// valuesType is the slot struct for n upstreams, e.g. values2[T0, T1].
func valuesType(n int) string {
	return "values" + strconv.Itoa(n) + "[" + typeParams(n) + "]"
}
