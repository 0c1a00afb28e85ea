package signals_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/delaneyj/pushsignals/signals"
	"github.com/stretchr/testify/assert"
)

func collect[T any](s signals.Signal[T]) (*[]T, signals.Token) {
	values := &[]T{}
	tok := signals.Subscribe(s, func(v T) { *values = append(*values, v) })
	return values, tok
}

func TestFilter(t *testing.T) {
	src := signals.NewSource[int]()
	values, tok := collect(signals.Filter(src, func(v int) bool { return v < 5 }))
	defer tok.Dispose()

	for _, v := range []int{1, 3, 5, 4} {
		src.Publish(v)
	}
	assert.Equal(t, []int{1, 3, 4}, *values)
}

func TestMap(t *testing.T) {
	src := signals.NewSource[int]()
	lengths := signals.Map(signals.Map(src, strconv.Itoa), func(s string) int { return len(s) })
	values, tok := collect(lengths)
	defer tok.Dispose()

	for _, v := range []int{1, 13, 133, 1337} {
		src.Publish(v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, *values)
}

func TestMapPanicPropagates(t *testing.T) {
	src := signals.NewSource[int]()
	signals.Subscribe(signals.Map(src, func(v int) int {
		if v == 0 {
			panic("zero")
		}
		return v
	}), func(int) {})

	assert.PanicsWithValue(t, "zero", func() { src.Publish(0) })
	assert.NotPanics(t, func() { src.Publish(1) })
}

func TestOperatorOnNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, signals.ErrNilSignal, func() {
		signals.Map[int, int](nil, func(v int) int { return v })
	})
	assert.PanicsWithValue(t, signals.ErrNilSignal, func() {
		signals.Merge[int](signals.NewSource[int](), nil)
	})
}

func TestDistinctSameOnlyOne(t *testing.T) {
	src := signals.NewSource[int]()
	values, tok := collect(signals.Distinct[int](src))
	defer tok.Dispose()

	src.Publish(1337)
	src.Publish(1337)
	src.Publish(1337)
	assert.Equal(t, []int{1337}, *values)
}

func TestDistinctDifferentDependingOnListener(t *testing.T) {
	src := signals.NewSource[int]()
	distinct := signals.Distinct[int](src)

	first, tok1 := collect(distinct)
	defer tok1.Dispose()
	src.Publish(1337)

	second, tok2 := collect(distinct)
	defer tok2.Dispose()
	src.Publish(1337)

	assert.Equal(t, []int{1337}, *first)
	assert.Equal(t, []int{1337}, *second)
}

func TestDistinctAlternatingPropagates(t *testing.T) {
	src := signals.NewSource[int]()
	values, tok := collect(signals.Distinct[int](src))
	defer tok.Dispose()

	for _, v := range []int{1337, 1337, 1338, 1338, 1338, 1337} {
		src.Publish(v)
	}
	assert.Equal(t, []int{1337, 1338, 1337}, *values)
}

func TestDistinctFunc(t *testing.T) {
	src := signals.NewSource[[]string]()
	same := func(a, b []string) bool { return strings.Join(a, ",") == strings.Join(b, ",") }
	values, tok := collect(signals.DistinctFunc(src, same))
	defer tok.Dispose()

	src.Publish([]string{"a"})
	src.Publish([]string{"a"})
	src.Publish([]string{"a", "b"})
	assert.Equal(t, [][]string{{"a"}, {"a", "b"}}, *values)
}

func TestLiftCustomOperator(t *testing.T) {
	src := signals.NewSource[int]()
	pairs := signals.Lift[int, [2]int](src, signals.OperatorFunc[int, [2]int](func(emit func([2]int)) func(int) {
		prev, started := 0, false
		return func(v int) {
			if started {
				emit([2]int{prev, v})
			}
			prev, started = v, true
		}
	}))

	values, tok := collect(pairs)
	defer tok.Dispose()
	for _, v := range []int{1, 2, 3} {
		src.Publish(v)
	}
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}}, *values)
}

func TestOperatorUnsubscribe(t *testing.T) {
	src := signals.NewSource[int]()
	values, tok := collect(signals.Map(signals.Filter(src, func(v int) bool { return v > 0 }), func(v int) int { return -v }))

	src.Publish(1)
	tok.Dispose()
	src.Publish(2)

	assert.Equal(t, []int{-1}, *values)
	assert.Equal(t, 0, src.Len())
}

func TestOperatorDeadOwner(t *testing.T) {
	src := signals.NewSource[int]()
	tok := signals.SubscribeWith(signals.Map(src, func(v int) int { return v }), signals.OwnerFunc(func() bool { return false }), func(int) {
		assert.Fail(t, "dead owner received a value")
	})
	defer tok.Dispose()

	src.Publish(1)
	assert.Equal(t, 0, src.Len())
}
