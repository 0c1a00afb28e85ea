package signals_test

import (
	"testing"

	"github.com/delaneyj/pushsignals/signals"
	"github.com/stretchr/testify/assert"
)

func TestSourceValueAfterListen(t *testing.T) {
	src := signals.NewSource[int]()
	values := []int{}

	tok := signals.Subscribe(src, func(v int) { values = append(values, v) })
	defer tok.Dispose()

	src.Publish(1337)
	assert.Equal(t, []int{1337}, values)
}

func TestSourceNoValueBeforeListen(t *testing.T) {
	src := signals.NewSource[int]()
	values := []int{}

	src.Publish(1337)
	tok := signals.Subscribe(src, func(v int) { values = append(values, v) })
	defer tok.Dispose()

	assert.Empty(t, values)
}

func TestSourcePublishesNewestFirst(t *testing.T) {
	src := signals.NewSource[string]()
	order := []string{}

	for _, name := range []string{"a", "b", "c"} {
		signals.Subscribe(src, func(string) { order = append(order, name) })
	}
	src.Publish("x")

	assert.Equal(t, []string{"c", "b", "a"}, order)
	assert.Equal(t, 3, src.Len())
}

func TestSourceUnsubscribe(t *testing.T) {
	src := signals.NewSource[int]()
	values := []int{}

	tok := signals.Subscribe(src, func(v int) { values = append(values, v) })
	src.Publish(1337)
	tok.Dispose()
	src.Publish(1338)

	assert.Equal(t, []int{1337}, values)
	assert.Equal(t, 0, src.Len())
}

func TestSourceLatestOnly(t *testing.T) {
	src := signals.NewSource[int](signals.LatestOnly())
	first, second := []int{}, []int{}

	signals.Subscribe(src, func(v int) { first = append(first, v) })
	tok := signals.Subscribe(src, func(v int) { second = append(second, v) })

	src.Publish(1)
	tok.Dispose()
	src.Publish(2)

	assert.Equal(t, []int{2}, first)
	assert.Equal(t, []int{1}, second)
}

func TestSourceLatestOnlySkipsDeadOwner(t *testing.T) {
	src := signals.NewSource[int](signals.LatestOnly())
	first, second := []int{}, []int{}
	alive := true

	signals.Subscribe(src, func(v int) { first = append(first, v) })
	signals.SubscribeWith(src, signals.OwnerFunc(func() bool { return alive }), func(v int) {
		second = append(second, v)
	})

	src.Publish(1)
	alive = false
	src.Publish(2)

	assert.Equal(t, []int{2}, first)
	assert.Equal(t, []int{1}, second)
	assert.Equal(t, 1, src.Len())
}

func TestSourceDisposedDuringPublishIsSkipped(t *testing.T) {
	src := signals.NewSource[int]()
	values := []int{}

	victim := signals.Subscribe(src, func(v int) { values = append(values, v) })
	signals.Subscribe(src, func(int) { victim.Dispose() })

	src.Publish(1)
	assert.Empty(t, values)
	assert.Equal(t, 1, src.Len())
}

func TestSourceSubscribeDuringPublish(t *testing.T) {
	src := signals.NewSource[int]()
	late := []int{}

	signals.Subscribe(src, func(v int) {
		if v == 1 {
			signals.Subscribe(src, func(v int) { late = append(late, v) })
		}
	})

	src.Publish(1)
	src.Publish(2)
	assert.Equal(t, []int{2}, late)
}

func TestSubscribeNilSignalPanics(t *testing.T) {
	assert.PanicsWithValue(t, signals.ErrNilSignal, func() {
		signals.Subscribe[int](nil, func(int) {})
	})
}
