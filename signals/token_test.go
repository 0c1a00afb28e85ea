package signals_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/pushsignals/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDisposeOnce(t *testing.T) {
	calls := 0
	tok := signals.NewToken(func() { calls++ })

	tok.Dispose()
	tok.Dispose()
	assert.Equal(t, 1, calls)
}

func TestTokenConcurrentDispose(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	tok := signals.NewToken(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestBagDisposesChildren(t *testing.T) {
	src := signals.NewSource[int]()
	values := []int{}

	bag := signals.NewBag()
	bag.Add(
		signals.Subscribe(src, func(v int) { values = append(values, v) }),
		signals.Subscribe(src, func(v int) { values = append(values, v*10) }),
	)
	assert.Equal(t, 2, bag.Len())
	assert.True(t, bag.Alive())

	src.Publish(1)
	bag.Dispose()
	src.Publish(2)

	assert.Equal(t, []int{10, 1}, values)
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, bag.Len())
	assert.False(t, bag.Alive())
}

func TestBagAddAfterDispose(t *testing.T) {
	bag := signals.NewBag()
	bag.Dispose()

	disposed := false
	bag.Add(signals.NewToken(func() { disposed = true }), nil)
	assert.True(t, disposed)
	assert.Equal(t, 0, bag.Len())
}

func TestBagNested(t *testing.T) {
	src := signals.NewSource[int]()
	inner := signals.NewBag(signals.Subscribe(src, func(int) {}))
	outer := signals.NewBag(inner, signals.Subscribe(src, func(int) {}))
	require.Equal(t, 2, src.Len())

	outer.Dispose()
	assert.Equal(t, 0, src.Len())
	assert.False(t, inner.Alive())
}

func TestBagAsOwner(t *testing.T) {
	src := signals.NewSource[int]()
	owner := signals.NewBag()
	values := []int{}

	signals.SubscribeWith(src, owner, func(v int) { values = append(values, v) })
	src.Publish(1)
	owner.Dispose()
	src.Publish(2)

	assert.Equal(t, []int{1}, values)
	assert.Equal(t, 0, src.Len())
}

func TestBagCollectedDisposesChildren(t *testing.T) {
	src := signals.NewSource[int]()

	func() {
		bag := signals.NewBag()
		bag.Add(signals.Subscribe(src, func(int) {}))
		require.Equal(t, 1, src.Len())
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return src.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBagOwningItsSubscriptionsIsCollected(t *testing.T) {
	src := signals.NewSource[int]()
	debounced := signals.Debounce(src, time.Millisecond, signals.NewVirtualScheduler())

	func() {
		anchor := signals.NewBag()
		anchor.Add(
			signals.SubscribeWith(src, anchor, func(int) {}),
			signals.SubscribeWith(debounced, anchor, func(int) {}),
		)
		require.Equal(t, 2, src.Len())
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return src.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
