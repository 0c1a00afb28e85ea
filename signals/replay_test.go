package signals_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/delaneyj/pushsignals/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	for _, tc := range []struct {
		name     string
		count    int
		expected []int
	}{
		{"zero", 0, []int{}},
		{"one", 1, []int{1340}},
		{"three", 3, []int{1338, 1339, 1340}},
		{"negative", -1, []int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := signals.NewSource[int]()
			replay := signals.Replay[int](src, tc.count)
			for _, v := range []int{1337, 1338, 1339, 1340} {
				src.Publish(v)
			}

			values, tok := collect(replay)
			defer tok.Dispose()
			assert.Equal(t, tc.expected, *values)
		})
	}
}

func TestReplayBeforeAndAfter(t *testing.T) {
	src := signals.NewSource[int]()
	replay := signals.Replay[int](src, 1)
	src.Publish(1337)
	src.Publish(1338)
	src.Publish(1339)

	values, tok := collect(replay)
	defer tok.Dispose()
	src.Publish(1340)

	assert.Equal(t, []int{1339, 1340}, *values)
}

func TestReplayTwoSubscribers(t *testing.T) {
	src := signals.NewSource[int]()
	replay := signals.Replay[int](src, 2)

	src.Publish(1337)
	src.Publish(1338)
	first, tok1 := collect(replay)
	defer tok1.Dispose()

	src.Publish(1339)
	second, tok2 := collect(replay)
	defer tok2.Dispose()

	src.Publish(1340)

	assert.Equal(t, []int{1337, 1338, 1339, 1340}, *first)
	assert.Equal(t, []int{1338, 1339, 1340}, *second)
}

func TestReplayUnsubscribe(t *testing.T) {
	src := signals.NewSource[int]()
	replay := signals.Replay[int](src, 3)
	src.Publish(1337)

	values, tok := collect(replay)
	src.Publish(1338)
	tok.Dispose()
	src.Publish(1339)

	assert.Equal(t, []int{1337, 1338}, *values)
	runtime.KeepAlive(replay)
}

func TestReplayCollectedReleasesUpstream(t *testing.T) {
	src := signals.NewSource[int]()

	func() {
		replay := signals.Replay[int](src, 2)
		require.NotNil(t, replay)
		require.Equal(t, 1, src.Len())
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return src.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
