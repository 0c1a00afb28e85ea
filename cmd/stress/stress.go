package main

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/pushsignals/signals"
)

type stressConfig struct {
	subscribers int
	publishers  int
	rounds      int
}

type result struct {
	name             string
	delivered        int64
	expected         int64
	checksum         uint64
	expectedChecksum uint64
	duration         time.Duration
}

func (r result) ok() bool {
	return r.delivered == r.expected && r.checksum == r.expectedChecksum
}

// digest tracks an order independent checksum of every delivered value.
// Summing per-value hashes lets concurrent handlers update it without caring
// who ran first.
type digest struct {
	count atomic.Int64
	sum   atomic.Uint64
}

func hashValue(v int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}

func (d *digest) observe(v int) {
	d.count.Add(1)
	d.sum.Add(hashValue(v))
}

// expectedSum is the checksum of every value in [0, n) delivered times times.
func expectedSum(n, times int) uint64 {
	var sum uint64
	for v := 0; v < n; v++ {
		sum += hashValue(v)
	}
	return sum * uint64(times)
}

// fanOut subscribes every listener concurrently, then has the publishers
// publish disjoint value ranges concurrently. Every listener must see every
// value exactly once.
func fanOut(cfg stressConfig) result {
	src := signals.NewSource[int]()
	d := &digest{}
	bag := signals.NewBag()
	defer bag.Dispose()

	start := time.Now()
	var wg sync.WaitGroup
	for range cfg.subscribers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Add(signals.Subscribe(src, d.observe))
		}()
	}
	wg.Wait()

	publish(cfg, src.Publish)

	total := cfg.publishers * cfg.rounds
	return result{
		name:             "fan-out",
		delivered:        d.count.Load(),
		expected:         int64(cfg.subscribers * total),
		checksum:         d.sum.Load(),
		expectedChecksum: expectedSum(total, cfg.subscribers),
		duration:         time.Since(start),
	}
}

// churn subscribes and disposes short lived listeners while publishing. Only
// the one listener registered up front is counted.
func churn(cfg stressConfig) result {
	src := signals.NewSource[int]()
	d := &digest{}
	tok := signals.Subscribe(src, d.observe)
	defer tok.Dispose()

	start := time.Now()
	publish(cfg, func(v int) {
		t := signals.Subscribe(src, func(int) {})
		src.Publish(v)
		t.Dispose()
	})

	total := cfg.publishers * cfg.rounds
	return result{
		name:             "churn",
		delivered:        d.count.Load(),
		expected:         int64(total),
		checksum:         d.sum.Load(),
		expectedChecksum: expectedSum(total, 1),
		duration:         time.Since(start),
	}
}

// zipLockstep publishes both sides of a zip from separate goroutines, one
// round at a time, so every round must produce exactly one pair.
func zipLockstep(cfg stressConfig) result {
	left, right := signals.NewSource[int](), signals.NewSource[int]()
	d := &digest{}
	tok := signals.Subscribe(signals.Zip2(left, right, func(a, b int) int {
		if a != b {
			return -1
		}
		return a
	}), d.observe)
	defer tok.Dispose()

	start := time.Now()
	for v := range cfg.rounds {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			left.Publish(v)
		}()
		go func() {
			defer wg.Done()
			right.Publish(v)
		}()
		wg.Wait()
	}

	return result{
		name:             "zip lockstep",
		delivered:        d.count.Load(),
		expected:         int64(cfg.rounds),
		checksum:         d.sum.Load(),
		expectedChecksum: expectedSum(cfg.rounds, 1),
		duration:         time.Since(start),
	}
}

// publish runs cfg.publishers goroutines, publisher p sending the values
// [p*rounds, (p+1)*rounds).
func publish(cfg stressConfig, fn func(int)) {
	var wg sync.WaitGroup
	for p := range cfg.publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range cfg.rounds {
				fn(p*cfg.rounds + r)
			}
		}()
	}
	wg.Wait()
}

func runAll(cfg stressConfig) []result {
	return []result{
		fanOut(cfg),
		churn(cfg),
		zipLockstep(cfg),
	}
}
