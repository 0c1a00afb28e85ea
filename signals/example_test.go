package signals_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/delaneyj/pushsignals/signals"
)

func ExampleSource() {
	src := signals.NewSource[int]()
	evens := signals.Map(signals.Filter(src, func(v int) bool { return v%2 == 0 }), func(v int) string {
		return fmt.Sprintf("even %d", v)
	})

	tok := signals.Subscribe(evens, func(s string) { fmt.Println(s) })
	defer tok.Dispose()

	for i := range 5 {
		src.Publish(i)
	}
	// Output:
	// even 0
	// even 2
	// even 4
}

func ExampleCombine2() {
	first, last := signals.NewSource[string](), signals.NewSource[string]()
	names := signals.Combine2(first, last, func(f, l string) string { return f + " " + l })

	tok := signals.Subscribe(names, func(s string) { fmt.Println(s) })
	defer tok.Dispose()

	first.Publish("Ada")
	last.Publish("Lovelace")
	first.Publish("Augusta")
	// Output:
	// Ada Lovelace
	// Augusta Lovelace
}

func ExampleReplay() {
	src := signals.NewSource[string]()
	recent := signals.Replay(signals.Map(src, strings.ToUpper), 2)

	src.Publish("a")
	src.Publish("b")
	src.Publish("c")

	tok := signals.Subscribe(recent, func(s string) { fmt.Println(s) })
	defer tok.Dispose()
	// Output:
	// B
	// C
}

func ExampleDebounce() {
	sched := signals.NewVirtualScheduler()
	query := signals.NewSource[string]()

	tok := signals.Subscribe(signals.Debounce(query, 300*time.Millisecond, sched), func(q string) {
		fmt.Println("search:", q)
	})
	defer tok.Dispose()

	for _, q := range []string{"g", "go", "gop"} {
		query.Publish(q)
		sched.Advance(100 * time.Millisecond)
	}
	sched.Advance(time.Second)
	// Output:
	// search: gop
}
