// Package signals is a small push-based event stream library.
//
// A Signal produces values and pushes them to listeners. Sources are
// published to by hand, Tasks resolve once and Just is resolved from the
// start. Operators such as Map, Filter, Distinct, Replay, Merge, Combine2,
// Zip2, Debounce and MergeMap build new signals from existing ones:
//
//	src := signals.NewSource[int]()
//	evens := signals.Filter(src, func(v int) bool { return v%2 == 0 })
//	tok := signals.Subscribe(signals.Map(evens, strconv.Itoa), func(s string) {
//		fmt.Println(s)
//	})
//	defer tok.Dispose()
//
//	src.Publish(2) // prints "2"
//
// Delivery is synchronous on the publishing goroutine, most recent subscriber
// first. Every subscription returns a Token; disposing it unsubscribes. A Bag
// groups tokens, and one made with NewBag is also disposed when it is garbage
// collected. Subscriptions made with SubscribeWith are dropped once their
// Owner reports it is no longer alive.
package signals
