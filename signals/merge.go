package signals

type merged[T any] struct {
	upstreams []Signal[T]
}

// Merge forwards the values of every upstream as they arrive. Ordering across
// upstreams is whatever the upstreams produce.
func Merge[T any](upstreams ...Signal[T]) Signal[T] {
	for _, up := range upstreams {
		mustSignal(up)
	}
	return &merged[T]{upstreams: upstreams}
}

func (m *merged[T]) Listen(owner Owner, fn func(T)) Token {
	tokens := make([]Token, 0, len(m.upstreams))
	for _, up := range m.upstreams {
		tokens = append(tokens, up.Listen(owner, fn))
	}
	return newBag(tokens...)
}

type mergeMapped[In, Out any] struct {
	upstream Signal[In]
	fn       func(In) Signal[Out]
}

// MergeMap subscribes to the signal fn returns for each upstream value and
// forwards everything those inner signals emit. Inner subscriptions stay
// alive until the returned token is disposed; a new upstream value never
// cancels an earlier inner signal.
func MergeMap[In, Out any](s Signal[In], fn func(In) Signal[Out]) Signal[Out] {
	mustSignal(s)
	return &mergeMapped[In, Out]{upstream: s, fn: fn}
}

func (m *mergeMapped[In, Out]) Listen(owner Owner, fn func(Out)) Token {
	owner = holdWeakly(owner)
	bag := newBag()
	outer := m.upstream.Listen(owner, func(v In) {
		inner := m.fn(v)
		if !bag.Alive() {
			return
		}
		bag.Add(SubscribeWith(inner, owner, fn))
	})
	bag.Add(outer)
	return bag
}
