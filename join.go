// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import "sync/atomic"

// Parallel and racing composition. Both guarantee only that the
// combined result reflects completion of the branches; side effects of
// the two branches are not ordered relative to each other. Whichever
// thread delivers the deciding completion continues the outer chain
// directly — no lock, no hand-off.

// Pair is the result tuple of [Both].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both runs two continuations within one evaluation and completes with
// both results once the later branch finishes. The first condition
// raised by either branch decides the outcome; the other branch's
// eventual completion is then discarded.
func Both[A, B any](ma Cont[A], mb Cont[B]) Cont[Pair[A, B]] {
	return func(onValue func(Pair[A, B]) Step, onError func(error) Step) Step {
		j := &join[A, B]{onValue: onValue, onError: onError}
		j.pending.Store(2)
		Drive(Call(func() Step {
			return ma(j.left, j.fail)
		}))
		return Call(func() Step {
			return mb(j.right, j.fail)
		})
	}
}

type join[A, B any] struct {
	pending atomic.Int32
	failed  atomic.Uintptr
	first   A
	second  B
	onValue func(Pair[A, B]) Step
	onError func(error) Step
}

func (j *join[A, B]) left(a A) Step {
	j.first = a
	return j.complete()
}

func (j *join[A, B]) right(b B) Step {
	j.second = b
	return j.complete()
}

// complete fires onValue from the branch whose decrement drains the
// counter. The Add provides the release/acquire pairing that makes the
// other branch's field write visible here.
func (j *join[A, B]) complete() Step {
	if j.pending.Add(-1) != 0 {
		return Done()
	}
	return Call(func() Step {
		return j.onValue(Pair[A, B]{First: j.first, Second: j.second})
	})
}

// fail forwards the first condition; a failed branch never decrements
// pending, so onValue cannot fire afterwards.
func (j *join[A, B]) fail(err error) Step {
	if j.failed.Add(1) != 1 {
		return Done()
	}
	return Call(func() Step {
		return j.onError(err)
	})
}

// Race runs two continuations within one evaluation and completes with
// the outcome — value or condition — of whichever branch finishes
// first. The loser's eventual completion is discarded.
func Race[A any](ma, mb Cont[A]) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		r := &race[A]{onValue: onValue, onError: onError}
		Drive(Call(func() Step {
			return ma(r.win, r.lose)
		}))
		return Call(func() Step {
			return mb(r.win, r.lose)
		})
	}
}

type race[A any] struct {
	decided atomic.Uintptr
	onValue func(A) Step
	onError func(error) Step
}

func (r *race[A]) win(a A) Step {
	if r.decided.Add(1) != 1 {
		return Done()
	}
	return Call(func() Step {
		return r.onValue(a)
	})
}

func (r *race[A]) lose(err error) Step {
	if r.decided.Add(1) != 1 {
		return Done()
	}
	return Call(func() Step {
		return r.onError(err)
	})
}
