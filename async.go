// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import "sync/atomic"

// Resumption is the one-shot handle an [Async] leaf registers with an
// external substrate. The substrate must invoke exactly one of
// [Resumption.Resolve] or [Resumption.Reject], exactly once,
// synchronously or from any later thread; the remainder of the chain
// then executes directly on the invoking thread with no hand-off.
//
// Resumption enforces affine semantics: a second use panics, because a
// leaf invoking its callbacks more than once is a defect in that leaf,
// not a condition the core recovers from. Use [Resumption.Discard] to
// abandon a resumption explicitly; a discarded or never-invoked
// resumption permanently stalls that evaluation, which is the only
// cancellation analog the core offers.
type Resumption[A any] struct {
	used    atomic.Uintptr
	onValue func(A) Step
	onError func(error) Step
}

// Resolve completes the suspended evaluation with a value and drives
// the remaining steps on the calling thread.
// Panics if the resumption has already been used.
func (r *Resumption[A]) Resolve(a A) {
	if r.used.Add(1) != 1 {
		panic("susp: resumption used twice")
	}
	Drive(Call(func() Step {
		return r.onValue(a)
	}))
}

// Reject completes the suspended evaluation with a condition and drives
// the remaining steps on the calling thread.
// Panics if the resumption has already been used.
func (r *Resumption[A]) Reject(err error) {
	if r.used.Add(1) != 1 {
		panic("susp: resumption used twice")
	}
	Drive(Call(func() Step {
		return r.onError(err)
	}))
}

// TryResolve attempts to complete with a value.
// Returns false if the resumption has already been used.
func (r *Resumption[A]) TryResolve(a A) bool {
	if r.used.Add(1) != 1 {
		return false
	}
	Drive(Call(func() Step {
		return r.onValue(a)
	}))
	return true
}

// TryReject attempts to complete with a condition.
// Returns false if the resumption has already been used.
func (r *Resumption[A]) TryReject(err error) bool {
	if r.used.Add(1) != 1 {
		return false
	}
	Drive(Call(func() Step {
		return r.onError(err)
	}))
	return true
}

// Discard marks the resumption as used without completing it.
func (r *Resumption[A]) Discard() {
	r.used.Store(1)
}

// Async creates a leaf continuation backed by an external callback
// substrate. On every run, register receives a fresh [Resumption] to
// wire into whatever external API the leaf wraps — a timer, an I/O
// completion callback, a UI event — and the run returns [Done]
// immediately: no thread blocks waiting for the resumption.
//
// register may also complete the resumption synchronously before
// returning, in which case the rest of the chain runs inline.
// A panic raised by register before the resumption is used becomes the
// leaf's condition; after the resumption is used it is rethrown, since
// the single allowed callback has already fired.
func Async[A any](register func(r *Resumption[A])) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) (s Step) {
		r := &Resumption[A]{onValue: onValue, onError: onError}
		defer func() {
			if v := recover(); v != nil {
				if r.used.Add(1) == 1 {
					s = onError(asCondition(v))
					return
				}
				panic(v)
			}
		}()
		register(r)
		return Done()
	}
}
