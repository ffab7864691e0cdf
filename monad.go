// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Monad operations for continuations.
//
// Minimal definition: Pure (unit) and FlatMap are necessary and
// sufficient. Map and Then are derived operations kept as optimizations
// to avoid intermediate continuation allocations.

// FlatMap sequences two continuations (monadic bind).
// It runs m, then passes the result to f to obtain the continuation to
// run next. The inner run is wrapped in [Call] so that chains built
// inside loops stay stack-bounded.
//
// A panic raised by f is redirected to onError.
func FlatMap[A, B any](m Cont[A], f func(A) Cont[B]) Cont[B] {
	return func(onValue func(B) Step, onError func(error) Step) Step {
		return m(func(a A) Step {
			return Call(func() Step {
				next, cond := try(func() Cont[B] { return f(a) })
				if cond != nil {
					return onError(cond)
				}
				return next(onValue, onError)
			})
		}, onError)
	}
}

// Map applies a pure function to the result of a continuation.
//
// Allocation note: Map is equivalent to FlatMap(m, compose(Pure, f))
// but avoids the intermediate Pure continuation and the [Call] hop,
// making it the preferred choice when the transformation cannot itself
// suspend.
func Map[A, B any](m Cont[A], f func(A) B) Cont[B] {
	return func(onValue func(B) Step, onError func(error) Step) Step {
		return m(func(a A) Step {
			b, cond := try(func() B { return f(a) })
			if cond != nil {
				return onError(cond)
			}
			return onValue(b)
		}, onError)
	}
}

// Then sequences two continuations, discarding the first result.
// This is more efficient than FlatMap when the second computation does
// not depend on the first result; laziness is preserved because n is
// not run until m has completed.
func Then[A, B any](m Cont[A], n Cont[B]) Cont[B] {
	return func(onValue func(B) Step, onError func(error) Step) Step {
		return m(func(A) Step {
			return Call(func() Step {
				return n(onValue, onError)
			})
		}, onError)
	}
}

// MapError applies a function to the condition of a failed
// continuation. Successful results pass through unchanged.
func MapError[A any](m Cont[A], f func(error) error) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		return m(onValue, func(err error) Step {
			mapped, cond := try(func() error { return f(err) })
			if cond != nil {
				return onError(cond)
			}
			return onError(mapped)
		})
	}
}
