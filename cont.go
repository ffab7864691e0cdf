// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import "fmt"

// Cont represents a lazy asynchronous computation producing a value of
// type A or raising a condition.
//
// Invoking a Cont with a success callback and a failure callback
// produces one trampoline [Step]. A well-formed Cont invokes exactly
// one of the two callbacks, exactly once per invocation — synchronously
// before returning, or via at most one later externally-triggered
// callback (see [Async]).
//
// Cont values are stateless: no result is cached, no completion flag is
// kept. Two invocations are two independent evaluations re-running all
// underlying side effects.
type Cont[A any] func(onValue func(A) Step, onError func(error) Step) Step

// Pure lifts a value into a continuation.
// The resulting computation immediately passes the value to onValue.
func Pure[A any](a A) Cont[A] {
	return func(onValue func(A) Step, _ func(error) Step) Step {
		return onValue(a)
	}
}

// Raise lifts a condition into a continuation.
// The resulting computation immediately passes the condition to onError.
func Raise[A any](err error) Cont[A] {
	return func(_ func(A) Step, onError func(error) Step) Step {
		return onError(err)
	}
}

// Delay creates a continuation from an effectful thunk.
// The thunk is re-evaluated on every run; a panic raised by the thunk
// is converted to a condition and redirected to onError.
func Delay[A any](f func() A) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		a, err := try(f)
		if err != nil {
			return onError(err)
		}
		return onValue(a)
	}
}

// Fail creates a continuation from an effectful thunk that may fail.
// Like [Delay], but the thunk reports failure as an ordinary error
// return rather than a panic.
func Fail[A any](f func() (A, error)) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		a, err := tryFail(f)
		if err != nil {
			return onError(err)
		}
		return onValue(a)
	}
}

// Suspend creates a continuation from a raw run function.
// This is the primitive constructor for combinator authors that need
// direct access to both callbacks. The run function must satisfy the
// [Cont] contract: exactly one callback, exactly once per invocation.
func Suspend[A any](run func(onValue func(A) Step, onError func(error) Step) Step) Cont[A] {
	return Cont[A](run)
}

// PanicError is the condition produced when a combinator's panic
// barrier recovers a non-error panic value.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("susp: recovered panic: %v", e.Value)
}

// asCondition converts a recovered panic value into a condition.
// Error panics pass through unchanged so that errors.Is matching in
// catchers keeps working; other values are wrapped in [*PanicError].
func asCondition(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// try evaluates a user-supplied function behind the panic barrier.
// Combinators use it to keep run exception-transparent: any failure
// raised while constructing a step becomes a condition for onError
// instead of escaping as a native fault.
func try[T any](f func() T) (v T, cond error) {
	defer func() {
		if r := recover(); r != nil {
			cond = asCondition(r)
		}
	}()
	return f(), nil
}

// tryFail is the panic barrier for user functions that already return
// an error.
func tryFail[T any](f func() (T, error)) (v T, cond error) {
	defer func() {
		if r := recover(); r != nil {
			cond = asCondition(r)
		}
	}()
	return f()
}
