// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Resource safety combinators built from FlatMap and Recover.
// Cleanup continuations may themselves suspend; a suspension point
// inside a cleanup block is sequenced, never dropped.

// Ensure runs cleanup after body on both the success and the failure
// path, then completes with body's outcome.
//
// When body fails, cleanup runs and the original condition is re-raised
// afterwards. When cleanup itself fails, its condition wins — it is the
// later failure — replacing body's outcome on either path.
func Ensure[A any](body Cont[A], cleanup Cont[struct{}]) Cont[A] {
	guarded := Recover(body, CatchAll(func(err error) Cont[A] {
		return Then(cleanup, Raise[A](err))
	}))
	return FlatMap(guarded, func(a A) Cont[A] {
		return Map(cleanup, func(struct{}) A { return a })
	})
}

// OnError runs cleanup only when body fails, then re-raises the
// original condition. The condition is passed to cleanup so that
// failure-specific compensation can inspect it.
func OnError[A any](body Cont[A], cleanup func(error) Cont[struct{}]) Cont[A] {
	return Recover(body, CatchAll(func(err error) Cont[A] {
		return Then(cleanup(err), Raise[A](err))
	}))
}

// Bracket acquires a resource, uses it, and releases it with the
// release guaranteed on both paths: acquire → use → release.
// The release continuation for a given resource runs exactly once per
// evaluation, whether use succeeds or fails.
func Bracket[R, A any](
	acquire Cont[R],
	release func(R) Cont[struct{}],
	use func(R) Cont[A],
) Cont[A] {
	return FlatMap(acquire, func(res R) Cont[A] {
		return Ensure(FlatMap(Pure(res), use), release(res))
	})
}
