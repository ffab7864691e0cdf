// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Foreach is the terminal trigger: it starts one evaluation of an
// otherwise-inert chain and drives it through the trampoline.
//
// On success, effect observes the value. On failure, the catcher is the
// outermost handler: a matched clause's replacement value is observed
// by effect like any other result; a declined condition — or a failure
// raised by the replacement itself — panics as an observable
// unhandled-condition failure.
//
// Because continuations are stateless, calling Foreach twice performs
// the whole computation twice.
func Foreach[A any](m Cont[A], effect func(A), c Catcher[A]) {
	r := Recover(m, c)
	Drive(Call(func() Step {
		return r(func(a A) Step {
			effect(a)
			return Done()
		}, func(err error) Step {
			unhandledCondition(err)
			return Done()
		})
	}))
}
