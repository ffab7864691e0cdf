// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Recover wraps a continuation with a local condition boundary.
// When m raises a condition, the catcher is tried first: on a match the
// clause's handling continuation replaces the failed computation; on a
// decline the unchanged condition is forwarded to the boundary supplied
// by Recover's own caller.
//
// Nesting Recover therefore yields innermost-first resolution, and a
// matched clause is invoked at most once per condition.
func Recover[A any](m Cont[A], c Catcher[A]) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		return m(onValue, func(err error) Step {
			return Call(func() Step {
				h, ok, cond := tryHandle(c, err)
				if cond != nil {
					return onError(cond)
				}
				if !ok {
					return onError(err)
				}
				return h(onValue, onError)
			})
		})
	}
}
