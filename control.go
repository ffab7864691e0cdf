// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Loop re-runs body as long as cond reports true, then completes with
// the unit value. It backs lowered while statements.
//
// cond is re-evaluated before every iteration and must itself be
// suspension-free; body may suspend. Each iteration crosses a [Call]
// boundary, so neither native stack depth nor retained memory grows
// with the iteration count — an iteration's transient closures become
// reclaimable once superseded.
func Loop(cond func() bool, body Cont[struct{}]) Cont[struct{}] {
	return func(onValue func(struct{}) Step, onError func(error) Step) Step {
		var iterate func() Step
		iterate = func() Step {
			more, err := try(cond)
			if err != nil {
				return onError(err)
			}
			if !more {
				return onValue(struct{}{})
			}
			return body(func(struct{}) Step {
				return Call(iterate)
			}, onError)
		}
		return Call(iterate)
	}
}

// Branch evaluates the suspension-free cond, then runs whichever of the
// two continuations was selected. It backs lowered if statements whose
// branches contain suspension points.
func Branch[A any](cond func() bool, then, els Cont[A]) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		take, err := try(cond)
		if err != nil {
			return onError(err)
		}
		branch := els
		if take {
			branch = then
		}
		return Call(func() Step {
			return branch(onValue, onError)
		})
	}
}
