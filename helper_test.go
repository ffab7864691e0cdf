// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"code.hybscloud.com/susp"
)

// outcome records the terminal callbacks of one evaluation.
type outcome[A any] struct {
	value A
	cond  error
	calls int
}

// eval starts one evaluation and drives it through the trampoline.
// For chains that complete synchronously, the outcome is final on
// return; asynchronous tests manage their own resumption triggers.
func eval[A any](m susp.Cont[A]) *outcome[A] {
	o := &outcome[A]{}
	susp.Drive(susp.Call(func() susp.Step {
		return m(func(a A) susp.Step {
			o.value = a
			o.calls++
			return susp.Done()
		}, func(err error) susp.Step {
			o.cond = err
			o.calls++
			return susp.Done()
		})
	}))
	return o
}

// leafImmediate is a substrate-backed leaf that completes synchronously
// from within its registration call.
func leafImmediate(v int) susp.Cont[int] {
	return susp.Async(func(r *susp.Resumption[int]) {
		r.Resolve(v)
	})
}
