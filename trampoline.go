// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Drive executes a step chain to completion.
// It iteratively replaces each deferred step with the step its thunk
// produces, until reaching a terminal step. The loop runs with O(1)
// amortized native stack depth regardless of chain length.
func Drive(s Step) {
	for s.thunk != nil {
		s = s.thunk()
	}
}

// unhandledCondition panics with a descriptive message for conditions
// that even the outermost supplied handler declined. A declined
// outermost condition is an observable failure, never silently dropped.
// Extracted as a noinline function so that terminal callbacks remain
// inlineable.
//
//go:noinline
func unhandledCondition(err error) {
	panic("susp: unhandled condition: " + err.Error())
}
