// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Step is one unit of trampolined work. A Step is either terminal
// (constructed by [Done]) or deferred (constructed by [Call]).
//
// Steps are produced by continuation run functions and consumed
// exclusively by [Drive]. Combinator authors construct Steps but never
// inspect them.
type Step struct {
	thunk func() Step
}

// Done builds the terminal step: no further work.
func Done() Step {
	return Step{}
}

// Call builds a deferred step that, when driven, evaluates thunk to
// obtain the next step.
//
// Every combinator that recurses across a suspension or loop boundary
// must wrap the recursive run call in Call. This is what keeps native
// stack depth bounded independent of chain length and iteration count.
func Call(thunk func() Step) Step {
	return Step{thunk: thunk}
}
