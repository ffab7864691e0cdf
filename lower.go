// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Lower rewrites a sequential block with suspension points into one
// continuation. Evaluating that continuation performs the statements in
// original order, suspending at each [Await] without blocking a thread,
// and finally evaluates the result thunk to produce the block's value.
//
// build plays the role of a function activation: it runs once per
// evaluation, declaring the block's local variables and returning the
// statements that capture them plus the result thunk. Because every run
// re-invokes build, independent evaluations of the lowered continuation
// own independent copies of those locals and share no state.
//
// The rewrite is a value-level transform over the statement grammar:
//
//	plain statement   → sequential composition (Then)
//	await             → FlatMap on the child continuation
//	if                → Branch over independently lowered arms
//	while             → Loop over the lowered body
//	try/catch/finally → Recover plus Ensure
func Lower[A any](build func() (stmts []Stmt, result func() A)) Cont[A] {
	return func(onValue func(A) Step, onError func(error) Step) Step {
		c, cond := try(func() Cont[A] {
			stmts, result := build()
			return Then(lowerSeq(stmts), Delay(result))
		})
		if cond != nil {
			return onError(cond)
		}
		return c(onValue, onError)
	}
}

// lowerSeq folds a statement list into one unit continuation,
// preserving statement order across suspension points.
func lowerSeq(stmts []Stmt) Cont[struct{}] {
	if len(stmts) == 0 {
		return Pure(struct{}{})
	}
	c := stmts[0].lowerStmt()
	for _, s := range stmts[1:] {
		c = Then(c, s.lowerStmt())
	}
	return c
}
