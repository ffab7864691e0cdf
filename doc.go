// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package susp composes callback-driven asynchronous operations into a
// single deterministic control flow without committing to any thread
// pool, event loop or executor, and without blocking a thread while
// waiting.
//
// The core type [Cont] is a lazy computation that, given a success
// callback and a failure callback, produces one trampoline [Step].
// Combinators wire child callbacks into their own, failure handlers are
// threaded explicitly as [Catcher] parameters, and [Lower] rewrites
// sequential blocks containing suspension points into combinator trees
// — an await lowering performed as a value-level transform instead of a
// compiler pass.
//
// # Design Philosophy
//
// susp provides:
//   - Stateless, lazily-evaluated continuations: no memoization, no
//     completion flags; every evaluation re-runs all side effects
//   - Explicit handler threading: condition resolution order is purely
//     lexical, never dependent on which thread resumes a callback
//   - Trampolined execution: chained suspensions and loop iterations
//     cross [Call] boundaries, bounding native stack depth
//     independently of chain length and iteration count
//
// # Trampoline
//
// [Step] is the tagged unit of deferred work, driven iteratively:
//
//   - [Done]: terminal step, no further work
//   - [Call]: deferred step wrapping a thunk
//   - [Drive]: iterative driver, O(1) amortized native stack depth
//
// # Continuation Core
//
// Cont[A] exposes exactly one operation — invoking it with the two
// callbacks — and may complete synchronously or defer completion to an
// externally-triggered callback. Constructors:
//
//   - [Pure]: immediate success
//   - [Raise]: immediate failure
//   - [Delay]: effectful thunk, re-evaluated per run
//   - [Fail]: effectful thunk with an error return
//   - [Suspend]: raw run function, for combinator authors
//   - [Async]: leaf backed by an external callback substrate
//
// Combinators keep run exception-transparent: a panic raised by a user
// function while a step is being constructed is converted to a
// condition (wrapping non-error values in [*PanicError]) and redirected
// to the failure callback, never allowed to escape as a native fault.
//
// # Handler Chain
//
// [Catcher] is an ordered list of (predicate, handling continuation)
// clauses with value semantics:
//
//   - [Catcher.On], [Catcher.OnIs]: append a clause
//   - [CatchAll]: match everything
//   - [Catcher.OrElse]: lexical chaining, receiver first
//   - [Catcher.Handle], [Catcher.Handles]: resolution, first match wins
//
// A catcher that matches no clause declines, and the condition
// propagates unchanged to the enclosing boundary. Nearest-to-failure
// catchers resolve first; a condition is handled by at most one clause.
//
// # Combinators
//
//   - [Map], [FlatMap], [Then]: sequencing and transformation
//   - [MapError]: condition transformation
//   - [Recover]: local condition boundary over a [Catcher]
//   - [Loop]: while-loop construct, constant stack and memory per
//     iteration
//   - [Branch]: branch on a suspension-free condition
//   - [Ensure], [OnError], [Bracket]: cleanup on both paths, on the
//     failure path only, and bracketed resource use
//   - [Both], [Race]: parallel and racing composition; results reflect
//     branch completion, branch side effects are unordered
//   - [Foreach]: terminal trigger starting one evaluation
//
// # Substrate Boundary
//
// An [Async] leaf registers exactly one [Resumption] per run with
// whatever external API it wraps and returns immediately; the external
// scheduler later invokes [Resumption.Resolve] or [Resumption.Reject]
// exactly once, from any thread, and the rest of the chain executes
// directly on that thread. Resumptions are affine: a second use panics,
// and [Resumption.TryResolve]/[Resumption.TryReject] are the
// non-panicking variants. Never invoking a resumption permanently
// stalls that evaluation; that is the only cancellation analog — the
// core performs no timeout and no automatic cleanup.
//
// # Await Lowering
//
// The statement grammar ([Exec], [Await], [IfStmt], [WhileStmt],
// [TryStmt]) expresses sequential code whose statements may suspend.
// [Lower] rewrites a block into one continuation with ordinary
// sequential semantics, including variable capture and mutation across
// suspension boundaries. The block builder passed to Lower runs once
// per evaluation, so independent runs own independent copies of the
// captured locals. Suspension points nested inside larger expressions
// are hoisted by the caller into fresh temporaries in left-to-right
// order before the enclosing statement.
//
// # Example
//
//	c := susp.Lower(func() ([]susp.Stmt, func() int) {
//		var x int
//		stmts := []susp.Stmt{
//			susp.Await(func() susp.Cont[int] { return susp.Pure(5) },
//				func(v int) { x = v }),
//		}
//		return stmts, func() int { return x + 1 }
//	})
//
//	susp.Foreach(c, func(v int) {
//		fmt.Println(v) // 6
//	}, susp.Catcher[int]{})
package susp
