// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Statement grammar for sequential blocks containing suspension points.
//
// A block is an ordered []Stmt. Values flow between statements through
// variables captured by the statement thunks: an [Await] stores its
// result into a captured local, and later thunks read it. Each
// evaluation of the lowered block re-runs every thunk, so captured
// locals belong to the enclosing closure, shared across the statements
// of one composition, never across independent evaluations of distinct
// compositions.
//
// The grammar is statement-level by construction: a suspension point
// cannot occur inside a larger expression. A source expression with
// nested awaits is therefore hoisted by the caller into fresh
// temporaries — one [Await] per marker, in left-to-right order —
// before the enclosing statement, preserving the evaluation order of
// sibling sub-expression side effects.

// Stmt is one statement of a sequential block.
// Implementations are produced by [Exec], [Await], [IfStmt],
// [WhileStmt] and [TryStmt].
type Stmt interface {
	lowerStmt() Cont[struct{}]
}

// Exec builds a plain statement: run the effect, continue with the
// remainder of the block. A panic raised by effect becomes the block's
// condition.
func Exec(effect func()) Stmt {
	return execStmt{effect: effect}
}

type execStmt struct {
	effect func()
}

func (s execStmt) lowerStmt() Cont[struct{}] {
	return Delay(func() struct{} {
		s.effect()
		return struct{}{}
	})
}

// Await builds a suspension-point statement: let x = await source().
// The source thunk is evaluated at run time — it may read variables
// bound by earlier statements — and bind stores the awaited value into
// the variable later statements read.
func Await[A any](source func() Cont[A], bind func(A)) Stmt {
	return awaitStmt[A]{source: source, bind: bind}
}

type awaitStmt[A any] struct {
	source func() Cont[A]
	bind   func(A)
}

func (s awaitStmt[A]) lowerStmt() Cont[struct{}] {
	child := Suspend(func(onValue func(A) Step, onError func(error) Step) Step {
		c, cond := try(s.source)
		if cond != nil {
			return onError(cond)
		}
		return c(onValue, onError)
	})
	return Map(child, func(a A) struct{} {
		s.bind(a)
		return struct{}{}
	})
}

// IfStmt builds a branch statement whose arms may contain suspension
// points. cond is evaluated at run time and must be suspension-free;
// either arm may be nil or empty.
func IfStmt(cond func() bool, then, els []Stmt) Stmt {
	return ifStmt{cond: cond, then: then, els: els}
}

type ifStmt struct {
	cond func() bool
	then []Stmt
	els  []Stmt
}

func (s ifStmt) lowerStmt() Cont[struct{}] {
	return Branch(s.cond, lowerSeq(s.then), lowerSeq(s.els))
}

// WhileStmt builds a loop statement whose body may contain suspension
// points. cond is re-evaluated before each iteration and must be
// suspension-free.
func WhileStmt(cond func() bool, body ...Stmt) Stmt {
	return whileStmt{cond: cond, body: body}
}

type whileStmt struct {
	cond func() bool
	body []Stmt
}

func (s whileStmt) lowerStmt() Cont[struct{}] {
	return Loop(s.cond, lowerSeq(s.body))
}

// TryStmt builds a guarded statement: run body, resolve raised
// conditions against handler, then run the finally block on both the
// success and the failure path. Conditions the handler declines keep
// propagating outward unchanged; a suspension point inside finally is
// sequenced like any other, never dropped. finally may be nil.
func TryStmt(body []Stmt, handler Catcher[struct{}], finally []Stmt) Stmt {
	return tryStmt{body: body, handler: handler, finally: finally}
}

type tryStmt struct {
	body    []Stmt
	handler Catcher[struct{}]
	finally []Stmt
}

func (s tryStmt) lowerStmt() Cont[struct{}] {
	guarded := Recover(lowerSeq(s.body), s.handler)
	if len(s.finally) == 0 {
		return guarded
	}
	return Ensure(guarded, lowerSeq(s.finally))
}
