// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import "errors"

// Catcher is an ordered partial mapping from raised condition to
// handling continuation. Handlers are threaded through combinators as
// explicit parameters, never resolved from ambient or thread-local
// state, so resolution order is purely lexical: nearest-to-failure
// catchers see a condition first, first matching clause wins, and a
// given condition is resolved by at most one clause.
//
// A Catcher declines a condition when no clause matches; the condition
// must then propagate unchanged to the boundary supplied by the caller.
//
// Catcher has value semantics. The zero value is an empty catcher that
// declines everything; [Catcher.On] and friends return extended copies
// and never mutate the receiver.
type Catcher[A any] struct {
	clauses []catchClause[A]
}

type catchClause[A any] struct {
	match  func(error) bool
	handle func(error) Cont[A]
}

// On appends a clause matching conditions for which match reports true.
// The returned catcher tries existing clauses first.
func (c Catcher[A]) On(match func(error) bool, handle func(error) Cont[A]) Catcher[A] {
	clauses := c.clauses[:len(c.clauses):len(c.clauses)]
	return Catcher[A]{clauses: append(clauses, catchClause[A]{match: match, handle: handle})}
}

// OnIs appends a clause matching conditions for which
// errors.Is(cond, target) reports true.
func (c Catcher[A]) OnIs(target error, handle func(error) Cont[A]) Catcher[A] {
	return c.On(func(err error) bool { return errors.Is(err, target) }, handle)
}

// OrElse composes two catchers lexically: the receiver's clauses are
// tried first, then other's. Equivalent to appending other's clauses
// one by one with [Catcher.On].
func (c Catcher[A]) OrElse(other Catcher[A]) Catcher[A] {
	clauses := c.clauses[:len(c.clauses):len(c.clauses)]
	return Catcher[A]{clauses: append(clauses, other.clauses...)}
}

// CatchAll builds a single-clause catcher matching every condition.
func CatchAll[A any](handle func(error) Cont[A]) Catcher[A] {
	return Catcher[A]{}.On(func(error) bool { return true }, handle)
}

// Handles reports whether some clause matches the condition.
func (c Catcher[A]) Handles(err error) bool {
	for _, cl := range c.clauses {
		if cl.match(err) {
			return true
		}
	}
	return false
}

// Handle resolves a condition against the clause list in order.
// It returns the first matching clause's handling continuation, or
// (nil, false) if the catcher declines.
func (c Catcher[A]) Handle(err error) (Cont[A], bool) {
	for _, cl := range c.clauses {
		if cl.match(err) {
			return cl.handle(err), true
		}
	}
	return nil, false
}

// tryHandle resolves a condition behind the panic barrier.
// A panic raised by a predicate or by clause construction surfaces as
// a replacement condition instead of a native fault.
func tryHandle[A any](c Catcher[A], err error) (h Cont[A], ok bool, cond error) {
	defer func() {
		if r := recover(); r != nil {
			h, ok = nil, false
			cond = asCondition(r)
		}
	}()
	h, ok = c.Handle(err)
	return h, ok, nil
}
