// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/susp"
)

var (
	errTimeout = errors.New("timeout")
	errRefused = errors.New("refused")
)

func TestCatcherZeroValueDeclines(t *testing.T) {
	var c susp.Catcher[int]
	assert.False(t, c.Handles(errTimeout))
	_, ok := c.Handle(errTimeout)
	assert.False(t, ok)
}

func TestCatcherFirstMatchWins(t *testing.T) {
	c := susp.Catcher[int]{}.
		OnIs(errTimeout, func(error) susp.Cont[int] { return susp.Pure(1) }).
		On(func(error) bool { return true }, func(error) susp.Cont[int] { return susp.Pure(2) })

	h, ok := c.Handle(errTimeout)
	require.True(t, ok)
	assert.Equal(t, 1, eval(h).value)

	h, ok = c.Handle(errRefused)
	require.True(t, ok)
	assert.Equal(t, 2, eval(h).value)
}

func TestCatcherOnIsMatchesWrapped(t *testing.T) {
	c := susp.Catcher[int]{}.OnIs(errTimeout, func(error) susp.Cont[int] {
		return susp.Pure(1)
	})
	wrapped := errors.Join(errors.New("outer"), errTimeout)
	assert.True(t, c.Handles(wrapped))
}

func TestCatcherOrElseOrder(t *testing.T) {
	inner := susp.Catcher[int]{}.OnIs(errTimeout, func(error) susp.Cont[int] {
		return susp.Pure(10)
	})
	outer := susp.CatchAll(func(error) susp.Cont[int] {
		return susp.Pure(20)
	})
	c := inner.OrElse(outer)

	h, ok := c.Handle(errTimeout)
	require.True(t, ok)
	assert.Equal(t, 10, eval(h).value, "receiver clauses must be tried first")

	h, ok = c.Handle(errRefused)
	require.True(t, ok)
	assert.Equal(t, 20, eval(h).value)
}

// On returns an extended copy; appending to a shared prefix must not
// alias the original's clause storage.
func TestCatcherValueSemantics(t *testing.T) {
	base := susp.Catcher[int]{}.OnIs(errTimeout, func(error) susp.Cont[int] {
		return susp.Pure(1)
	})
	a := base.OnIs(errRefused, func(error) susp.Cont[int] { return susp.Pure(2) })
	b := base.On(func(error) bool { return true }, func(error) susp.Cont[int] { return susp.Pure(3) })

	assert.False(t, base.Handles(errRefused))

	h, ok := a.Handle(errRefused)
	require.True(t, ok)
	assert.Equal(t, 2, eval(h).value)

	h, ok = b.Handle(errRefused)
	require.True(t, ok)
	assert.Equal(t, 3, eval(h).value)
}

func TestCatchAll(t *testing.T) {
	c := susp.CatchAll(func(err error) susp.Cont[string] {
		return susp.Pure("handled: " + err.Error())
	})
	h, ok := c.Handle(errRefused)
	require.True(t, ok)
	assert.Equal(t, "handled: refused", eval(h).value)
}
