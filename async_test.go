// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/susp"
)

// A leaf deferring completion must not fire the terminal callback
// before the external trigger, and must fire it exactly once after.
func TestAsyncSuspensionTransparency(t *testing.T) {
	var pending *susp.Resumption[int]
	leaf := susp.Async(func(r *susp.Resumption[int]) {
		pending = r
	})

	fired := 0
	var got int
	susp.Foreach(susp.Map(leaf, func(x int) int { return x + 1 }), func(v int) {
		fired++
		got = v
	}, susp.Catcher[int]{})

	require.NotNil(t, pending, "leaf must have registered a resumption")
	assert.Equal(t, 0, fired, "terminal fired before external trigger")

	pending.Resolve(41)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 42, got)
}

func TestAsyncRejectPropagates(t *testing.T) {
	boom := errors.New("boom")
	var pending *susp.Resumption[int]
	leaf := susp.Async(func(r *susp.Resumption[int]) {
		pending = r
	})

	var got int
	susp.Foreach(leaf, func(v int) { got = v }, susp.Catcher[int]{}.
		OnIs(boom, func(error) susp.Cont[int] { return susp.Pure(-1) }))

	pending.Reject(boom)
	assert.Equal(t, -1, got)
}

func TestResumptionSecondUsePanics(t *testing.T) {
	var pending *susp.Resumption[int]
	susp.Foreach(susp.Async(func(r *susp.Resumption[int]) {
		pending = r
	}), func(int) {}, susp.Catcher[int]{})

	pending.Resolve(1)
	assert.PanicsWithValue(t, "susp: resumption used twice", func() {
		pending.Resolve(2)
	})
}

func TestResumptionTryVariants(t *testing.T) {
	var pending *susp.Resumption[int]
	fired := 0
	susp.Foreach(susp.Async(func(r *susp.Resumption[int]) {
		pending = r
	}), func(int) { fired++ }, susp.Catcher[int]{})

	assert.True(t, pending.TryResolve(1))
	assert.False(t, pending.TryResolve(2))
	assert.False(t, pending.TryReject(errors.New("late")))
	assert.Equal(t, 1, fired)
}

// A discarded resumption permanently stalls the evaluation: the only
// cancellation analog the core offers.
func TestResumptionDiscardStalls(t *testing.T) {
	var pending *susp.Resumption[int]
	fired := 0
	susp.Foreach(susp.Async(func(r *susp.Resumption[int]) {
		pending = r
	}), func(int) { fired++ }, susp.Catcher[int]{})

	pending.Discard()
	assert.False(t, pending.TryResolve(1))
	assert.Equal(t, 0, fired)
}

func TestAsyncRegisterPanicBecomesCondition(t *testing.T) {
	boom := errors.New("register failed")
	leaf := susp.Async[int](func(*susp.Resumption[int]) {
		panic(boom)
	})
	assert.ErrorIs(t, eval(leaf).cond, boom)
}

func TestAsyncSynchronousCompletion(t *testing.T) {
	o := eval(leafImmediate(7))
	require.NoError(t, o.cond)
	assert.Equal(t, 7, o.value)
	assert.Equal(t, 1, o.calls)
}

// Combinator logic after a cross-thread resumption executes directly on
// the resuming goroutine; the composed chain still completes exactly
// once per evaluation.
func TestAsyncResumeFromOtherGoroutine(t *testing.T) {
	leaf := susp.Async(func(r *susp.Resumption[int]) {
		go r.Resolve(20)
	})
	chain := susp.FlatMap(leaf, func(x int) susp.Cont[int] {
		return susp.Pure(x * 2)
	})

	done := make(chan int, 1)
	susp.Foreach(chain, func(v int) {
		done <- v
	}, susp.Catcher[int]{})

	assert.Equal(t, 40, <-done)
}

// Re-evaluating registers a fresh resumption per run; independent
// evaluations share nothing.
func TestAsyncIndependentEvaluations(t *testing.T) {
	var mu sync.Mutex
	var registered []*susp.Resumption[int]
	leaf := susp.Async(func(r *susp.Resumption[int]) {
		mu.Lock()
		registered = append(registered, r)
		mu.Unlock()
	})

	results := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		susp.Foreach(leaf, func(v int) {
			results = append(results, v)
		}, susp.Catcher[int]{})
	}

	require.Len(t, registered, 2)
	require.NotSame(t, registered[0], registered[1])
	registered[1].Resolve(2)
	registered[0].Resolve(1)
	assert.Equal(t, []int{2, 1}, results)
}
