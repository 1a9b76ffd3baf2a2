package seq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmingruby/lazyseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExhaustionIsTerminal(t *testing.T) {
	sess := seq.FromSlice([]int{1, 2}).Session()

	first, ok := sess.Next().Value()
	require.True(t, ok)
	require.Equal(t, 1, first)
	second, ok := sess.Next().Value()
	require.True(t, ok)
	require.Equal(t, 2, second)
	require.False(t, sess.Next().Ok())

	for range 5 {
		assert.False(t, sess.Next().Ok(), "exhausted session must stay exhausted")
	}
	assert.NoError(t, sess.Err())
}

func TestSessionErrIsSticky(t *testing.T) {
	boom := errors.New("boom")
	s := seq.TryMap(seq.FromSlice([]int{1, 2, 3}), func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v * 10, nil
	})
	sess := s.Session()

	first, ok := sess.Next().Value()
	require.True(t, ok)
	require.Equal(t, 10, first)
	require.NoError(t, sess.Err())

	require.False(t, sess.Next().Ok())
	require.ErrorIs(t, sess.Err(), boom)

	for range 3 {
		assert.False(t, sess.Next().Ok())
		assert.ErrorIs(t, sess.Err(), boom)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s := seq.FromSlice([]int{1, 2, 3})
	a := s.Session()
	b := s.Session()

	av, _ := a.Next().Value()
	av2, _ := a.Next().Value()
	bv, _ := b.Next().Value()
	require.Equal(t, 1, av)
	require.Equal(t, 2, av2)
	require.Equal(t, 1, bv, "each session owns its own cursor")
}

func TestZeroSeqIsEmpty(t *testing.T) {
	var s seq.Seq[string]
	sess := s.Session()
	require.False(t, sess.Next().Ok())
	require.NoError(t, sess.Err())
}

func TestStepAccessors(t *testing.T) {
	y := seq.Yield(7)
	require.True(t, y.Ok())
	v, ok := y.Value()
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, 7, y.UnsafeValue())
	require.Equal(t, "Yield(7)", y.String())

	opt, ok := y.ToOption().Get()
	require.True(t, ok)
	require.Equal(t, 7, opt)

	d := seq.Done[int]()
	require.False(t, d.Ok())
	require.Equal(t, "Done", d.String())
	require.True(t, d.ToOption().IsNone())
	require.Panics(t, func() { d.UnsafeValue() })
}

func TestCoroutineObservesResumeValues(t *testing.T) {
	echo := seq.Coroutine(func(resume any) (string, bool) {
		if resume == nil {
			return "ready", true
		}
		return fmt.Sprintf("got %v", resume), true
	})
	sess := echo.Session()

	first, _ := sess.Next().Value()
	require.Equal(t, "ready", first)
	second, _ := sess.Send(42).Value()
	require.Equal(t, "got 42", second)
	third, _ := sess.Next().Value()
	require.Equal(t, "ready", third, "Next forwards a nil resume value")
}

func TestSendOnOneWaySourceIsNoOp(t *testing.T) {
	sess := seq.FromSlice([]int{1, 2}).Session()
	v, ok := sess.Send("ignored").Value()
	require.True(t, ok)
	require.Equal(t, 1, v)
}
