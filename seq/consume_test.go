package seq_test

import (
	"strconv"
	"testing"

	"github.com/charmingruby/lazyseq/seq"
	"github.com/stretchr/testify/require"
)

func TestCollectEmpty(t *testing.T) {
	values, err := seq.Collect(seq.Empty[int]())
	require.NoError(t, err)
	require.NotNil(t, values)
	require.Empty(t, values)
}

func TestCollectResult(t *testing.T) {
	ok := seq.CollectResult(seq.Of(1, 2))
	values, err := ok.Unwrap()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, values)

	failing := seq.CollectResult(seq.TryMap(seq.Of("x"), strconv.Atoi))
	require.True(t, failing.IsErr())
}

func TestFold(t *testing.T) {
	sum, err := seq.Fold(seq.FromSlice([]int{1, 2, 3, 4}), 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, 10, sum)
}

func TestReduce(t *testing.T) {
	largest, ok, err := seq.Reduce(seq.Of(3, 1, 4, 1, 5), func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, largest)

	_, ok, err = seq.Reduce(seq.Empty[int](), func(a, _ int) int { return a })
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFindShortCircuits(t *testing.T) {
	pulls := 0
	found, err := seq.Find(spy([]int{1, 2, 3, 4}, &pulls), func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	v, ok := found.Get()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, pulls, "find must stop pulling at the first match")

	missing, err := seq.Find(seq.Of(1, 3), func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	require.True(t, missing.IsNone())
}

func TestAnyAll(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	anyEven, err := seq.Any(seq.Of(1, 2, 3), even)
	require.NoError(t, err)
	require.True(t, anyEven)

	all, err := seq.All(seq.Of(2, 4), even)
	require.NoError(t, err)
	require.True(t, all)

	all, err = seq.All(seq.Of(2, 3, 4), even)
	require.NoError(t, err)
	require.False(t, all)

	all, err = seq.All(seq.Empty[int](), even)
	require.NoError(t, err)
	require.True(t, all, "vacuous truth on the empty sequence")
}

func TestCount(t *testing.T) {
	n, err := seq.Count(seq.Of("a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestForEachOrder(t *testing.T) {
	seen := []int{}
	err := seq.ForEach(seq.FromSlice([]int{1, 2, 3}), func(v int) {
		seen = append(seen, v)
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestPartition(t *testing.T) {
	evens, odds, err := seq.Partition(seq.FromSlice([]int{1, 2, 3, 4}), func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, evens)
	require.Equal(t, []int{1, 3}, odds)
}

func TestGroupBy(t *testing.T) {
	groups, err := seq.GroupBy(seq.Of("ant", "bee", "ape"), func(s string) byte { return s[0] })
	require.NoError(t, err)
	require.Equal(t, []string{"ant", "ape"}, groups['a'])
	require.Equal(t, []string{"bee"}, groups['b'])
}
