package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/collection"
)

func TestMap(t *testing.T) {
	doubled := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestFilter(t *testing.T) {
	even := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestGroupBy(t *testing.T) {
	grouped := collection.GroupBy([]string{"apple", "avocado", "banana"}, func(s string) byte {
		return s[0]
	})
	assert.Len(t, grouped['a'], 2)
	assert.Len(t, grouped['b'], 1)
}

func TestKeyByLastWins(t *testing.T) {
	type kv struct {
		K string
		V int
	}
	m := collection.KeyBy([]kv{{"a", 1}, {"a", 2}}, func(e kv) string { return e.K })
	assert.Equal(t, 2, m["a"].V)
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	out := collection.SortBy(in, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestSum(t *testing.T) {
	total := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f })
	assert.Equal(t, 4.0, total)
}
