package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockQueuePullOrderAndBoundary(t *testing.T) {
	q := NewBlockQueue(5, 100)

	for i := 0; i < 10; i++ {
		q.Insert(Index(i), float64(i))
	}
	require.Equal(t, 10, q.Size())

	pulled, boundary := q.Pull()
	require.Len(t, pulled, 5)
	for i, kv := range pulled {
		assert.Equal(t, Index(i), kv.GetKey())
		assert.Equal(t, float64(i), kv.GetValue())
	}
	assert.Equal(t, 5.0, boundary)

	pulled, boundary = q.Pull()
	require.Len(t, pulled, 5)
	for i, kv := range pulled {
		assert.Equal(t, Index(i+5), kv.GetKey())
		assert.Equal(t, float64(i+5), kv.GetValue())
	}
	assert.Equal(t, 100.0, boundary)
	assert.True(t, q.IsEmpty())
}

func TestBlockQueueDuplicateKeyKeepsMinimum(t *testing.T) {
	q := NewBlockQueue(5, 100)

	for i := 0; i < 10; i++ {
		q.Insert(Index(i), float64(i))
	}
	// improving vertex 3 before the first pull must surface the new value
	q.Insert(3, 2.0)

	pulled, _ := q.Pull()
	require.Len(t, pulled, 5)

	found := false
	for _, kv := range pulled {
		if kv.GetKey() == 3 {
			found = true
			assert.Equal(t, 2.0, kv.GetValue())
		}
	}
	assert.True(t, found)
}

func TestBlockQueueInsertRejectsAboveBound(t *testing.T) {
	q := NewBlockQueue(4, 10)

	q.Insert(0, 10)
	q.Insert(1, 42)
	assert.True(t, q.IsEmpty())

	q.Insert(2, 9.5)
	assert.Equal(t, 1, q.Size())
}

func TestBlockQueueStaleInsertIsNoop(t *testing.T) {
	q := NewBlockQueue(4, 100)

	q.Insert(7, 3)
	q.Insert(7, 5) // worse, ignored
	q.Insert(7, 3) // equal, ignored

	require.Equal(t, 1, q.Size())
	pulled, _ := q.Pull()
	require.Len(t, pulled, 1)
	assert.Equal(t, 3.0, pulled[0].GetValue())
}

func TestBlockQueueSplitKeepsValueOrder(t *testing.T) {
	q := NewBlockQueue(3, 1000)

	values := []float64{50, 10, 90, 30, 70, 20, 80, 40, 60, 99}
	for i, v := range values {
		q.Insert(Index(i), v)
	}
	assert.GreaterOrEqual(t, q.NumD1Blocks(), 2)

	got := make([]float64, 0, len(values))
	for !q.IsEmpty() {
		pulled, boundary := q.Pull()
		for _, kv := range pulled {
			got = append(got, kv.GetValue())
			assert.LessOrEqual(t, kv.GetValue(), boundary)
		}
	}

	want := append([]float64(nil), values...)
	sort.Float64s(want)
	assert.Equal(t, want, got)
}

func TestBlockQueueBatchPrepend(t *testing.T) {
	q := NewBlockQueue(2, 100)

	q.Insert(10, 50)
	q.Insert(11, 60)

	q.BatchPrepend([]BlockQueueEntry{
		NewBlockQueueEntry(1, 5),
		NewBlockQueueEntry(2, 3),
		NewBlockQueueEntry(1, 4), // dedup keeps the 4
		NewBlockQueueEntry(3, 2.5),
		NewBlockQueueEntry(4, 120), // >= b, dropped
	})

	require.Equal(t, 5, q.Size())
	assert.GreaterOrEqual(t, q.NumD0Blocks(), 1)

	pulled, boundary := q.Pull()
	require.Len(t, pulled, 2)
	assert.Equal(t, Index(3), pulled[0].GetKey())
	assert.Equal(t, 2.5, pulled[0].GetValue())
	assert.Equal(t, Index(2), pulled[1].GetKey())
	assert.Equal(t, 3.0, pulled[1].GetValue())
	assert.Equal(t, 4.0, boundary)
}

// draining a mixed insert/batch-prepend workload must return exactly the
// per-key minimum aggregation of everything accepted
func TestBlockQueueRoundTripMultiset(t *testing.T) {
	const bound = 500.0
	rng := rand.New(rand.NewSource(42))

	q := NewBlockQueue(8, bound)
	expected := make(map[Index]float64)

	record := func(key Index, value float64) {
		if value >= bound {
			return
		}
		if old, ok := expected[key]; !ok || value < old {
			expected[key] = value
		}
	}

	nextLow := 100.0
	for round := 0; round < 50; round++ {
		key := Index(rng.Intn(200) + 1000)
		value := 100.0 + rng.Float64()*350.0
		q.Insert(key, value)
		record(key, value)

		if round%10 == 9 {
			// batch-prepended runs must sit below everything stored
			batch := make([]BlockQueueEntry, 0, 3)
			for j := 0; j < 3; j++ {
				nextLow -= 0.5
				key := Index(rng.Intn(50))
				batch = append(batch, NewBlockQueueEntry(key, nextLow))
				record(key, nextLow)
			}
			q.BatchPrepend(batch)
		}
	}

	got := make(map[Index]float64)
	prevBoundary := 0.0
	for !q.IsEmpty() {
		pulled, boundary := q.Pull()
		require.NotEmpty(t, pulled)
		assert.GreaterOrEqual(t, boundary, prevBoundary)
		for _, kv := range pulled {
			assert.LessOrEqual(t, kv.GetValue(), boundary)
			if old, ok := got[kv.GetKey()]; !ok || kv.GetValue() < old {
				got[kv.GetKey()] = kv.GetValue()
			}
		}
		prevBoundary = boundary
	}

	assert.Equal(t, expected, got)
}

func TestBlockQueueInsertAfterFullDrain(t *testing.T) {
	q := NewBlockQueue(2, 100)
	q.Insert(1, 10)
	q.Insert(2, 20)
	q.Pull()
	q.Pull()
	require.True(t, q.IsEmpty())

	q.Insert(3, 30)
	require.Equal(t, 1, q.Size())
	pulled, boundary := q.Pull()
	require.Len(t, pulled, 1)
	assert.Equal(t, Index(3), pulled[0].GetKey())
	assert.Equal(t, 100.0, boundary)
}
