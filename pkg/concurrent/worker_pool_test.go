package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolProcessesAllJobs(t *testing.T) {
	pool := NewWorkerPool[int, int](4, 32)

	pool.Start(func(job int) int {
		return job * job
	})

	for i := 0; i < 32; i++ {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	got := make([]int, 0, 32)
	for res := range pool.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	want := make([]int, 0, 32)
	for i := 0; i < 32; i++ {
		want = append(want, i*i)
	}
	assert.Equal(t, want, got)
}
