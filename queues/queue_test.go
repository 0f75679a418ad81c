package queues_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queuekit/job"
	"queuekit/queues"
)

type queueFactory struct {
	name     string
	priority bool
	make     func(values []int) queues.Queue[int]
}

var factories = []queueFactory{
	{"ArrayQueue", false, func(values []int) queues.Queue[int] {
		return queues.NewArrayQueueFrom(values)
	}},
	{"LinkedQueue", false, func(values []int) queues.Queue[int] {
		return queues.NewLinkedQueueFrom(values)
	}},
	{"ArrayPriorityQueue", true, func(values []int) queues.Queue[int] {
		return queues.NewArrayPriorityQueueFrom(values, queues.Descending[int]())
	}},
	{"LinkedPriorityQueue", true, func(values []int) queues.Queue[int] {
		return queues.NewLinkedPriorityQueueFrom(values, queues.Descending[int]())
	}},
}

func TestQueues_EmptyErrors(t *testing.T) {
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) {
			q := f.make(nil)
			_, err := q.Front()
			assert.ErrorIs(t, err, queues.ErrEmpty)
			_, err = q.Dequeue()
			assert.ErrorIs(t, err, queues.ErrEmpty)

			q.Enqueue(1)
			q.Enqueue(2)
			q.Clear()
			_, err = q.Front()
			assert.ErrorIs(t, err, queues.ErrEmpty)
			_, err = q.Dequeue()
			assert.ErrorIs(t, err, queues.ErrEmpty)
			assert.Equal(t, "<queue> size: 0 front:[ ]:back", q.String())
		})
	}
}

func TestQueues_BoundsErrors(t *testing.T) {
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) {
			q := f.make([]int{3, 2, 1})
			before := q.String()
			for _, index := range []int{-1, q.Size()} {
				_, err := q.At(index)
				assert.ErrorIs(t, err, queues.ErrOutOfBounds)
				assert.ErrorIs(t, q.Set(index, 9), queues.ErrOutOfBounds)
			}
			assert.Equal(t, before, q.String(), "failed calls leave the queue untouched")
		})
	}
}

func TestQueues_EnqueueDequeueOnEmpty(t *testing.T) {
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) {
			q := f.make(nil)
			q.Enqueue(42)
			v, err := q.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, 42, v)
			assert.True(t, q.IsEmpty())
			assert.Equal(t, 0, q.Size())
		})
	}
}

func TestQueues_RenderMatchesString(t *testing.T) {
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) {
			q := f.make([]int{4, 8, 15, 16, 23, 42})
			assert.Equal(t, q.String(), queues.Render(q))
		})
	}
}

func TestEqual_AcrossLayouts(t *testing.T) {
	// same logical contents, different wrap positions and capacities
	wrapped := queues.NewArrayQueueFrom([]int{0, 0, 1, 2})
	_, _ = wrapped.Dequeue()
	_, _ = wrapped.Dequeue()
	wrapped.Enqueue(3)
	wrapped.Enqueue(4)

	plain := queues.NewArrayQueue[int]()
	for i := 1; i <= 4; i++ {
		plain.Enqueue(i)
	}
	linked := queues.NewLinkedQueueFrom([]int{1, 2, 3, 4})

	assert.NotEqual(t, wrapped.Cap(), plain.Cap())
	assert.True(t, queues.Equal[int](wrapped, plain))
	assert.True(t, queues.Equal[int](plain, linked))

	require.NoError(t, linked.Set(3, 5))
	assert.False(t, queues.Equal[int](plain, linked))
	linked.Enqueue(6)
	assert.False(t, queues.Equal[int](plain, linked))
}

func TestEqualFunc_JobsByPriority(t *testing.T) {
	a := queues.NewArrayQueueFrom([]job.Job{job.New(3, 0, 0, 1), job.New(1, 0, 0, 2)})
	b := queues.NewLinkedQueueFrom([]job.Job{job.New(3, 9, 9, 10), job.New(1, 4, 4, 20)})

	assert.True(t, queues.EqualFunc[job.Job](a, b, job.Job.Equal))
	assert.False(t, queues.Equal[job.Job](a, b), "struct equality also compares ids")
}

// godsQueue is the subset shared by the gods FIFO queues used as a reference model.
type godsQueue interface {
	Enqueue(value interface{})
	Dequeue() (value interface{}, ok bool)
	Values() []interface{}
}

func TestQueues_MatchReferenceFIFO(t *testing.T) {
	models := map[string]func() godsQueue{
		"ArrayQueue": func() godsQueue {
			return arrayqueue.New()
		},
		"LinkedQueue": func() godsQueue {
			return linkedlistqueue.New()
		},
	}

	for _, f := range factories {
		if f.priority {
			continue
		}
		t.Run(f.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			q := f.make(nil)
			model := models[f.name]()

			for step := range 2000 {
				if rng.IntN(3) == 0 {
					want, ok := model.Dequeue()
					got, err := q.Dequeue()
					if !ok {
						require.ErrorIs(t, err, queues.ErrEmpty, "step %d", step)
						continue
					}
					require.NoError(t, err, "step %d", step)
					require.Equal(t, want, got, "step %d", step)
					continue
				}
				v := rng.IntN(1000)
				model.Enqueue(v)
				q.Enqueue(v)
			}

			want := make([]int, 0)
			for _, v := range model.Values() {
				want = append(want, v.(int))
			}
			if diff := cmp.Diff(want, queues.Values(q)); diff != "" {
				t.Errorf("contents diverged from reference (-want +got):\n%s", diff)
			}
		})
	}
}

type seqTask struct {
	priority int
	seq      int
}

func TestPriorityQueues_OrderInvariant(t *testing.T) {
	greater := func(a, b seqTask) bool {
		return a.priority > b.priority
	}
	backends := map[string]queues.Queue[seqTask]{
		"ArrayPriorityQueue":  queues.NewArrayPriorityQueue(greater),
		"LinkedPriorityQueue": queues.NewLinkedPriorityQueue(greater),
	}

	for name, q := range backends {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(7, 11))
			for seq := range 300 {
				if rng.IntN(4) == 0 && !q.IsEmpty() {
					_, err := q.Dequeue()
					require.NoError(t, err)
				} else {
					q.Enqueue(seqTask{priority: rng.IntN(6), seq: seq})
				}

				vals := queues.Values(q)
				sorted := slices.IsSortedFunc(vals, func(a, b seqTask) int {
					if a.priority != b.priority {
						return b.priority - a.priority
					}
					return a.seq - b.seq
				})
				require.True(t, sorted, "priority order or arrival order broken at step %d: %v", seq, vals)
			}
		})
	}
}

func TestPriorityQueues_AgreeAcrossBackends(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	aq := queues.NewArrayPriorityQueue(queues.ByGreater[job.Job]())
	lq := queues.NewLinkedPriorityQueue(queues.ByGreater[job.Job]())

	for id := 1; id <= 200; id++ {
		j := job.New(rng.IntN(10), rng.IntN(5), id, id)
		aq.Enqueue(j)
		lq.Enqueue(j)
		if id%5 == 0 {
			a, errA := aq.Dequeue()
			l, errL := lq.Dequeue()
			require.NoError(t, errA)
			require.NoError(t, errL)
			require.Equal(t, a, l)
		}
	}
	assert.True(t, queues.Equal[job.Job](aq, lq), "ids must line up, not just priorities")
}
