// Package job provides the Job record scheduled through priority queues.
//
// Jobs are ordered by priority alone: two jobs with the same priority compare
// equal even when their ids and timings differ.
package job

import (
	"cmp"
	"fmt"
	"sync/atomic"
)

// Job is a unit of work with a priority (higher is more urgent), a service
// time and the times it entered (StartTime) and left (EndTime) a queue.
type Job struct {
	ID          int
	Priority    int
	ServiceTime int
	StartTime   int
	EndTime     int
}

// New creates a Job that has not yet been dispatched: its EndTime equals its StartTime.
func New(priority, serviceTime, startTime, id int) Job {
	return Job{
		ID:          id,
		Priority:    priority,
		ServiceTime: serviceTime,
		StartTime:   startTime,
		EndTime:     startTime,
	}
}

// Sequence hands out increasing job ids starting at 1.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

var defaultSequence Sequence

// NewAuto creates a zero-priority Job with the next id from the package sequence.
func NewAuto() Job {
	return Job{ID: defaultSequence.Next()}
}

// SetEndTime records the time the job left the queue.
func (j *Job) SetEndTime(endTime int) {
	j.EndTime = endTime
}

// WaitTime is the time the job spent queued.
func (j Job) WaitTime() int {
	return j.EndTime - j.StartTime
}

// Cost weights the wait time by priority.
func (j Job) Cost() int {
	return j.Priority * j.WaitTime()
}

func (j Job) Greater(other Job) bool {
	return j.Priority > other.Priority
}

func (j Job) Less(other Job) bool {
	return j.Priority < other.Priority
}

func (j Job) Equal(other Job) bool {
	return j.Priority == other.Priority
}

// Compare orders by priority, for use with the slices package.
func Compare(a, b Job) int {
	return cmp.Compare(a.Priority, b.Priority)
}

func (j Job) String() string {
	return fmt.Sprintf("(id: %d priority: %d)", j.ID, j.Priority)
}
