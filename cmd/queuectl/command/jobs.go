package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"queuekit/internal/config"
	"queuekit/job"
	"queuekit/queues"
)

type Jobs struct {
	Logger *logrus.Logger
}

func (cmd Jobs) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs priority:service:arrival...",
		Short: "queue jobs by priority, then dispatch them and report wait time and cost",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.main(ctx, cfg, c.OutOrStdout(), args)
		},
	}
}

func (cmd Jobs) main(ctx context.Context, cfg *config.Config, out io.Writer, entries []string) error {
	// jobs are always dispatched in priority order, whatever --priority says
	qcfg := *cfg
	qcfg.Priority = true
	q := newQueue(&qcfg, queues.ByGreater[job.Job]())

	var ids job.Sequence
	for _, entry := range entries {
		j, err := parseJob(entry, ids.Next())
		if err != nil {
			return err
		}
		q.Enqueue(j)
	}
	cmd.Logger.WithContext(ctx).WithField("backend", qcfg.Backend).Debug(q)

	summary, err := dispatch(q, out)
	if err != nil {
		return errors.Wrap(err, "jobs : dispatch failed")
	}
	cmd.Logger.WithContext(ctx).WithFields(logrus.Fields{
		"jobs":       summary.count,
		"total_wait": summary.wait,
		"total_cost": summary.cost,
	}).Info("all jobs dispatched")
	return nil
}

func parseJob(entry string, id int) (job.Job, error) {
	parts := strings.Split(entry, ":")
	if len(parts) != 3 {
		return job.Job{}, errors.Errorf("jobs : %q: want priority:service:arrival", entry)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return job.Job{}, errors.Wrapf(err, "jobs : %q", entry)
		}
		nums[i] = n
	}
	return job.New(nums[0], nums[1], nums[2], id), nil
}

type dispatchSummary struct {
	count, wait, cost int
}

// dispatch drains q one job at a time. A job departs when the previous job's
// service ends, or at its own arrival if the dispatcher was idle.
func dispatch(q queues.Queue[job.Job], out io.Writer) (dispatchSummary, error) {
	var (
		clock   int
		summary dispatchSummary
	)
	for !q.IsEmpty() {
		j, err := q.Dequeue()
		if err != nil {
			return summary, err
		}
		clock = max(clock, j.StartTime)
		j.SetEndTime(clock)
		clock += j.ServiceTime

		fmt.Fprintf(out, "%v wait: %d cost: %d\n", j, j.WaitTime(), j.Cost())
		summary.count++
		summary.wait += j.WaitTime()
		summary.cost += j.Cost()
	}
	return summary, nil
}
