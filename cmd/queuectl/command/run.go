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
	"queuekit/queues"
)

type Run struct {
	Logger *logrus.Logger
}

func (cmd Run) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run op...",
		Short: "replay queue operations and print the queue after each one",
		Long: `Ops: enq:<v> deq front at:<i> set:<i>:<v> size clear

Example: queuectl run --priority enq:5 enq:10 enq:7 deq`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.main(ctx, cfg, c.OutOrStdout(), args)
		},
	}
}

func (cmd Run) main(ctx context.Context, cfg *config.Config, out io.Writer, ops []string) error {
	logger := cmd.Logger.WithContext(ctx).WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"priority": cfg.Priority,
		"kind":     cfg.Kind,
	})
	logger.Debugf("replaying %d ops", len(ops))

	switch cfg.Kind {
	case config.StringKind:
		q := newQueue(cfg, queues.Descending[string]())
		return replay(logger, out, q, ops, func(s string) (string, error) {
			return s, nil
		})
	default:
		q := newQueue(cfg, queues.Descending[int]())
		return replay(logger, out, q, ops, strconv.Atoi)
	}
}

// replay applies ops to q in order. Malformed ops abort the script; queue
// errors (empty queue, bad index) are logged and the script continues, since
// they leave the queue unchanged.
func replay[T any](logger *logrus.Entry, out io.Writer, q queues.Queue[T], ops []string, parse func(string) (T, error)) error {
	for i, op := range ops {
		name, arg, _ := strings.Cut(op, ":")
		var err error
		switch name {
		case "enq":
			var v T
			if v, err = parse(arg); err != nil {
				return errors.Wrapf(err, "run : op %d %q: bad value", i, op)
			}
			q.Enqueue(v)
		case "deq":
			var v T
			if v, err = q.Dequeue(); err == nil {
				fmt.Fprintf(out, "dequeued %v\n", v)
			}
		case "front":
			var v T
			if v, err = q.Front(); err == nil {
				fmt.Fprintf(out, "front %v\n", v)
			}
		case "at":
			index, perr := strconv.Atoi(arg)
			if perr != nil {
				return errors.Wrapf(perr, "run : op %d %q: bad index", i, op)
			}
			var v T
			if v, err = q.At(index); err == nil {
				fmt.Fprintf(out, "at %d %v\n", index, v)
			}
		case "set":
			rawIndex, rawValue, ok := strings.Cut(arg, ":")
			if !ok {
				return errors.Errorf("run : op %d %q: want set:<i>:<v>", i, op)
			}
			index, perr := strconv.Atoi(rawIndex)
			if perr != nil {
				return errors.Wrapf(perr, "run : op %d %q: bad index", i, op)
			}
			v, perr := parse(rawValue)
			if perr != nil {
				return errors.Wrapf(perr, "run : op %d %q: bad value", i, op)
			}
			err = q.Set(index, v)
		case "size":
			fmt.Fprintf(out, "size %d\n", q.Size())
		case "clear":
			q.Clear()
		default:
			return errors.Errorf("run : op %d: unknown op %q", i, op)
		}

		if err != nil {
			logger.WithField("op", op).Warn(err)
		}
		fmt.Fprintln(out, q)
	}
	return nil
}
