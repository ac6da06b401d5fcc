package level

import (
	"context"
	"fmt"
)

// Receiver accepts level records from a generator session.
type Receiver interface {
	ReceiveLevel(ctx context.Context, record Record) error
}

// ReceiverFunc adapts an ordinary function to the Receiver interface.
type ReceiverFunc func(ctx context.Context, record Record) error

// ReceiveLevel calls f(ctx, record).
func (f ReceiverFunc) ReceiveLevel(ctx context.Context, record Record) error {
	return f(ctx, record)
}

// Stream generates every remaining level and hands each to recv, finishing with a
// single END record. It stops early on a receiver error or a cancelled context.
func (g *Generator) Stream(ctx context.Context, recv Receiver) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := g.Generate(ctx)
		if err := recv.ReceiveLevel(ctx, record); err != nil {
			return fmt.Errorf("deliver level %s: %w", record.LevelLabel(), err)
		}
		if record.End {
			return nil
		}
	}
}
