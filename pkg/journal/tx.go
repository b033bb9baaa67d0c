package journal

import (
	"context"
	"fmt"

	"github.com/agentmaestro/agentmaestro/ent"
)

// Hooks collects side effects that must only run after the surrounding
// transaction commits, such as scheduling a tick or releasing quota
// slots. A rolled-back transaction drops its hooks unexecuted.
type Hooks struct {
	fns []func()
}

// OnCommit registers fn to run after a successful commit. Hooks run in
// registration order.
func (h *Hooks) OnCommit(fn func()) {
	h.fns = append(h.fns, fn)
}

func (h *Hooks) run() {
	for _, fn := range h.fns {
		fn()
	}
}

// WithTx runs fn inside a transaction, committing on nil error and
// rolling back otherwise. Post-commit hooks registered by fn run only
// after the commit succeeds.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx, hooks *Hooks) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	hooks := &Hooks{}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx, hooks); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	hooks.run()
	return nil
}
