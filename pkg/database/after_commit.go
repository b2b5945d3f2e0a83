package database

import (
	"context"

	"fulfilment-backend/pkg/logger"
)

type afterCommitKey struct{}

type afterCommitHooks struct {
	fns []func()
}

func (h *afterCommitHooks) run() {
	for _, fn := range h.fns {
		safeRun(fn)
	}
	h.fns = nil
}

func safeRun(fn func()) {
	defer func() {
		if p := recover(); p != nil {
			logger.Warn("After-commit hook panicked", map[string]interface{}{"panic": p})
		}
	}()
	fn()
}

// AfterCommit schedules fn to run after the enclosing transaction commits.
// If the transaction rolls back, fn never runs. Outside a transaction fn
// runs immediately (callers that are not transactional get the side effect
// right away, matching a commit of nothing).
func AfterCommit(ctx context.Context, fn func()) {
	if fn == nil {
		return
	}
	if hooks, ok := ctx.Value(afterCommitKey{}).(*afterCommitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	safeRun(fn)
}

// RunWithAfterCommit installs an after-commit registry on the context, runs
// fn, and fires the registered hooks only when fn returns nil. Exposed so
// test doubles of TxRunner can mirror real commit semantics.
func RunWithAfterCommit(ctx context.Context, fn func(ctx context.Context) error) error {
	hooks := &afterCommitHooks{}
	hookCtx := context.WithValue(ctx, afterCommitKey{}, hooks)

	if err := fn(hookCtx); err != nil {
		return err
	}

	hooks.run()
	return nil
}
