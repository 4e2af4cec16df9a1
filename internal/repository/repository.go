package repository

import (
	"context"
	"errors"
	"time"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	"github.com/wb-go/wbf/retry"
)

var defaultStrategy = retry.Strategy{
	Attempts: 3,
	Delay:    500 * time.Millisecond,
	Backoff:  2,
}

// storage tags raw driver failures so callers can classify them without
// losing the original chain.
func storage(err error) error {
	return errors.Join(domain.ErrStorage, err)
}

// opCtx bounds a single repository operation. A zero timeout disables the bound.
func opCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
