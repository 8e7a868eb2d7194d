package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/japaniel/namer/pkg/batch"
)

// ErrTranslateFailed is returned by TranslateConcurrent when translating a
// text panicked, typically inside a rule handler passed through WithRules.
var ErrTranslateFailed = errors.New("translator: translation failed")

// TranslateConcurrent translates texts on up to workers goroutines in the
// given context. The result at index i belongs to texts[i]. If ctx ends
// before every text is translated, it returns nil and ctx.Err(). A panic while
// translating one text is recovered and reported as ErrTranslateFailed once
// the remaining texts are done.
func (e *Engine) TranslateConcurrent(ctx context.Context, texts []string, textContext string, workers int) ([]Result, error) {
	out := make([]Result, len(texts))

	var (
		mu       sync.Mutex
		firstErr error
	)
	pool := batch.NewPool(workers, 0)
	pool.OnError = func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	pool.Start(ctx)

	for i, text := range texts {
		i, text := i, text
		err := pool.Submit(ctx, func(context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %q: %v", ErrTranslateFailed, text, r)
				}
			}()
			out[i] = e.Translate(text, textContext)
			return nil
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	pool.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		e.logger.Error("concurrent translation failed", slog.Any("error", firstErr))
		return nil, firstErr
	}
	return out, nil
}
