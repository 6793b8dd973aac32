package zeroentropy

import (
	"context"
	"fmt"

	"github.com/zeroentropy/client-go/internal/poll"
)

// WaitUntilIndexed blocks until the document at path is fully indexed,
// polling its status on a growing interval. It returns the final
// document info on success. A document that reaches a failed state
// surfaces ErrIndexingFailed; running out of time surfaces the context
// error. The overall timeout defaults to 60 seconds and is adjustable
// with WithWaitTimeout.
func (s *DocumentsService) WaitUntilIndexed(ctx context.Context, collection, path string, opts ...WaitOption) (*DocumentInfo, error) {
	cfg := &waitConfig{
		timeout:         defaultWaitTimeout,
		pollInterval:    poll.DefaultInterval,
		maxPollInterval: poll.DefaultMaxInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var info *DocumentInfo
	err := poll.Run(ctx, poll.Config{
		Interval:    cfg.pollInterval,
		MaxInterval: cfg.maxPollInterval,
		Jitter:      poll.DefaultJitter,
	}, func(ctx context.Context) (bool, error) {
		current, err := s.GetInfo(ctx, GetDocumentInfoParams{
			Collection: collection,
			Path:       path,
		})
		if err != nil {
			return false, err
		}
		info = current

		if current.IndexStatus.Failed() {
			return false, fmt.Errorf("%w: document %q is %s", ErrIndexingFailed, path, current.IndexStatus)
		}
		return current.IndexStatus == IndexStatusIndexed, nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
