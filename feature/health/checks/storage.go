package checks

import (
	"context"
	"fmt"

	"gamestats/core/storage"
)

// CheckStorage verifies that the snapshot bucket exists. A nil client means
// snapshots are disabled.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) Result {
	if client == nil {
		return disabled()
	}

	details := map[string]any{"bucket": bucket}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return failed(fmt.Errorf("failed to check bucket existence: %w", err), details)
	}
	if !exists {
		return failed(fmt.Errorf("bucket %s does not exist", bucket), details)
	}
	return ok(details)
}
