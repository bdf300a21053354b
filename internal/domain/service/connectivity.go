package service

import (
	"context"
)

// ConnectivityProbe answers whether the remote store can currently be reached.
type ConnectivityProbe interface {
	// IsReachable reports the current verdict. Implementations must not block
	// longer than their own dial timeout and must honour ctx cancellation.
	IsReachable(ctx context.Context) bool
}
