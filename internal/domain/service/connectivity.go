package service

import "context"

// ConnectivityProbe reports whether the network path to the backing store is
// believed to be up. The store checks it before issuing any call so that an
// offline device fails fast instead of burning its request budget on timeouts.
type ConnectivityProbe interface {
	// Online reports current reachability. Implementations may cache the
	// answer briefly; staleness in the order of seconds is acceptable.
	Online(ctx context.Context) bool
}
