package port

import "context"

// Reachability answers whether the kiosk site can currently be reached.
type Reachability interface {
	IsReachable(ctx context.Context) bool
}

// OfflineIndicator toggles the offline screen shown instead of the site.
type OfflineIndicator interface {
	ShowOffline()
	HideOffline()
}
