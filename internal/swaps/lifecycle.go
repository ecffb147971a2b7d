package swaps

import "github.com/skillswaphq/skillswap-backend/pkg/enums"

// CanTransition reports whether a swap may move between the two statuses.
// Every swap starts as pending. Terminal statuses never change again.
// Acceptance is only reachable from pending, while any in-flight swap can
// be rejected, completed or cancelled directly.
func CanTransition(from, to enums.SwapStatus) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	switch to {
	case enums.SwapStatusAccepted:
		return from == enums.SwapStatusPending
	case enums.SwapStatusRejected, enums.SwapStatusCompleted, enums.SwapStatusCancelled:
		return true
	default:
		return false
	}
}
