package swaps

import (
	"testing"

	"github.com/skillswaphq/skillswap-backend/pkg/enums"
)

func TestCanTransitionFromPending(t *testing.T) {
	for _, target := range []enums.SwapStatus{
		enums.SwapStatusAccepted,
		enums.SwapStatusRejected,
		enums.SwapStatusCompleted,
		enums.SwapStatusCancelled,
	} {
		if !CanTransition(enums.SwapStatusPending, target) {
			t.Fatalf("expected pending -> %s to be allowed", target)
		}
	}
}

func TestCanTransitionFromAccepted(t *testing.T) {
	allowed := map[enums.SwapStatus]bool{
		enums.SwapStatusPending:   false,
		enums.SwapStatusAccepted:  true,
		enums.SwapStatusRejected:  true,
		enums.SwapStatusCompleted: true,
		enums.SwapStatusCancelled: true,
	}
	for target, want := range allowed {
		if got := CanTransition(enums.SwapStatusAccepted, target); got != want {
			t.Fatalf("accepted -> %s: got %v want %v", target, got, want)
		}
	}
}

func TestCanTransitionTerminalStatusesAreFinal(t *testing.T) {
	terminals := []enums.SwapStatus{
		enums.SwapStatusRejected,
		enums.SwapStatusCompleted,
		enums.SwapStatusCancelled,
	}
	targets := []enums.SwapStatus{
		enums.SwapStatusPending,
		enums.SwapStatusAccepted,
		enums.SwapStatusRejected,
		enums.SwapStatusCompleted,
		enums.SwapStatusCancelled,
	}
	for _, from := range terminals {
		for _, to := range targets {
			want := from == to
			if got := CanTransition(from, to); got != want {
				t.Fatalf("%s -> %s: got %v want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionNeverBackToPending(t *testing.T) {
	for _, from := range []enums.SwapStatus{
		enums.SwapStatusAccepted,
		enums.SwapStatusRejected,
		enums.SwapStatusCompleted,
		enums.SwapStatusCancelled,
	} {
		if CanTransition(from, enums.SwapStatusPending) {
			t.Fatalf("expected %s -> pending to be disallowed", from)
		}
	}
}
