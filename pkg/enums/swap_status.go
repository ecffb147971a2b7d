package enums

import "fmt"

// SwapStatus tracks the lifecycle of a swap request.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

var validSwapStatuses = []SwapStatus{
	SwapStatusPending,
	SwapStatusAccepted,
	SwapStatusRejected,
	SwapStatusCompleted,
	SwapStatusCancelled,
}

// String implements fmt.Stringer.
func (s SwapStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SwapStatus.
func (s SwapStatus) IsValid() bool {
	for _, candidate := range validSwapStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s SwapStatus) IsTerminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// ParseSwapStatus converts raw input into a SwapStatus.
func ParseSwapStatus(value string) (SwapStatus, error) {
	for _, candidate := range validSwapStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid swap status %q", value)
}
