package enums

import "fmt"

// MessageCategory classifies broadcast admin messages.
type MessageCategory string

const (
	MessageCategoryInfo        MessageCategory = "info"
	MessageCategoryWarning     MessageCategory = "warning"
	MessageCategoryMaintenance MessageCategory = "maintenance"
)

var validMessageCategories = []MessageCategory{
	MessageCategoryInfo,
	MessageCategoryWarning,
	MessageCategoryMaintenance,
}

// String implements fmt.Stringer.
func (m MessageCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MessageCategory.
func (m MessageCategory) IsValid() bool {
	for _, candidate := range validMessageCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMessageCategory converts raw input into a MessageCategory.
func ParseMessageCategory(value string) (MessageCategory, error) {
	for _, candidate := range validMessageCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid message category %q", value)
}
