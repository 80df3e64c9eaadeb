package utils

import (
	"fmt"
	"unicode"

	"github.com/trellium-dev/trellium/internal/types"
)

const (
	titleMinLength = 2
	titleMaxLength = 100
)

// ValidateTitle enforces the card title rules: 2-100 characters, letters,
// digits and spaces only.
func ValidateTitle(title string) error {
	runes := []rune(title)

	if len(runes) < titleMinLength {
		return fmt.Errorf("Title must be at least %d characters long", titleMinLength)
	}

	if len(runes) > titleMaxLength {
		return fmt.Errorf("Title must be at most %d characters long", titleMaxLength)
	}

	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return fmt.Errorf("Title may only contain letters, numbers and spaces")
		}
	}

	return nil
}

// ValidateStatus accepts one of the fixed card statuses.
func ValidateStatus(status string) error {
	for _, s := range types.CardStatuses {
		if status == s {
			return nil
		}
	}

	return fmt.Errorf("Status must be one of: %v", types.CardStatuses)
}

// ValidatePriority accepts one of the fixed card priorities.
func ValidatePriority(priority string) error {
	for _, p := range types.CardPriorities {
		if priority == p {
			return nil
		}
	}

	return fmt.Errorf("Priority must be one of: %v", types.CardPriorities)
}
