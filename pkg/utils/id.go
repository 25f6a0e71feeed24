package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an identifier of the form PREFIX-XXXXXXXXX, nine uppercase
// hex characters drawn from a random UUID. Matches the id format already
// present in persisted documents.
func NewID(prefix string) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + raw[:9]
}
