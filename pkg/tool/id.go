package tool

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// GenerateOrderNo returns a compact, time-sortable order number.
func GenerateOrderNo() string {
	return "ord_" + strings.ReplaceAll(GenerateUUIDV7(), "-", "")
}
