package util

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNumber returns a human-facing order number of the form
// ORD-XXXXXXXX. The suffix is UUID-derived; a unique index on the
// orders table turns the (negligible) collision case into an error
// instead of two orders sharing a number.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s", suffix)
}
