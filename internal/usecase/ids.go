package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// newRecordID builds a short prefixed identifier like "p_4f9c01a" for
// patient and surgery rows.
func newRecordID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:7]
}
