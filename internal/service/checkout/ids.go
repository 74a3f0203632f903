package checkout

import (
	"strings"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

// UUIDGenerator yields ids of the form "B" followed by nine upper-case hex characters.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "B" + strings.ToUpper(raw[:9])
}
