package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types.
// InfluencerID is carried through from source files (INF_001 style), not minted here.
type (
	SessionID    ID
	UploadID     ID
	InfluencerID string
)

// String conversions for domain IDs
func (id SessionID) String() string    { return ID(id).String() }
func (id UploadID) String() string     { return ID(id).String() }
func (id InfluencerID) String() string { return string(id) }

// IsEmpty checks if the influencer ID is empty
func (id InfluencerID) IsEmpty() bool { return id == "" }

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	return SessionID(s), nil
}

// ParseInfluencerID parses a string into InfluencerID
func ParseInfluencerID(s string) (InfluencerID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("influencer ID cannot be empty")
	}
	return InfluencerID(s), nil
}
