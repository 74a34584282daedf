package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DraftIDPrefix marks client-side placeholder ids for rows that have never
// been persisted. The admin UI uses them purely as list keys.
const DraftIDPrefix = "temp-"

// Identifier distinguishes a persisted row id from a client-side draft
// placeholder. Drafts must never reach update or delete.
type Identifier struct {
	persisted  uuid.UUID
	draftIndex int
	isDraft    bool
}

// ParseIdentifier parses the raw id value submitted by the admin UI.
func ParseIdentifier(raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identifier{}, fmt.Errorf("empty identifier")
	}

	if rest, ok := strings.CutPrefix(raw, DraftIDPrefix); ok {
		index, err := strconv.Atoi(rest)
		if err != nil {
			return Identifier{}, fmt.Errorf("malformed draft identifier %q", raw)
		}
		return Identifier{draftIndex: index, isDraft: true}, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return Identifier{}, fmt.Errorf("malformed identifier %q: %w", raw, err)
	}
	return Identifier{persisted: id}, nil
}

// PersistedIdentifier wraps a known database id.
func PersistedIdentifier(id uuid.UUID) Identifier {
	return Identifier{persisted: id}
}

// DraftIdentifier wraps a client-side list index for an unsaved row.
func DraftIdentifier(index int) Identifier {
	return Identifier{draftIndex: index, isDraft: true}
}

func (i Identifier) IsDraft() bool {
	return i.isDraft
}

// UUID returns the persisted id. ok is false for drafts.
func (i Identifier) UUID() (id uuid.UUID, ok bool) {
	if i.isDraft {
		return uuid.Nil, false
	}
	return i.persisted, true
}

func (i Identifier) String() string {
	if i.isDraft {
		return DraftIDPrefix + strconv.Itoa(i.draftIndex)
	}
	return i.persisted.String()
}
