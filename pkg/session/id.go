package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const maxIDLength = 256

// IDGenerator produces new session identifiers
type IDGenerator func() (string, error)

// RandomID creates a cryptographically secure identifier
func RandomID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UUIDGenerator creates random (version 4) UUID identifiers
func UUIDGenerator() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return id.String(), nil
}

// ValidateID checks that id is usable as a session identifier:
// non-blank, at most 256 characters, made of letters, digits, ',', '-' and '_'.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidID)
	}
	if len(id) > maxIDLength {
		return fmt.Errorf("%w: identifier longer than %d characters", ErrInvalidID, maxIDLength)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ',' || r == '-' || r == '_':
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidID, r)
		}
	}
	return nil
}
