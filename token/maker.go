package token

import (
	"time"

	"github.com/google/uuid"
)

// Maker is the contract for anything that can create and verify tokens.
// It keeps the rest of the application independent of the token format.
type Maker interface {
	CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
