package domain

import "github.com/google/uuid"

// UserID identifies an authenticated API user. It is carried in the JWT
// subject claim.
type UserID uuid.UUID
