package image

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the images row. The flyer payload is kept inline as a blob
// rather than uploaded to object storage.
type Record struct {
	bun.BaseModel `bun:"table:images"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	CompanyID uuid.UUID `bun:"company_id,type:uuid"`
	Payload   []byte    `bun:"payload"`
	MimeType  string    `bun:"mime_type"`
	CreatedAt time.Time `bun:"created_at"`
}
