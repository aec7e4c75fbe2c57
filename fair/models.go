package fair

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the career_fairs row.
type Record struct {
	bun.BaseModel `bun:"table:career_fairs"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Name        string    `bun:"name"`
	Date        time.Time `bun:"date"`
	Location    string    `bun:"location"`
	VenueMapURL string    `bun:"venue_map_url"`
	Notes       string    `bun:"notes"`
	CreatedAt   time.Time `bun:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at"`
}
