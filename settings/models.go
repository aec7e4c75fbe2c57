package settings

import (
	"time"

	"github.com/uptrace/bun"
)

// Record models the settings row. The table holds at most one row, keyed by
// the fixed identifier rather than a generated one.
type Record struct {
	bun.BaseModel `bun:"table:settings"`

	ID                string    `bun:"id,pk"`
	Name              string    `bun:"name"`
	Email             string    `bun:"email"`
	OpenAIAPIKey      string    `bun:"openai_api_key"`
	DefaultScanMethod string    `bun:"default_scan_method"`
	CreatedAt         time.Time `bun:"created_at"`
	UpdatedAt         time.Time `bun:"updated_at"`
}
