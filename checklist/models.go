package checklist

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the checklist_items row. The column is display_order because
// "order" is reserved in SQL.
type Record struct {
	bun.BaseModel `bun:"table:checklist_items"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid"`
	CareerFairID uuid.UUID  `bun:"career_fair_id,type:uuid"`
	Text         string     `bun:"text"`
	IsCompleted  bool       `bun:"is_completed"`
	CompletedAt  *time.Time `bun:"completed_at"`
	IsDefault    bool       `bun:"is_default"`
	Order        int        `bun:"display_order"`
	CreatedAt    time.Time  `bun:"created_at"`
}
