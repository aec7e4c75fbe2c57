package company

import (
	"time"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the companies row. List and sub-record fields are stored as
// JSON columns; bun encodes them against the jsonb column type.
type Record struct {
	bun.BaseModel `bun:"table:companies"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	CareerFairID uuid.UUID `bun:"career_fair_id,type:uuid"`

	CompanyName         string            `bun:"company_name"`
	BoothNumber         string            `bun:"booth_number"`
	Positions           []string          `bun:"positions,type:jsonb"`
	ContactInfo         types.ContactInfo `bun:"contact_info,type:jsonb"`
	ApplicationDeadline *time.Time        `bun:"application_deadline"`
	Requirements        []string          `bun:"requirements,type:jsonb"`
	WebsiteURL          string            `bun:"website_url"`
	CareersPageURL      string            `bun:"careers_page_url"`

	UserNotes           string   `bun:"user_notes"`
	ConversationSummary string   `bun:"conversation_summary"`
	Impressions         string   `bun:"impressions"`
	ActionItems         []string `bun:"action_items,type:jsonb"`
	Priority            string   `bun:"priority"`
	Tags                []string `bun:"tags,type:jsonb"`

	ScannedImages        []string          `bun:"scanned_images,type:jsonb"`
	VoiceNotes           []types.VoiceNote `bun:"voice_notes,type:jsonb"`
	ExtractionMethod     string            `bun:"extraction_method"`
	ExtractionConfidence float64           `bun:"extraction_confidence"`
	RawExtractedText     string            `bun:"raw_extracted_text"`

	FollowUpStatus types.FollowUpStatus `bun:"follow_up_status,type:jsonb"`

	CreatedAt time.Time `bun:"created_at"`
	UpdatedAt time.Time `bun:"updated_at"`
}
