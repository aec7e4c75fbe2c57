package types

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SettingsID is the fixed identifier for the singleton settings record.
const SettingsID = "user-settings"

// ScanMethod selects how flyer images are turned into structured data.
type ScanMethod string

const (
	ScanMethodOCR    ScanMethod = "ocr"
	ScanMethodGPT4o  ScanMethod = "gpt4o"
	ScanMethodManual ScanMethod = "manual"
)

// Priority ranks a company for follow-up purposes.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Settings is the singleton user preference record. Exactly zero or one
// instance exists, always keyed by SettingsID.
type Settings struct {
	ID                string
	Name              string
	Email             string
	OpenAIAPIKey      string
	DefaultScanMethod ScanMethod
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CareerFair is the root aggregate. It owns checklist items and companies.
type CareerFair struct {
	ID          uuid.UUID
	Name        string
	Date        time.Time
	Location    string
	VenueMapURL string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChecklistItem is a single preparation task scoped to one career fair.
// Order is assigned at creation time and never renumbered on delete; gaps
// are expected.
type ChecklistItem struct {
	ID           uuid.UUID
	CareerFairID uuid.UUID
	Text         string
	IsCompleted  bool
	CompletedAt  *time.Time
	IsDefault    bool
	Order        int
	CreatedAt    time.Time
}

// ContactInfo groups extracted recruiter contact details.
type ContactInfo struct {
	Names  []string `json:"names"`
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// VoiceNote is an inline audio memo attached to a company. Audio stays
// inline as an encoded payload; the store never uploads it anywhere.
type VoiceNote struct {
	ID         string    `json:"id"`
	Audio      string    `json:"audio"`
	Duration   int       `json:"duration"`
	Transcript string    `json:"transcript,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomFollowUp is a user-defined follow-up entry.
type CustomFollowUp struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// FollowUpStatus tracks the four standard follow-up actions plus any custom
// entries the user added.
type FollowUpStatus struct {
	ThankYouSent             bool             `json:"thank_you_sent"`
	ThankYouSentDate         *time.Time       `json:"thank_you_sent_date,omitempty"`
	ApplicationSubmitted     bool             `json:"application_submitted"`
	ApplicationSubmittedDate *time.Time       `json:"application_submitted_date,omitempty"`
	LinkedInConnected        bool             `json:"linkedin_connected"`
	LinkedInConnectedDate    *time.Time       `json:"linkedin_connected_date,omitempty"`
	InterviewScheduled       bool             `json:"interview_scheduled"`
	InterviewDate            *time.Time       `json:"interview_date,omitempty"`
	CustomFollowUps          []CustomFollowUp `json:"custom_follow_ups,omitempty"`
}

// Pending reports whether any follow-up action is still open.
func (f FollowUpStatus) Pending() bool {
	if !f.ThankYouSent || !f.ApplicationSubmitted || !f.LinkedInConnected || !f.InterviewScheduled {
		return true
	}
	for _, c := range f.CustomFollowUps {
		if !c.Completed {
			return true
		}
	}
	return false
}

// Company is the per-booth record built from extraction plus user notes. It
// belongs to exactly one career fair and owns its image records.
type Company struct {
	ID           uuid.UUID
	CareerFairID uuid.UUID

	CompanyName         string
	BoothNumber         string
	Positions           []string
	ContactInfo         ContactInfo
	ApplicationDeadline *time.Time
	Requirements        []string
	WebsiteURL          string
	CareersPageURL      string

	UserNotes           string
	ConversationSummary string
	Impressions         string
	ActionItems         []string
	Priority            Priority
	Tags                []string

	ScannedImages        []string
	VoiceNotes           []VoiceNote
	ExtractionMethod     ScanMethod
	ExtractionConfidence float64
	RawExtractedText     string

	FollowUpStatus FollowUpStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether the company matches a case-insensitive query
// against its name, positions, notes, and tags. Linear field scan; the
// expected dataset is tens to low hundreds of companies per fair.
func (c Company) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(c.CompanyName), q) {
		return true
	}
	for _, p := range c.Positions {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(c.UserNotes), q) {
		return true
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// ImageRecord stores a scanned flyer inline as a blob. It belongs to exactly
// one company and is removed when the company is deleted.
type ImageRecord struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Payload   []byte
	MimeType  string
	CreatedAt time.Time
}

// DefaultChecklistTemplate seeds a fair's checklist the first time it is
// viewed while empty.
var DefaultChecklistTemplate = []string{
	"Print resume copies",
	"Choose and prepare business casual outfit",
	"Eat a substantial breakfast",
	"Practice 30-second elevator pitch",
	"Practice 60-second elevator pitch",
	"Prepare 3-5 company-specific questions",
	"Charge phone fully",
	"Bring portfolio/notepad",
	"Review company list",
	"Bring pen and paper",
}

// SettingsRepository owns the singleton settings record.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings Settings) (*Settings, error)
}

// FairRepository persists career fairs and orchestrates the fair cascade.
type FairRepository interface {
	GetFair(ctx context.Context, id uuid.UUID) (*CareerFair, error)
	ListFairs(ctx context.Context) ([]CareerFair, error)
	SaveFair(ctx context.Context, fair CareerFair) (*CareerFair, error)
	DeleteFair(ctx context.Context, id uuid.UUID) error
}

// ChecklistRepository persists checklist items.
type ChecklistRepository interface {
	GetItem(ctx context.Context, id uuid.UUID) (*ChecklistItem, error)
	ListForFair(ctx context.Context, careerFairID uuid.UUID) ([]ChecklistItem, error)
	SaveItem(ctx context.Context, item ChecklistItem) (*ChecklistItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteForFair(ctx context.Context, careerFairID uuid.UUID) error
	SeedDefaults(ctx context.Context, careerFairID uuid.UUID) ([]ChecklistItem, error)
	NextOrder(ctx context.Context, careerFairID uuid.UUID) (int, error)
}

// CompanyRepository persists companies and orchestrates the company cascade.
type CompanyRepository interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	ListForFair(ctx context.Context, careerFairID uuid.UUID) ([]Company, error)
	SaveCompany(ctx context.Context, company Company) (*Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	SearchCompanies(ctx context.Context, careerFairID uuid.UUID, query string) ([]Company, error)
}

// ImageRepository persists scanned images.
type ImageRepository interface {
	GetImage(ctx context.Context, id uuid.UUID) (*ImageRecord, error)
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]ImageRecord, error)
	SaveImage(ctx context.Context, image ImageRecord) (*ImageRecord, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

// FairEvent is emitted after fair mutations.
type FairEvent struct {
	FairID     uuid.UUID
	Action     string
	OccurredAt time.Time
}

// CompanyEvent is emitted after company mutations.
type CompanyEvent struct {
	CompanyID    uuid.UUID
	CareerFairID uuid.UUID
	Action       string
	OccurredAt   time.Time
}

// ChecklistEvent is emitted after checklist mutations.
type ChecklistEvent struct {
	ItemID       uuid.UUID
	CareerFairID uuid.UUID
	Action       string
	OccurredAt   time.Time
}

// SettingsEvent is emitted after settings mutations. The payload carries the
// masked settings view, never the raw credential.
type SettingsEvent struct {
	Action     string
	Settings   Settings
	OccurredAt time.Time
}

// Hooks groups optional callbacks invoked after mutations commit so hosts can
// refresh views or invalidate caches.
type Hooks struct {
	AfterFairChange      func(context.Context, FairEvent)
	AfterCompanyChange   func(context.Context, CompanyEvent)
	AfterChecklistChange func(context.Context, ChecklistEvent)
	AfterSettingsChange  func(context.Context, SettingsEvent)
}

// Clock abstracts time retrieval for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts identifier creation.
type IDGenerator interface {
	UUID() uuid.UUID
}

// Logger captures basic logging hooks used by the service.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, err error, args ...any)
}

var (
	// ErrNotInitialized occurs when a store operation runs before Init completed.
	ErrNotInitialized = errors.New("fairbuddy: store not initialized")
	// ErrFairIDRequired indicates a career fair identifier was omitted.
	ErrFairIDRequired = errors.New("fairbuddy: career fair id required")
	// ErrCompanyIDRequired indicates a company identifier was omitted.
	ErrCompanyIDRequired = errors.New("fairbuddy: company id required")
	// ErrItemIDRequired indicates a checklist item identifier was omitted.
	ErrItemIDRequired = errors.New("fairbuddy: checklist item id required")
	// ErrImageIDRequired indicates an image identifier was omitted.
	ErrImageIDRequired = errors.New("fairbuddy: image id required")
	// ErrMissingFairRepository occurs when no fair repository was supplied.
	ErrMissingFairRepository = errors.New("fairbuddy: missing fair repository")
	// ErrMissingChecklistRepository occurs when no checklist repository was supplied.
	ErrMissingChecklistRepository = errors.New("fairbuddy: missing checklist repository")
	// ErrMissingCompanyRepository occurs when no company repository was supplied.
	ErrMissingCompanyRepository = errors.New("fairbuddy: missing company repository")
	// ErrMissingImageRepository occurs when no image repository was supplied.
	ErrMissingImageRepository = errors.New("fairbuddy: missing image repository")
	// ErrMissingSettingsRepository occurs when no settings repository was supplied.
	ErrMissingSettingsRepository = errors.New("fairbuddy: missing settings repository")
)
