package command

import (
	"errors"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
)

var (
	// ErrFairRequired indicates a fair payload was not supplied.
	ErrFairRequired = errors.New("fairbuddy: career fair payload required")
	// ErrFairNameRequired indicates the fair is missing a name.
	ErrFairNameRequired = errors.New("fairbuddy: career fair name required")
	// ErrFairDateRequired indicates the fair is missing a date.
	ErrFairDateRequired = errors.New("fairbuddy: career fair date required")
	// ErrFairIDRequired occurs when fair commands omit the fair id.
	ErrFairIDRequired = types.ErrFairIDRequired
	// ErrItemTextRequired indicates a checklist item has no text.
	ErrItemTextRequired = errors.New("fairbuddy: checklist item text required")
	// ErrItemIDRequired occurs when checklist commands omit the item id.
	ErrItemIDRequired = types.ErrItemIDRequired
	// ErrItemNotFound indicates the requested checklist item was not found.
	ErrItemNotFound = errors.New("fairbuddy: checklist item not found")
	// ErrCompanyRequired indicates a company payload was not supplied.
	ErrCompanyRequired = errors.New("fairbuddy: company payload required")
	// ErrCompanyNameRequired indicates the company is missing a name.
	ErrCompanyNameRequired = errors.New("fairbuddy: company name required")
	// ErrCompanyIDRequired occurs when company commands omit the company id.
	ErrCompanyIDRequired = types.ErrCompanyIDRequired
	// ErrCompanyNotFound indicates the requested company was not found.
	ErrCompanyNotFound = errors.New("fairbuddy: company not found")
	// ErrImageIDRequired occurs when image commands omit the image id.
	ErrImageIDRequired = types.ErrImageIDRequired
	// ErrImagePayloadRequired indicates an image record without payload bytes.
	ErrImagePayloadRequired = errors.New("fairbuddy: image payload required")
	// ErrScanMethodInvalid indicates an unknown default scan method.
	ErrScanMethodInvalid = errors.New("fairbuddy: unknown scan method")
)
