package command

import (
	"context"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	gocommand "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

// ImageCommandConfig wires dependencies for image commands.
type ImageCommandConfig struct {
	Repository types.ImageRepository
	Hooks      types.Hooks
	Clock      types.Clock
	IDGen      types.IDGenerator
}

// ImageSaveInput captures a scanned flyer payload.
type ImageSaveInput struct {
	Image  types.ImageRecord
	Result *types.ImageRecord
}

// ImageSaveCommand stores a scanned flyer inline.
type ImageSaveCommand struct {
	repo  types.ImageRepository
	hooks types.Hooks
	clock types.Clock
	idGen types.IDGenerator
}

// NewImageSaveCommand constructs the handler.
func NewImageSaveCommand(cfg ImageCommandConfig) *ImageSaveCommand {
	return &ImageSaveCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
		idGen: safeIDGen(cfg.IDGen),
	}
}

var _ gocommand.Commander[ImageSaveInput] = (*ImageSaveCommand)(nil)

// Execute validates and persists the image record.
func (c *ImageSaveCommand) Execute(ctx context.Context, input ImageSaveInput) error {
	if c.repo == nil {
		return types.ErrMissingImageRepository
	}
	if input.Image.CompanyID == uuid.Nil {
		return ErrCompanyIDRequired
	}
	if len(input.Image.Payload) == 0 {
		return ErrImagePayloadRequired
	}

	img := input.Image
	if img.ID == uuid.Nil {
		img.ID = c.idGen.UUID()
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = now(c.clock)
	}

	saved, err := c.repo.SaveImage(ctx, img)
	if err != nil {
		return err
	}
	if input.Result != nil && saved != nil {
		*input.Result = *saved
	}
	emitCompanyHook(ctx, c.hooks, types.CompanyEvent{
		CompanyID:  img.CompanyID,
		Action:     "image.save",
		OccurredAt: now(c.clock),
	})
	return nil
}

// ImageDeleteInput identifies the image to remove.
type ImageDeleteInput struct {
	ImageID   uuid.UUID
	CompanyID uuid.UUID
}

// ImageDeleteCommand removes a single scanned image.
type ImageDeleteCommand struct {
	repo  types.ImageRepository
	hooks types.Hooks
	clock types.Clock
}

// NewImageDeleteCommand constructs the handler.
func NewImageDeleteCommand(cfg ImageCommandConfig) *ImageDeleteCommand {
	return &ImageDeleteCommand{
		repo:  cfg.Repository,
		hooks: safeHooks(cfg.Hooks),
		clock: safeClock(cfg.Clock),
	}
}

var _ gocommand.Commander[ImageDeleteInput] = (*ImageDeleteCommand)(nil)

// Execute removes the image. Deleting a missing id succeeds.
func (c *ImageDeleteCommand) Execute(ctx context.Context, input ImageDeleteInput) error {
	if c.repo == nil {
		return types.ErrMissingImageRepository
	}
	if input.ImageID == uuid.Nil {
		return ErrImageIDRequired
	}
	if err := c.repo.DeleteImage(ctx, input.ImageID); err != nil {
		return err
	}
	emitCompanyHook(ctx, c.hooks, types.CompanyEvent{
		CompanyID:  input.CompanyID,
		Action:     "image.delete",
		OccurredAt: now(c.clock),
	})
	return nil
}
