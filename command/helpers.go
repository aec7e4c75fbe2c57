package command

import (
	"context"
	"time"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
)

func safeHooks(hooks types.Hooks) types.Hooks {
	return hooks
}

func safeClock(clock types.Clock) types.Clock {
	if clock == nil {
		return types.SystemClock{}
	}
	return clock
}

func safeIDGen(idGen types.IDGenerator) types.IDGenerator {
	if idGen == nil {
		return types.UUIDGenerator{}
	}
	return idGen
}

func now(clock types.Clock) time.Time {
	return safeClock(clock).Now()
}

func emitFairHook(ctx context.Context, hooks types.Hooks, event types.FairEvent) {
	if hooks.AfterFairChange != nil {
		hooks.AfterFairChange(ctx, event)
	}
}

func emitCompanyHook(ctx context.Context, hooks types.Hooks, event types.CompanyEvent) {
	if hooks.AfterCompanyChange != nil {
		hooks.AfterCompanyChange(ctx, event)
	}
}

func emitChecklistHook(ctx context.Context, hooks types.Hooks, event types.ChecklistEvent) {
	if hooks.AfterChecklistChange != nil {
		hooks.AfterChecklistChange(ctx, event)
	}
}

func emitSettingsHook(ctx context.Context, hooks types.Hooks, event types.SettingsEvent) {
	if hooks.AfterSettingsChange != nil {
		hooks.AfterSettingsChange(ctx, event)
	}
}
