package keysmith

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events.
var (
	SignalProcessorCreated = capitan.NewSignal("keysmith.processor.created", "Processor instantiated")
	SignalIssueStart       = capitan.NewSignal("keysmith.issue.start", "Issue operation beginning")
	SignalIssueComplete    = capitan.NewSignal("keysmith.issue.complete", "Issue operation finished")
	SignalCheckStart       = capitan.NewSignal("keysmith.check.start", "Check operation beginning")
	SignalCheckComplete    = capitan.NewSignal("keysmith.check.complete", "Check operation finished")
	SignalStoreStart       = capitan.NewSignal("keysmith.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("keysmith.store.complete", "Store operation finished")
	SignalSendStart        = capitan.NewSignal("keysmith.send.start", "Send operation beginning")
	SignalSendComplete     = capitan.NewSignal("keysmith.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyContentType   = capitan.NewStringKey("content_type")
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
	KeyIssuedCount   = capitan.NewIntKey("issued_count")
	KeyCheckedCount  = capitan.NewIntKey("checked_count")
	KeyHashedCount   = capitan.NewIntKey("hashed_count")
	KeyMaskedCount   = capitan.NewIntKey("masked_count")
	KeyRedactedCount = capitan.NewIntKey("redacted_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitIssueStart emits an event when issue begins.
func emitIssueStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalIssueStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitIssueComplete emits an event when issue finishes.
func emitIssueComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, issued int, err error) {
	fields := completeFields(contentType, typeName, size, duration,
		KeyIssuedCount.Field(issued))
	if err != nil {
		capitan.Error(ctx, SignalIssueComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(ctx, SignalIssueComplete, fields...)
}

// emitCheckStart emits an event when check begins.
func emitCheckStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalCheckStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitCheckComplete emits an event when check finishes. A rejected serial
// is reported at error level.
func emitCheckComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, checked int, err error) {
	fields := completeFields(contentType, typeName, size, duration,
		KeyCheckedCount.Field(checked))
	if err != nil {
		capitan.Error(ctx, SignalCheckComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(ctx, SignalCheckComplete, fields...)
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, hashed int, err error) {
	fields := completeFields(contentType, typeName, size, duration,
		KeyHashedCount.Field(hashed))
	if err != nil {
		capitan.Error(ctx, SignalStoreComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(ctx, SignalStoreComplete, fields...)
}

// emitSendStart emits an event when send begins.
func emitSendStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, masked, redacted int, err error) {
	fields := completeFields(contentType, typeName, size, duration,
		KeyMaskedCount.Field(masked),
		KeyRedactedCount.Field(redacted))
	if err != nil {
		capitan.Error(ctx, SignalSendComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(ctx, SignalSendComplete, fields...)
}

// completeFields builds the fields shared by every completion event.
func completeFields(contentType, typeName string, size int, duration time.Duration, counts ...capitan.Field) []capitan.Field {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	return append(fields, counts...)
}
