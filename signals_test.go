package keysmith

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitProcessorCreated(_ *testing.T) {
	// Should not panic
	emitProcessorCreated(context.Background(), "application/json", "License")
}

func TestEmitIssue(_ *testing.T) {
	emitIssueStart(context.Background(), "application/json", "License")
	emitIssueComplete(context.Background(), "application/json", "License", 64, time.Millisecond, 2, nil)
	emitIssueComplete(context.Background(), "application/json", "License", 0, time.Millisecond, 0, ErrInvalidInput)
}

func TestEmitCheck(_ *testing.T) {
	emitCheckStart(context.Background(), "application/json", "License")
	emitCheckComplete(context.Background(), "application/json", "License", 64, time.Millisecond, 2, nil)
	emitCheckComplete(context.Background(), "application/json", "License", 64, time.Millisecond, 2, ErrSerialMismatch)
}

func TestEmitStore(_ *testing.T) {
	emitStoreStart(context.Background(), "application/json", "License")
	emitStoreComplete(context.Background(), "application/json", "License", 128, time.Millisecond, 1, nil)
	emitStoreComplete(context.Background(), "application/json", "License", 0, time.Millisecond, 0, errors.New("test error"))
}

func TestEmitSend(_ *testing.T) {
	emitSendStart(context.Background(), "application/json", "License")
	emitSendComplete(context.Background(), "application/json", "License", 96, time.Millisecond, 2, 1, nil)
	emitSendComplete(context.Background(), "application/json", "License", 0, time.Millisecond, 0, 0, errors.New("test error"))
}

func TestCompleteFields(t *testing.T) {
	fields := completeFields("application/json", "License", 10, time.Second,
		KeyMaskedCount.Field(1), KeyRedactedCount.Field(2))
	if len(fields) != 6 {
		t.Errorf("completeFields() returned %d fields, want 6", len(fields))
	}
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalProcessorCreated", SignalProcessorCreated},
		{"SignalIssueStart", SignalIssueStart},
		{"SignalIssueComplete", SignalIssueComplete},
		{"SignalCheckStart", SignalCheckStart},
		{"SignalCheckComplete", SignalCheckComplete},
		{"SignalStoreStart", SignalStoreStart},
		{"SignalStoreComplete", SignalStoreComplete},
		{"SignalSendStart", SignalSendStart},
		{"SignalSendComplete", SignalSendComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}
