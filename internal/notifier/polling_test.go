package notifier

import (
	"context"
	"testing"
	"time"
)

func TestSleepCtx_Elapses(t *testing.T) {
	if !sleepCtx(context.Background(), time.Millisecond) {
		t.Error("expected full duration to elapse")
	}
}

func TestSleepCtx_CancelledEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepCtx(ctx, time.Minute) {
		t.Error("expected cancelled context to cut the wait short")
	}
}
