package observability

import (
	"context"
	"testing"

	"github.com/leagueops/league-manager/internal/config"
)

func TestInitUptrace_DisabledReturnsNoopShutdown(t *testing.T) {
	cfg := config.Config{UptraceEnabled: false}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("expected non-nil shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNStaysDisabled(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "   "}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestInitPyroscope_DisabledReturnsNoopStop(t *testing.T) {
	cfg := config.Config{PyroscopeEnabled: false}

	stop, err := InitPyroscope(cfg, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if stop == nil {
		t.Fatalf("expected non-nil stop func")
	}
	if err := stop(); err != nil {
		t.Fatalf("noop stop: %v", err)
	}
}
