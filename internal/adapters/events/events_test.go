package events

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-service/internal/ports"
)

func TestNoop_Publish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := (Noop{Logger: logger}).Publish(context.Background(), ports.ProjectCreated{Name: "Apollo"}); err != nil {
		t.Fatalf("Publish() error = %v, want nil", err)
	}
	if !strings.Contains(buf.String(), "topic=project.created") {
		t.Errorf("log output = %q, want topic attribute", buf.String())
	}

	if err := (Noop{}).Publish(context.Background(), ports.ProjectCreated{}); err != nil {
		t.Errorf("Publish() without logger error = %v, want nil", err)
	}
}
