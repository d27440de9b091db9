package host

import (
	"strings"
	"testing"
	"time"

	"github.com/ytget/loadbutton/internal/model"
)

func waitUpdate(t *testing.T, ch <-chan *model.Operation) *model.Operation {
	t.Helper()
	select {
	case op := <-ch:
		return op
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for operation update")
		return nil
	}
}

func TestSimulatedService_Outcome(t *testing.T) {
	tests := []struct {
		name        string
		failureRate float64
		want        model.OperationStatus
	}{
		{"always succeeds", 0, model.OperationSucceeded},
		{"always fails", 1, model.OperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSimulatedService(5*time.Millisecond, tt.failureRate)
			updates := make(chan *model.Operation, 1)
			svc.SetUpdateCallback(func(op *model.Operation) { updates <- op })

			op, err := svc.Start(model.Repository{Key: RepoGlide, URL: GlideURL})
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			if !strings.HasPrefix(op.ID, OperationIDPrefix) {
				t.Errorf("ID = %q, want prefix %q", op.ID, OperationIDPrefix)
			}
			if op.Status != model.OperationRunning {
				t.Errorf("initial status = %s, want Running", op.Status)
			}

			got := waitUpdate(t, updates)
			if got.ID != op.ID || got.Status != tt.want {
				t.Errorf("update = %s/%s, want %s/%s", got.ID, got.Status, op.ID, tt.want)
			}
			if got.FinishedAt.IsZero() {
				t.Error("FinishedAt not set")
			}
			stored, ok := svc.Get(op.ID)
			if !ok || stored.Status != tt.want {
				t.Errorf("Get() = %+v, %v", stored, ok)
			}
		})
	}
}

func TestSimulatedService_Cancel(t *testing.T) {
	svc := NewSimulatedService(time.Hour, 0)
	updates := make(chan *model.Operation, 1)
	svc.SetUpdateCallback(func(op *model.Operation) { updates <- op })

	op, err := svc.Start(model.Repository{Key: RepoGlide, URL: GlideURL})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := svc.Cancel(op.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	got := waitUpdate(t, updates)
	if got.Status != model.OperationCanceled {
		t.Errorf("status = %s, want Canceled", got.Status)
	}
	if err := svc.Cancel(op.ID); err == nil {
		t.Error("second Cancel() error = nil, want error")
	}
	if err := svc.Cancel("missing"); err == nil {
		t.Error("Cancel(missing) error = nil, want error")
	}
}

func TestSimulatedService_RejectsBadURL(t *testing.T) {
	svc := NewSimulatedService(time.Millisecond, 0)
	if _, err := svc.Start(model.Repository{Key: "x", URL: "ftp://example.com/a.zip"}); err == nil {
		t.Error("Start() error = nil, want error")
	}
}

func TestGenerateOperationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateOperationID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
