package dashboards

import (
	"context"
	"errors"
	"testing"
)

// Exercises the resolve -> confirm -> execute pipeline the way the delete
// command wires it.
func TestDeleteFlowDeclinedConfirmationMakesNoCalls(t *testing.T) {
	svc := &fakeService{listing: sampleListing()}
	out := &fakeOutput{}

	listing, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := DeletionRequest{Mode: ModeAll}
	targets, err := Resolve(req, listing, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(targets) != 3 {
		t.Fatalf("expected 3 targets, got %d", len(targets))
	}

	gate := Gate{Prompt: &fakePrompt{confirmAnswer: true, strongAnswer: false}, Out: out}
	if err := gate.Confirm(req.Mode, targets, listing, false); !errors.Is(err, ErrUserAborted) {
		t.Fatalf("expected ErrUserAborted, got %v", err)
	}

	if len(svc.deleted) != 0 {
		t.Errorf("no delete calls may happen after a declined confirmation, got %v", svc.deleted)
	}
}

func TestDeleteFlowBestEffort(t *testing.T) {
	svc := &fakeService{
		listing:  sampleListing(),
		failWith: map[string]error{"uuid-2": errors.New("network error")},
	}
	out := &fakeOutput{}

	listing, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	targets, err := Resolve(DeletionRequest{Mode: ModeAll, Force: true}, listing, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := Executor{}.Execute(context.Background(), targets, svc.Delete, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Succeeded != 2 {
		t.Errorf("expected 2 succeeded, got %d", result.Succeeded)
	}
	if len(result.Failed) != 1 || result.Failed[0].ID != "uuid-2" {
		t.Errorf("expected uuid-2 to fail, got %+v", result.Failed)
	}
	if len(svc.deleted) != 3 {
		t.Errorf("all targets should be attempted despite the failure, got %v", svc.deleted)
	}

	want := "Deleted 2 of 3 dashboards. Failed: uuid-2"
	if got := Report(result, len(targets)); got != want {
		t.Errorf("expected summary %q, got %q", want, got)
	}
}
