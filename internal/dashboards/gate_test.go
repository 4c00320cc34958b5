package dashboards

import (
	"errors"
	"strings"
	"testing"
)

func TestGateConfirm(t *testing.T) {
	listing := sampleListing()
	allTargets := []string{"uuid-1", "uuid-2", "uuid-3"}

	tests := []struct {
		name          string
		mode          Mode
		force         bool
		confirmAnswer bool
		strongAnswer  bool
		wantAborted   bool
		wantConfirms  int
		wantStrongs   int
		wantRendered  bool
	}{
		{
			name:  "force skips all prompting",
			mode:  ModeAll,
			force: true,
		},
		{
			name:          "all mode requires standard and strong confirmation",
			mode:          ModeAll,
			confirmAnswer: true,
			strongAnswer:  true,
			wantConfirms:  1,
			wantStrongs:   1,
			wantRendered:  true,
		},
		{
			name:          "declining the standard prompt aborts before the strong one",
			mode:          ModeAll,
			confirmAnswer: false,
			wantAborted:   true,
			wantConfirms:  1,
			wantRendered:  true,
		},
		{
			name:          "declining the strong prompt aborts",
			mode:          ModeAll,
			confirmAnswer: true,
			strongAnswer:  false,
			wantAborted:   true,
			wantConfirms:  1,
			wantStrongs:   1,
			wantRendered:  true,
		},
		{
			name:          "pattern mode renders the list before a single prompt",
			mode:          ModeTitlePattern,
			confirmAnswer: true,
			wantConfirms:  1,
			wantRendered:  true,
		},
		{
			name:          "explicit ids get the single prompt without a listing",
			mode:          ModeExplicitIDs,
			confirmAnswer: true,
			wantConfirms:  1,
		},
		{
			name:          "declining in explicit mode aborts",
			mode:          ModeExplicitIDs,
			confirmAnswer: false,
			wantAborted:   true,
			wantConfirms:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := &fakePrompt{confirmAnswer: tt.confirmAnswer, strongAnswer: tt.strongAnswer}
			out := &fakeOutput{}
			gate := Gate{Prompt: prompt, Out: out}

			err := gate.Confirm(tt.mode, allTargets, listing, tt.force)

			if tt.wantAborted {
				if !errors.Is(err, ErrUserAborted) {
					t.Fatalf("expected ErrUserAborted, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(prompt.confirmCalls) != tt.wantConfirms {
				t.Errorf("expected %d standard confirmation(s), got %d", tt.wantConfirms, len(prompt.confirmCalls))
			}
			if len(prompt.strongCalls) != tt.wantStrongs {
				t.Errorf("expected %d strong confirmation(s), got %d", tt.wantStrongs, len(prompt.strongCalls))
			}

			rendered := false
			for _, line := range out.info {
				if strings.Contains(line, "CPU Usage") {
					rendered = true
				}
			}
			if rendered != tt.wantRendered {
				t.Errorf("rendered list = %v, expected %v (info lines: %v)", rendered, tt.wantRendered, out.info)
			}

			if tt.mode == ModeAll && !tt.force {
				warned := false
				for _, line := range out.warn {
					if strings.Contains(line, "cannot be undone") {
						warned = true
					}
				}
				if !warned {
					t.Errorf("all mode should warn about irreversibility, warnings: %v", out.warn)
				}
			}
		})
	}
}

func TestGateRendersEveryTarget(t *testing.T) {
	listing := sampleListing()
	prompt := &fakePrompt{confirmAnswer: true, strongAnswer: true}
	out := &fakeOutput{}
	gate := Gate{Prompt: prompt, Out: out}

	if err := gate.Confirm(ModeAll, []string{"uuid-1", "uuid-2", "uuid-3"}, listing, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"CPU Usage", "Host Overview", "cpu-errors"} {
		found := false
		for _, line := range out.info {
			if strings.Contains(line, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected rendered list to contain %q, info lines: %v", want, out.info)
		}
	}
}

func TestGateRendersUntitledForUnknownIDs(t *testing.T) {
	prompt := &fakePrompt{confirmAnswer: true}
	out := &fakeOutput{}
	gate := Gate{Prompt: prompt, Out: out}

	if err := gate.Confirm(ModeTitlePattern, []string{"unknown-id"}, nil, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, line := range out.info {
		if strings.Contains(line, "Untitled") && strings.Contains(line, "unknown-id") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Untitled fallback for unknown id, info lines: %v", out.info)
	}
}
