package engine

import (
	"context"
	"testing"
)

func TestQuestTemplateUnlockAndAccept(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	unlocked, err := svc.EvaluateQuestUnlocks(ctx)
	if err != nil {
		t.Fatalf("EvaluateQuestUnlocks: %v", err)
	}
	codes := map[string]bool{}
	for _, d := range unlocked {
		codes[d.Code] = true
	}
	if !codes["morning-walk"] {
		t.Fatalf("morning-walk not unlocked for a fresh hero")
	}
	if codes["deep-work"] {
		t.Fatalf("deep-work unlocked for a fresh hero")
	}

	task, err := svc.AcceptQuestTemplate(ctx, "morning-walk")
	if err != nil {
		t.Fatalf("AcceptQuestTemplate: %v", err)
	}
	if task.Type != string(TaskDaily) {
		t.Fatalf("accepted quest type=%q, want daily", task.Type)
	}

	// Accepting twice is rejected.
	if _, err := svc.AcceptQuestTemplate(ctx, "morning-walk"); err == nil {
		t.Fatalf("expected error accepting an already-accepted template")
	}
}

func TestSuggestQuestReturnsFirstAvailable(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q := svc.SuggestQuest(ctx)
	if q == nil {
		t.Fatalf("expected a suggestion for a fresh hero")
	}
	if q.Title == "" {
		t.Fatalf("empty suggestion: %+v", q)
	}
}

type failingGenerator struct{}

func (failingGenerator) Suggest(context.Context, Stats) (*Quest, error) {
	return nil, context.DeadlineExceeded
}

func TestSuggestQuestGeneratorFailureIsNonFatal(t *testing.T) {
	svc, _, cleanup := newTestService(t)
	defer cleanup()

	svc.questGen = failingGenerator{}
	if q := svc.SuggestQuest(context.Background()); q != nil {
		t.Fatalf("expected no suggestion on generator failure, got %+v", q)
	}
}
