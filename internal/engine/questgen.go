package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// TemplateStatus is the lifecycle of a built-in quest template.
type TemplateStatus string

const (
	TemplateLocked    TemplateStatus = "locked"
	TemplateAvailable TemplateStatus = "available"
	TemplateAccepted  TemplateStatus = "accepted"
)

// Quest is a suggested task a generator proposes.
type Quest struct {
	Title      string
	Category   Category
	Difficulty Difficulty
	Type       TaskType
}

// QuestGenerator proposes the next quest for the hero. A nil quest with
// a nil error means the generator has nothing to suggest.
type QuestGenerator interface {
	Suggest(ctx context.Context, stats Stats) (*Quest, error)
}

// TemplateDef is a built-in quest template with a declarative unlock
// predicate over hero stats.
type TemplateDef struct {
	Code   string
	Quest  Quest
	Unlock func(Stats) bool
}

var builtinTemplates = []TemplateDef{
	{
		Code:   "morning-walk",
		Quest:  Quest{Title: "Take a morning walk", Category: CategoryHealth, Difficulty: DifficultyEasy, Type: TaskDaily},
		Unlock: func(s Stats) bool { return true },
	},
	{
		Code:   "tidy-desk",
		Quest:  Quest{Title: "Tidy your desk", Category: CategoryMindfulness, Difficulty: DifficultyEasy, Type: TaskOneTime},
		Unlock: func(s Stats) bool { return s.TasksCompleted >= 1 },
	},
	{
		Code:   "read-chapter",
		Quest:  Quest{Title: "Read one chapter", Category: CategoryLearning, Difficulty: DifficultyMedium, Type: TaskDaily},
		Unlock: func(s Stats) bool { return s.Level >= 3 },
	},
	{
		Code:   "budget-review",
		Quest:  Quest{Title: "Review this week's spending", Category: CategoryFinance, Difficulty: DifficultyMedium, Type: TaskWeekly},
		Unlock: func(s Stats) bool { return s.Level >= 5 },
	},
	{
		Code:   "call-friend",
		Quest:  Quest{Title: "Call a friend", Category: CategorySocial, Difficulty: DifficultyEasy, Type: TaskWeekly},
		Unlock: func(s Stats) bool { return s.TasksCompleted >= 10 },
	},
	{
		Code:   "deep-work",
		Quest:  Quest{Title: "Two hours of deep work", Category: CategoryCareer, Difficulty: DifficultyHard, Type: TaskDaily},
		Unlock: func(s Stats) bool { return s.Level >= 10 && s.LongestStreak >= 7 },
	},
}

func templateByCode(code string) *TemplateDef {
	for i := range builtinTemplates {
		if builtinTemplates[i].Code == code {
			return &builtinTemplates[i]
		}
	}
	return nil
}

// EvaluateQuestUnlocks promotes locked templates whose predicate now
// holds to available, and returns the newly available ones.
func (s *Service) EvaluateQuestUnlocks(ctx context.Context) ([]TemplateDef, error) {
	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.stats(ctx, h)
	if err != nil {
		return nil, err
	}

	var unlocked []TemplateDef
	for _, def := range builtinTemplates {
		state, err := s.templates.Get(ctx, def.Code)
		if err != nil {
			return nil, err
		}
		if state != nil && state.Status != string(TemplateLocked) {
			continue
		}
		if !def.Unlock(st) {
			continue
		}
		if err := s.templates.Upsert(ctx, storage.QuestTemplateState{
			Code:   def.Code,
			Status: string(TemplateAvailable),
		}); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, def)
		s.log.Info("quest template unlocked", zap.String("code", def.Code))
	}
	return unlocked, nil
}

// AcceptQuestTemplate turns an available template into a real quest.
func (s *Service) AcceptQuestTemplate(ctx context.Context, code string) (*storage.Task, error) {
	def := templateByCode(code)
	if def == nil {
		return nil, fmt.Errorf("quest template %q not found", code)
	}
	state, err := s.templates.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Status != string(TemplateAvailable) {
		return nil, fmt.Errorf("quest template %q is not available", code)
	}

	t, err := s.AddTask(ctx, AddTaskInput{
		Title:      def.Quest.Title,
		Category:   def.Quest.Category,
		Difficulty: def.Quest.Difficulty,
		Type:       def.Quest.Type,
	})
	if err != nil {
		return nil, err
	}
	if err := s.templates.Upsert(ctx, storage.QuestTemplateState{
		Code:   code,
		Status: string(TemplateAccepted),
	}); err != nil {
		return nil, err
	}
	return t, nil
}

// AvailableTemplates lists templates the hero can accept right now.
func (s *Service) AvailableTemplates(ctx context.Context) ([]TemplateDef, error) {
	states, err := s.templates.ListByStatus(ctx, string(TemplateAvailable))
	if err != nil {
		return nil, err
	}
	var out []TemplateDef
	for _, st := range states {
		if def := templateByCode(st.Code); def != nil {
			out = append(out, *def)
		}
	}
	return out, nil
}

// templateGenerator suggests the first available built-in template.
type templateGenerator struct {
	svc *Service
}

// NewTemplateGenerator backs quest suggestions with the built-in
// template catalog.
func NewTemplateGenerator(svc *Service) QuestGenerator {
	return &templateGenerator{svc: svc}
}

func (g *templateGenerator) Suggest(ctx context.Context, _ Stats) (*Quest, error) {
	if _, err := g.svc.EvaluateQuestUnlocks(ctx); err != nil {
		return nil, err
	}
	defs, err := g.svc.AvailableTemplates(ctx)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}
	q := defs[0].Quest
	return &q, nil
}

// SuggestQuest asks the configured generator for a quest. Generator
// failure is non-fatal; the caller just gets no suggestion.
func (s *Service) SuggestQuest(ctx context.Context) *Quest {
	h, err := s.Hero(ctx)
	if err != nil {
		s.log.Warn("quest suggestion failed", zap.Error(err))
		return nil
	}
	st, err := s.stats(ctx, h)
	if err != nil {
		s.log.Warn("quest suggestion failed", zap.Error(err))
		return nil
	}
	q, err := s.questGen.Suggest(ctx, st)
	if err != nil {
		s.log.Warn("quest suggestion failed", zap.Error(err))
		return nil
	}
	return q
}
