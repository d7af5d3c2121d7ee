package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// Service owns the hero aggregate and every progression operation. All
// mutations are synchronous read-modify-write; a single writer is
// assumed.
type Service struct {
	db            *sql.DB
	heroes        *storage.HeroRepo
	tasks         *storage.TaskRepo
	completions   *storage.CompletionRepo
	bosses        *storage.BossRepo
	dungeons      *storage.DungeonRepo
	journal       *storage.JournalRepo
	reviews       *storage.ReviewRepo
	redemptions   *storage.RedemptionRepo
	customRewards *storage.CustomRewardRepo
	achievements  *storage.AchievementRepo
	templates     *storage.QuestTemplateRepo

	clock    Clock
	notifier Notifier
	log      *zap.Logger
	questGen QuestGenerator
}

// Option configures a Service.
type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithQuestGenerator(g QuestGenerator) Option {
	return func(s *Service) { s.questGen = g }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:            db,
		heroes:        storage.NewHeroRepo(db),
		tasks:         storage.NewTaskRepo(db),
		completions:   storage.NewCompletionRepo(db),
		bosses:        storage.NewBossRepo(db),
		dungeons:      storage.NewDungeonRepo(db),
		journal:       storage.NewJournalRepo(db),
		reviews:       storage.NewReviewRepo(db),
		redemptions:   storage.NewRedemptionRepo(db),
		customRewards: storage.NewCustomRewardRepo(db),
		achievements:  storage.NewAchievementRepo(db),
		templates:     storage.NewQuestTemplateRepo(db),
		clock:         SystemClock(),
		notifier:      NopNotifier(),
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.questGen == nil {
		s.questGen = NewTemplateGenerator(s)
	}
	return s
}

func (s *Service) HeroRepo() *storage.HeroRepo       { return s.heroes }
func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }
func (s *Service) DungeonRepo() *storage.DungeonRepo { return s.dungeons }
func (s *Service) JournalRepo() *storage.JournalRepo { return s.journal }
func (s *Service) ReviewRepo() *storage.ReviewRepo   { return s.reviews }
func (s *Service) Clock() Clock                      { return s.clock }

// Hero loads the singleton hero.
func (s *Service) Hero(ctx context.Context) (*storage.Hero, error) {
	return s.heroes.GetOrCreateMain(ctx)
}

// HeroLevel derives the hero's level from cumulative XP. Level is never
// stored independently.
func HeroLevel(h *storage.Hero) int {
	return LevelForTotalXP(h.XP)
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}
