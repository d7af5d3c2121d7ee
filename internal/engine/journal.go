package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// Rapid journal deletions inside this window pay an escalating XP and
// coin penalty, so the entry reward cannot be farmed by add/delete
// cycles.
const journalPenaltyWindow = time.Hour

// JournalResult reports an entry's reward.
type JournalResult struct {
	Entry *storage.JournalEntry
	XP    XPResult
	Coins int
}

// AddJournalEntry stores a reflection entry and pays the fixed reward.
func (s *Service) AddJournalEntry(ctx context.Context, content string, mood *string) (*JournalResult, error) {
	content, err := normalizeTitle(content)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	id, err := s.journal.Insert(ctx, content, mood, now)
	if err != nil {
		return nil, err
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	xpRes := s.applyXP(h, JournalEntryXP)
	h.Coins += JournalEntryCoins
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	s.log.Info("journal entry added", zap.Int64("id", id))
	if _, err := s.EvaluateAchievements(ctx); err != nil {
		s.log.Warn("achievement evaluation failed", zap.Error(err))
	}

	e, err := s.journal.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &JournalResult{Entry: e, XP: xpRes, Coins: JournalEntryCoins}, nil
}

// DeletePenalty reports what a journal deletion cost.
type DeletePenalty struct {
	XPLost    int
	CoinsLost int
}

// DeleteJournalEntry removes an entry. Only entries younger than an
// hour are penalized; each further penalized deletion inside the window
// doubles the cost, starting at the entry reward itself. Older entries
// delete for free.
func (s *Service) DeleteJournalEntry(ctx context.Context, id int64) (*DeletePenalty, error) {
	e, err := s.journal.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, &NotFoundError{Kind: "journal entry", ID: id}
	}

	now := s.clock.Now()
	if now.Sub(e.CreatedAt) >= journalPenaltyWindow {
		if err := s.journal.Delete(ctx, id); err != nil {
			return nil, err
		}
		s.log.Info("journal entry deleted", zap.Int64("id", id))
		return &DeletePenalty{}, nil
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}

	rapid := h.LastJournalDeletion != nil && now.Sub(*h.LastJournalDeletion) < journalPenaltyWindow
	if rapid {
		h.JournalDeletions++
	} else {
		h.JournalDeletions = 0
	}

	pen := &DeletePenalty{
		XPLost:    JournalEntryXP << h.JournalDeletions,
		CoinsLost: JournalEntryCoins << h.JournalDeletions,
	}

	s.applyXP(h, -pen.XPLost)
	h.Coins -= pen.CoinsLost
	if h.Coins < 0 {
		h.Coins = 0
	}
	h.LastJournalDeletion = &now

	if err := s.journal.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	s.log.Info("journal entry deleted", zap.Int64("id", id),
		zap.Int("xp_lost", pen.XPLost), zap.Int("coins_lost", pen.CoinsLost))
	return pen, nil
}

// JournalEntries lists all entries, newest first.
func (s *Service) JournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	return s.journal.ListAll(ctx)
}

// AddWeeklyReview records one retrospective per ISO week and pays the
// review reward.
func (s *Service) AddWeeklyReview(ctx context.Context, content string) (*XPResult, error) {
	content, err := normalizeTitle(content)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	week := ISOWeekID(now)
	done, err := s.reviews.HasWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, fmt.Errorf("week %s already has a review", week)
	}

	if _, err := s.reviews.Insert(ctx, week, content, now); err != nil {
		return nil, err
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	xpRes := s.applyXP(h, WeeklyReviewXP)
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	s.log.Info("weekly review added", zap.String("week", week))
	return &xpRes, nil
}

// WeeklyReviews lists all reviews, newest first.
func (s *Service) WeeklyReviews(ctx context.Context) ([]storage.WeeklyReview, error) {
	return s.reviews.ListAll(ctx)
}
