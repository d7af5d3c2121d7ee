package engine

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"odyssey/internal/storage"
)

// Target pace for a dungeon run: finishing under 30 minutes per
// challenge earns a speed bonus proportional to the margin.
const challengeTargetDuration = 30 * time.Minute

// AddDungeonInput carries the fields for a new dungeon. Difficulty
// clamps to 1..5; a zero XP value defaults to difficulty * 100.
type AddDungeonInput struct {
	Title      string
	Difficulty int
	XP         int
	Challenges []string
}

func (s *Service) AddDungeon(ctx context.Context, in AddDungeonInput) (*storage.Dungeon, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if in.Difficulty < 1 {
		in.Difficulty = 1
	}
	if in.Difficulty > 5 {
		in.Difficulty = 5
	}
	if in.XP <= 0 {
		in.XP = in.Difficulty * 100
	}

	var challenges []string
	for _, c := range in.Challenges {
		if t, err := normalizeTitle(c); err == nil {
			challenges = append(challenges, t)
		}
	}

	id, err := s.dungeons.Insert(ctx, storage.DungeonInsert{
		Title:      title,
		Difficulty: in.Difficulty,
		XP:         in.XP,
		Challenges: challenges,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("dungeon added", zap.Int64("id", id), zap.String("title", title),
		zap.Int("challenges", len(challenges)))
	return s.dungeons.Get(ctx, id)
}

// StartDungeon stamps the run's start time. A dungeon runs at most
// once; restarting a started or finished run is rejected.
func (s *Service) StartDungeon(ctx context.Context, id int64) (*storage.Dungeon, error) {
	d, err := s.dungeons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Kind: "dungeon", ID: id}
	}
	if d.Completed {
		return nil, ErrDungeonAlreadyComplete
	}
	if d.StartTime != nil {
		return nil, ErrDungeonAlreadyStarted
	}
	if err := s.dungeons.SetStartTime(ctx, id, s.clock.Now()); err != nil {
		return nil, err
	}
	s.log.Info("dungeon started", zap.Int64("id", id), zap.String("title", d.Title))
	return s.dungeons.Get(ctx, id)
}

// ToggleChallenge flips one challenge's completion state.
func (s *Service) ToggleChallenge(ctx context.Context, dungeonID, challengeID int64) ([]storage.DungeonChallenge, error) {
	d, err := s.dungeons.Get(ctx, dungeonID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Kind: "dungeon", ID: dungeonID}
	}
	if d.Completed {
		return nil, ErrDungeonAlreadyComplete
	}

	challenges, err := s.dungeons.Challenges(ctx, dungeonID)
	if err != nil {
		return nil, err
	}
	for _, c := range challenges {
		if c.ID == challengeID {
			if err := s.dungeons.SetChallengeCompleted(ctx, challengeID, !c.Completed); err != nil {
				return nil, err
			}
			return s.dungeons.Challenges(ctx, dungeonID)
		}
	}
	return nil, &NotFoundError{Kind: "challenge", ID: challengeID}
}

// DungeonResult reports a cleared dungeon's payout.
type DungeonResult struct {
	Dungeon   *storage.Dungeon
	TimeTaken time.Duration
	BaseXP    int
	BonusXP   int
	TotalXP   int
	XP        XPResult
}

// CompleteDungeon finishes a started run with every challenge done. The
// speed bonus is base XP scaled by how far under the target pace the
// run came in, floored at zero for slow runs.
func (s *Service) CompleteDungeon(ctx context.Context, id int64) (*DungeonResult, error) {
	d, err := s.dungeons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Kind: "dungeon", ID: id}
	}
	if d.Completed {
		return nil, ErrDungeonAlreadyComplete
	}
	if d.StartTime == nil {
		return nil, ErrDungeonNotStarted
	}

	challenges, err := s.dungeons.Challenges(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, c := range challenges {
		if !c.Completed {
			return nil, ErrChallengesRemaining
		}
	}

	now := s.clock.Now()
	taken := now.Sub(*d.StartTime)
	target := time.Duration(len(challenges)) * challengeTargetDuration

	bonus := 0
	if target > 0 {
		bonus = int(math.Round(float64(d.XP) * (1 - taken.Seconds()/target.Seconds())))
		if bonus < 0 {
			bonus = 0
		}
	}
	total := d.XP + bonus

	if err := s.dungeons.MarkCompleted(ctx, id, now, int64(taken.Seconds())); err != nil {
		return nil, err
	}

	h, err := s.Hero(ctx)
	if err != nil {
		return nil, err
	}
	xpRes := s.applyXP(h, total)
	if err := s.heroes.Update(ctx, h); err != nil {
		return nil, err
	}

	s.log.Info("dungeon cleared", zap.Int64("id", id), zap.String("title", d.Title),
		zap.Duration("time_taken", taken), zap.Int("total_xp", total))
	s.notifier.Notify(NotifyDungeonCleared, "Dungeon Cleared!", d.Title)

	if _, err := s.EvaluateAchievements(ctx); err != nil {
		s.log.Warn("achievement evaluation failed", zap.Error(err))
	}

	d, err = s.dungeons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DungeonResult{
		Dungeon:   d,
		TimeTaken: taken,
		BaseXP:    d.XP,
		BonusXP:   bonus,
		TotalXP:   total,
		XP:        xpRes,
	}, nil
}

// Dungeons lists every dungeon.
func (s *Service) Dungeons(ctx context.Context) ([]storage.Dungeon, error) {
	return s.dungeons.ListAll(ctx)
}

// DungeonChallenges lists a dungeon's challenges in order.
func (s *Service) DungeonChallenges(ctx context.Context, dungeonID int64) ([]storage.DungeonChallenge, error) {
	return s.dungeons.Challenges(ctx, dungeonID)
}
