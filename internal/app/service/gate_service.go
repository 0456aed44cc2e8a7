package service

import (
	"context"
	"errors"
	"time"

	"nerine_frontend/internal/common"
	"nerine_frontend/internal/domain/model"
	"nerine_frontend/internal/platform/backend"
)

// Outcome is what a gated page load resolved to. Every load ends in exactly
// one of these or a fatal error; there is no fifth state.
type Outcome int

const (
	// OutcomeContent: the data loaded, render it.
	OutcomeContent Outcome = iota
	// OutcomePlaceholder: the event has not started, show the countdown.
	OutcomePlaceholder
	// OutcomeLogin: the session is invalid, send the user to re-authenticate.
	OutcomeLogin
	// OutcomeNotFound: the requested resource (a division scope) does not
	// exist.
	OutcomeNotFound
)

type GateService struct {
	client *backend.Client
}

func NewGateService(client *backend.Client) *GateService {
	return &GateService{client: client}
}

type ChallengesPage struct {
	Outcome    Outcome
	Challenges []model.Challenge
	// StartsAt is set alongside OutcomePlaceholder.
	StartsAt time.Time
}

// Challenges gates the challenge list behind the event phase. Before the
// start time the backend is not called at all; if the backend still reports
// event_not_started (clock skew), that is treated identically.
func (g *GateService) Challenges(ctx context.Context, ev *model.Event, token string) (*ChallengesPage, error) {
	if !ev.Started(time.Now()) {
		return &ChallengesPage{Outcome: OutcomePlaceholder, StartsAt: ev.StartTime.Time}, nil
	}

	challs, err := g.client.Challenges(ctx, token)
	if err != nil {
		outcome, err := classify(ev, err, false)
		if err != nil {
			return nil, err
		}
		return &ChallengesPage{Outcome: outcome, StartsAt: ev.StartTime.Time}, nil
	}

	return &ChallengesPage{Outcome: OutcomeContent, Challenges: challs}, nil
}

type LeaderboardPage struct {
	Outcome  Outcome
	Entries  []model.LeaderboardEntry
	StartsAt time.Time
}

// Leaderboard gates the standings the same way; a division that the backend
// does not know resolves to OutcomeNotFound instead of a fatal error.
func (g *GateService) Leaderboard(ctx context.Context, ev *model.Event, division string) (*LeaderboardPage, error) {
	if !ev.Started(time.Now()) {
		return &LeaderboardPage{Outcome: OutcomePlaceholder, StartsAt: ev.StartTime.Time}, nil
	}

	entries, err := g.client.Leaderboard(ctx, division)
	if err != nil {
		outcome, err := classify(ev, err, division != "")
		if err != nil {
			return nil, err
		}
		return &LeaderboardPage{Outcome: outcome, StartsAt: ev.StartTime.Time}, nil
	}

	return &LeaderboardPage{Outcome: OutcomeContent, Entries: entries}, nil
}

// classify maps a failed data fetch to a page outcome. Anything it cannot
// place is fatal to the page and surfaces as-is; transport faults are never
// absorbed into an outcome.
func classify(ev *model.Event, err error, allowNotFound bool) (Outcome, error) {
	var apiErr *common.APIError
	if !errors.As(err, &apiErr) {
		return 0, err
	}

	switch apiErr.Kind {
	case common.ErrEventNotStarted:
		return OutcomePlaceholder, nil
	case common.ErrInvalidToken:
		// a stale token before the event simply degrades to the countdown;
		// once the event runs the user has to log in again
		if !ev.Started(time.Now()) {
			return OutcomePlaceholder, nil
		}
		return OutcomeLogin, nil
	case common.ErrNotFound:
		if allowNotFound {
			return OutcomeNotFound, nil
		}
	}
	return 0, err
}
