package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/repository"
	"github.com/osse101/VentureBot_Go/internal/session"
	"github.com/osse101/VentureBot_Go/internal/sse"
)

// SessionComponents are the multi-participant pieces built around the SSE hub
type SessionComponents struct {
	Self       domain.Participant
	Presence   *session.Presence
	Hub        *sse.Hub
	Courier    *session.Courier
	Roller     dice.Roller
	Negotiator *coverage.Negotiator
}

// InitializeSession registers this process as an always-online GM, builds the
// hub as the courier's channel, and wires the roller and coverage negotiator.
// Rolls are delegated to owning participants when cfg.DelegateRolls is set.
func InitializeSession(ctx context.Context, cfg *config.Config, roster repository.Roster) (*SessionComponents, error) {
	self := domain.Participant{ID: cfg.ParticipantID, Name: cfg.ParticipantID, GM: true, Active: true}
	if err := roster.UpsertParticipant(ctx, self); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterSelf, err)
	}

	presence := session.NewPresence(roster)
	presence.Connect(self.ID)

	hub := sse.NewHub(presence)
	courier := session.NewCourier(self.ID, hub, cfg.PromptTimeout)

	local := coverage.StaticDecider(domain.CoverageDecision(cfg.LocalCoverageDecision))
	localRoller := dice.NewRandomRoller(nil)

	var roller dice.Roller = localRoller
	if cfg.DelegateRolls {
		roller = session.NewDelegatedRoller(courier, presence, localRoller)
	}

	// Answers prompts other coordinators address to this participant
	session.NewResponder(self, local, localRoller).Register(courier)

	negotiator := coverage.NewNegotiator(presence, local, session.NewRemoteDecider(courier), self)

	slog.Info(LogMsgSessionInitialized,
		"participant_id", self.ID,
		"delegate_rolls", cfg.DelegateRolls,
		"local_coverage_decision", cfg.LocalCoverageDecision,
		"prompt_timeout", cfg.PromptTimeout)

	return &SessionComponents{
		Self:       self,
		Presence:   presence,
		Hub:        hub,
		Courier:    courier,
		Roller:     roller,
		Negotiator: negotiator,
	}, nil
}
