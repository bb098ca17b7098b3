package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/VentureBot_Go/internal/coverage"
	"github.com/osse101/VentureBot_Go/internal/database/memory"
	"github.com/osse101/VentureBot_Go/internal/dice"
	"github.com/osse101/VentureBot_Go/internal/domain"
	"github.com/osse101/VentureBot_Go/internal/modifier"
	"github.com/osse101/VentureBot_Go/internal/session"
	"github.com/osse101/VentureBot_Go/internal/turn"
	"github.com/osse101/VentureBot_Go/internal/validation"
	"github.com/osse101/VentureBot_Go/internal/venture"
)

const (
	simParticipantID = "venturectl"
	simActorID       = "sim-actor"
	simFacilityID    = "sim-facility"
)

type simulateOptions struct {
	configPath string
	boonsPath  string
	turns      int
	seed       uint64
	gold       int
	decision   string
	asJSON     bool
}

type simulationReport struct {
	Config   domain.VentureConfig `json:"config"`
	Turns    []domain.TurnResult  `json:"turns"`
	Skipped  []string             `json:"skipped,omitempty"`
	Final    domain.VentureState  `json:"final"`
	Purse    domain.Purse         `json:"purse"`
	TotalNet int                  `json:"total_net"`
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Resolve a run of turns against an in-memory venture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSimConfig(cmd, opts)
			if err != nil {
				return err
			}
			report, err := runSimulation(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Venture config JSON; defaults apply to omitted fields")
	f.StringVar(&opts.boonsPath, "boons", "", "Boon text file, replaces boons_text from the config")
	f.IntVar(&opts.turns, "turns", 10, "Number of turns to resolve")
	f.Uint64Var(&opts.seed, "seed", 1, "Dice seed for reproducible runs")
	f.IntVar(&opts.gold, "gold", 0, "Gold the actor starts with")
	f.StringVar(&opts.decision, "decision", string(domain.DecisionTreasuryThenActor), "Answer to coverage prompts: treasury_then_actor, actor_only or decline")
	f.BoolVar(&opts.asJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func loadSimConfig(cmd *cobra.Command, opts simulateOptions) (domain.VentureConfig, error) {
	cfg := domain.DefaultVentureConfig()

	if opts.configPath != "" {
		data, err := readInput(cmd, opts.configPath)
		if err != nil {
			return cfg, err
		}
		if err := validation.NewSchemaValidator().ValidateBytes(data, validation.VentureConfigSchema); err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
	}

	if opts.boonsPath != "" {
		text, err := readInput(cmd, opts.boonsPath)
		if err != nil {
			return cfg, err
		}
		cfg.BoonsText = string(text)
	}

	cfg.Normalize()
	return cfg, nil
}

// runSimulation wires the real venture service and turn processor over a
// memory store with this process as the only, always-connected GM.
func runSimulation(ctx context.Context, cfg domain.VentureConfig, opts simulateOptions) (*simulationReport, error) {
	if opts.turns < 1 {
		return nil, fmt.Errorf("turns must be at least 1, got %d", opts.turns)
	}
	decision := domain.CoverageDecision(opts.decision)
	switch decision {
	case domain.DecisionTreasuryThenActor, domain.DecisionActorOnly, domain.DecisionDecline:
	default:
		return nil, fmt.Errorf("unknown coverage decision %q", opts.decision)
	}

	store := memory.NewStore()
	facility := domain.FacilityRef{ID: simFacilityID, Name: cfg.Name, ActorID: simActorID}
	if err := store.SaveVenture(ctx, domain.Venture{Facility: facility, Config: cfg, State: domain.NewVentureState(cfg)}); err != nil {
		return nil, err
	}
	if err := store.SavePurse(ctx, simActorID, domain.Purse{domain.DenomGold: opts.gold}); err != nil {
		return nil, err
	}

	self := domain.Participant{ID: simParticipantID, Name: simParticipantID, GM: true, Active: true}
	if err := store.UpsertParticipant(ctx, self); err != nil {
		return nil, err
	}
	presence := session.NewPresence(store)
	presence.Connect(self.ID)

	decider := coverage.StaticDecider(decision)
	roller := dice.NewRandomRoller(dice.NewSeededSource(opts.seed))
	ventures := venture.NewService(store, store, modifier.NewAggregator(store), roller,
		coverage.NewNegotiator(presence, decider, decider, self), nil, nil)
	processor := turn.NewProcessor(turn.Config{ParticipantID: self.ID, CacheTTL: time.Hour}, presence, ventures, store, store, store, nil, nil)

	report := &simulationReport{Config: cfg}
	actor := domain.ActorRef{ID: simActorID}
	for i := 1; i <= opts.turns; i++ {
		summary, err := processor.Process(ctx, domain.TurnTrigger{
			TurnID:     fmt.Sprintf("turn-%d", i),
			Actor:      actor,
			Facilities: []domain.FacilityRef{facility},
		})
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		for _, res := range summary.Results {
			report.Turns = append(report.Turns, res)
			report.TotalNet += res.Net
		}
		for id, reason := range summary.Skipped {
			report.Skipped = append(report.Skipped, fmt.Sprintf("turn %d %s: %s", i, id, reason))
		}
	}

	final, err := store.GetVenture(ctx, facility)
	if err != nil {
		return nil, err
	}
	report.Final = final.State
	if report.Purse, err = store.GetPurse(ctx, simActorID); err != nil {
		return nil, err
	}
	return report, nil
}

func printReport(w io.Writer, r *simulationReport) {
	fmt.Fprintf(w, "%s: profit %s, loss %s%+d, threshold %d, %.0f gp/point\n",
		r.Config.Name, r.Config.ProfitDie, r.Config.LossDie, r.Config.LossDieModifier, r.Config.SuccessThreshold, r.Config.GoldPerPoint)
	for _, t := range r.Turns {
		fmt.Fprintf(w, "%-8s %s->%s profit %d (+%d) loss %d net %+d treasury %d coverage %s",
			t.TurnID, t.DieBefore, t.DieAfter, t.ProfitRoll, t.ProfitBonus, t.LossRoll, t.Net, t.TreasuryAfter, t.Coverage.Status)
		switch {
		case t.Failed:
			fmt.Fprint(w, " FAILED")
		case t.Grew:
			fmt.Fprint(w, " grew")
		case t.Degraded:
			fmt.Fprint(w, " degraded")
		}
		fmt.Fprintln(w)
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(w, "skipped %s\n", s)
	}
	fmt.Fprintf(w, "total net %+d, die %s, streak %d, treasury %d, purse %d cp\n",
		r.TotalNet, r.Final.CurrentDie, r.Final.Streak, r.Final.Treasury, r.Purse.Value())
}
