// The oracle loop: ambition text in, worlds and ranked proposals out, one
// tick per turn. Engine wires the parser, generators, planner, simulator,
// and alchemizer together over a Store.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/crownfall/internal/ambition"
	"github.com/talgya/crownfall/internal/engine"
	"github.com/talgya/crownfall/internal/goals"
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/planner"
	"github.com/talgya/crownfall/internal/rng"
	"github.com/talgya/crownfall/internal/world"
	"github.com/talgya/crownfall/internal/worldgen"
)

// Graph sizing for fresh sessions.
const (
	graphMaxNodes = 12
	graphMinNodes = 5
)

// Domain thresholds that spawn follow-up goals when crossed upward.
var domainThresholds = []float64{0.3, 0.5}

// Stream offsets for the per-session RNG concerns, relative to the world seed.
const (
	offsetGoals          = 100
	offsetThresholdGoals = 200
)

// Session is one player's complete oracle state.
type Session struct {
	ID        string                     `json:"id"`
	PlayerID  string                     `json:"player_id"`
	Profile   ambition.Profile           `json:"profile"`
	Graph     *goals.Graph               `json:"graph"`
	World     *world.WorldState          `json:"world"`
	Proposals []knowledge.ActionProposal `json:"proposals"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// StartResult is the payload for a fresh session.
type StartResult struct {
	SessionID string                     `json:"session_id"`
	Profile   ambition.Profile           `json:"profile"`
	Graph     *goals.Graph               `json:"graph"`
	World     *world.WorldState          `json:"world"`
	Proposals []knowledge.ActionProposal `json:"proposals"`
}

// TurnResult is the payload after an advance or choose.
type TurnResult struct {
	World     *world.WorldState          `json:"world"`
	Events    []engine.EventCard         `json:"events"`
	Proposals []knowledge.ActionProposal `json:"proposals"`
}

// Engine runs the oracle loop over a store and a loaded knowledge base.
type Engine struct {
	store Store
	kb    *knowledge.Base
}

// NewEngine wires the loop. A nil kb falls back to the built-in base.
func NewEngine(store Store, kb *knowledge.Base) *Engine {
	if kb == nil {
		kb = knowledge.Basic()
	}
	return &Engine{store: store, kb: kb}
}

// Start parses the ambition, generates the world and goal graph from the
// seed, and plans the first proposals. A zero seed gets a fresh one.
func (e *Engine) Start(playerID, text string, seed int64) (*StartResult, error) {
	if seed == 0 {
		seed = time.Now().UnixNano() % 1_000_000_007
	}

	profile := ambition.Parse(text)
	w := worldgen.Seed(profile, seed)
	w.PlayerID = playerID
	graph := goals.GenerateDynamic(profile, rng.New(seed+offsetGoals), graphMaxNodes, graphMinNodes)
	proposals := planner.ProposeDynamic(graph, w, e.kb, profile)

	s := &Session{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		Profile:   profile,
		Graph:     graph,
		World:     w,
		Proposals: proposals,
		CreatedAt: time.Now(),
	}
	if err := e.store.Put(s); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	slog.Info("session started",
		"session", s.ID,
		"player", playerID,
		"seed", seed,
		"regions", len(w.Regions),
		"goals", len(graph.Nodes),
		"proposals", len(proposals),
	)

	return &StartResult{
		SessionID: s.ID,
		Profile:   profile,
		Graph:     graph,
		World:     w,
		Proposals: proposals,
	}, nil
}

// Advance passes one turn without acting.
func (e *Engine) Advance(sessionID string) (*TurnResult, error) {
	return e.turn(sessionID, nil)
}

// Choose resolves one of the last-proposed actions and advances a turn.
// Unknown ids and actions the world can no longer afford fail with distinct
// errors instead of silently pushing resources negative.
func (e *Engine) Choose(sessionID, actionID string) (*TurnResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var chosen *knowledge.ActionProposal
	for i := range s.Proposals {
		if s.Proposals[i].ID == actionID {
			chosen = &s.Proposals[i]
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}
	for name, cost := range chosen.Costs {
		if cost > s.World.Resources.Get(name) {
			return nil, fmt.Errorf("%w: %s needs %d %s", ErrUnaffordable, actionID, cost, name)
		}
	}

	return e.turn(sessionID, chosen)
}

// turn runs one tick: resolve the action (if any), mark satisfied goals,
// mutate the ambition, spawn threshold goals, alchemize events, replan.
func (e *Engine) turn(sessionID string, action *knowledge.ActionProposal) (*TurnResult, error) {
	s, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	prev := s.World
	var resolved []knowledge.ActionProposal
	if action != nil {
		resolved = []knowledge.ActionProposal{*action}
	}
	next := engine.Tick(prev, resolved)

	if action != nil {
		for _, id := range action.Satisfies {
			s.Graph.MarkMet(id)
		}

		domainDeltas, modifierDeltas := engine.AmbitionEffects(resolved)
		if len(domainDeltas) > 0 || len(modifierDeltas) > 0 {
			before := s.Profile
			s.Profile = ambition.Mutate(before, action.ID, domainDeltas, modifierDeltas, next.Tick, "action effects")

			crossed := crossedThresholds(before, s.Profile)
			if len(crossed) > 0 {
				stream := rng.New(s.World.Seed + offsetThresholdGoals + int64(next.Tick))
				spawned := goals.GenerateThreshold(s.Profile, stream, s.Graph, crossed, next.Tick)
				for _, n := range spawned {
					slog.Info("threshold goal spawned", "session", s.ID, "goal", n.ID, "threshold", n.Threshold)
				}
			}
		}
	}

	events := engine.Alchemize(prev, next)
	s.World = next
	s.Proposals = planner.ProposeDynamic(s.Graph, next, e.kb, s.Profile)

	if err := e.store.Put(s); err != nil {
		return nil, fmt.Errorf("turn: %w", err)
	}

	return &TurnResult{World: next, Events: events, Proposals: s.Proposals}, nil
}

// crossedThresholds reports domains whose weight moved up across one of the
// fixed thresholds, mapped to the highest threshold crossed.
func crossedThresholds(before, after ambition.Profile) map[string]float64 {
	crossed := map[string]float64{}
	for _, d := range ambition.DomainNames {
		for _, t := range domainThresholds {
			if before.Domains[d] < t && after.Domains[d] >= t {
				crossed[d] = t
			}
		}
	}
	return crossed
}
