package client

import (
	"sort"

	"github.com/nowauno/unoterm/internal/game/card"
)

// Phase represents the session lifecycle state.
type Phase int

const (
	PhaseNoSession Phase = iota
	PhaseAwaitingDeal
	PhaseAwaitingTurn
	PhaseAwaitingColorChoice
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNoSession:
		return "NoSession"
	case PhaseAwaitingDeal:
		return "AwaitingDeal"
	case PhaseAwaitingTurn:
		return "AwaitingTurn"
	case PhaseAwaitingColorChoice:
		return "AwaitingColorChoice"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PlayerScore is one row of the end-of-game ranking.
type PlayerScore struct {
	Name   string
	Points int
}

// GameState manages client-side game state. It is the single source of
// truth for the rendering layer; all mutation funnels through the Engine's
// apply steps, never ad hoc from rendering code.
type GameState struct {
	// Session identity
	GameID  string
	Players []string // array order is turn order

	// Turn state
	CurrentPlayer  string
	CurrentColor   card.Color
	DisplayedColor card.Color // may differ from CurrentColor during a color choice
	TopCard        *card.Card

	// Hands, rebuilt wholesale after every accepted action
	Hands map[string][]card.Card

	// Lifecycle
	Phase       Phase
	PendingWild *card.Card // wild card awaiting its color choice

	// Game result
	Winner string
	Scores []PlayerScore

	// epoch increments on every applied update; in-flight results from an
	// older epoch must not touch turn state
	epoch uint64

	// inFlight is set while an action's network round trip is unresolved
	inFlight bool
}

// NewGameState creates a new game state
func NewGameState() *GameState {
	return &GameState{
		Hands: make(map[string][]card.Card),
	}
}

// Reset clears all session state, returning to a state indistinguishable
// from initial load.
func (gs *GameState) Reset() {
	gs.GameID = ""
	gs.Players = nil
	gs.CurrentPlayer = ""
	gs.CurrentColor = ""
	gs.DisplayedColor = ""
	gs.TopCard = nil
	gs.Hands = make(map[string][]card.Card)
	gs.Phase = PhaseNoSession
	gs.PendingWild = nil
	gs.Winner = ""
	gs.Scores = nil
	gs.epoch++
	gs.inFlight = false
}

// HasPlayer reports whether name is part of the session roster.
func (gs *GameState) HasPlayer(name string) bool {
	for _, p := range gs.Players {
		if p == name {
			return true
		}
	}
	return false
}

// HandOf returns the last-fetched hand for a player.
func (gs *GameState) HandOf(name string) []card.Card {
	return gs.Hands[name]
}

// Holds reports whether the player's last-fetched hand contains the card,
// matched by color and value.
func (gs *GameState) Holds(name string, c card.Card) bool {
	for _, held := range gs.Hands[name] {
		if held.Equal(c) {
			return true
		}
	}
	return false
}

// RankScores builds the end-of-game ranking, ascending by points. Points
// are the sum of each remaining card's score; authority-provided finals
// take precedence over the local tally.
func (gs *GameState) RankScores(serverScores map[string]int) []PlayerScore {
	scores := make([]PlayerScore, 0, len(gs.Players))
	for _, p := range gs.Players {
		points := card.TotalScore(gs.Hands[p])
		if final, ok := serverScores[p]; ok {
			points = final
		}
		scores = append(scores, PlayerScore{Name: p, Points: points})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Points < scores[j].Points
	})
	return scores
}
