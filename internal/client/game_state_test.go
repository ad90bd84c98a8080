package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowauno/unoterm/internal/game/card"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	require.NotNil(t, gs, "NewGameState should not return nil")
	require.NotNil(t, gs.Hands, "Hands map should be initialized")

	assert.Equal(t, PhaseNoSession, gs.Phase)
	assert.Empty(t, gs.GameID)
	assert.Nil(t, gs.Players)
	assert.Empty(t, gs.CurrentPlayer)
	assert.Nil(t, gs.TopCard)
}

func TestGameState_Reset(t *testing.T) {
	gs := NewGameState()

	// Set up a full session
	gs.GameID = "g-42"
	gs.Players = []string{"A", "B", "C", "D"}
	gs.CurrentPlayer = "B"
	gs.CurrentColor = card.Red
	gs.DisplayedColor = card.Blue
	gs.TopCard = &card.Card{Color: card.Red, Value: "7"}
	gs.Hands["A"] = []card.Card{{Color: card.Red, Value: "3"}}
	gs.Phase = PhaseGameOver
	gs.PendingWild = &card.Card{Color: card.Wild, Value: "13"}
	gs.Winner = "A"
	gs.Scores = []PlayerScore{{Name: "A", Points: 0}}

	gs.Reset()

	// Indistinguishable from initial load
	assert.Empty(t, gs.GameID)
	assert.Nil(t, gs.Players)
	assert.Empty(t, gs.CurrentPlayer)
	assert.Empty(t, gs.CurrentColor)
	assert.Empty(t, gs.DisplayedColor)
	assert.Nil(t, gs.TopCard)
	assert.Empty(t, gs.Hands)
	assert.Equal(t, PhaseNoSession, gs.Phase)
	assert.Nil(t, gs.PendingWild)
	assert.Empty(t, gs.Winner)
	assert.Nil(t, gs.Scores)
}

func TestGameState_HasPlayer(t *testing.T) {
	gs := NewGameState()
	gs.Players = []string{"A", "B", "C", "D"}

	assert.True(t, gs.HasPlayer("A"))
	assert.True(t, gs.HasPlayer("D"))
	assert.False(t, gs.HasPlayer("E"))
	assert.False(t, gs.HasPlayer(""))
}

func TestGameState_Holds(t *testing.T) {
	gs := NewGameState()
	gs.Hands["A"] = []card.Card{
		{Color: card.Red, Value: "7", Score: 7},
		{Color: card.Wild, Value: "13", Score: 50},
	}

	tests := []struct {
		name     string
		player   string
		card     card.Card
		expected bool
	}{
		{name: "held colored card", player: "A", card: card.Card{Color: card.Red, Value: "7"}, expected: true},
		{name: "held wild card", player: "A", card: card.Card{Color: card.Wild, Value: "13"}, expected: true},
		{name: "same value different color", player: "A", card: card.Card{Color: card.Blue, Value: "7"}, expected: false},
		{name: "same color different value", player: "A", card: card.Card{Color: card.Red, Value: "8"}, expected: false},
		{name: "unknown player", player: "B", card: card.Card{Color: card.Red, Value: "7"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gs.Holds(tt.player, tt.card))
		})
	}
}

func TestGameState_RankScores(t *testing.T) {
	gs := NewGameState()
	gs.Players = []string{"A", "B", "C", "D"}
	gs.Hands = map[string][]card.Card{
		"A": {},
		"B": {{Color: card.Red, Value: "7", Score: 7}, {Color: card.Blue, Value: "7", Score: 7}},
		"C": {{Color: card.Wild, Value: "13", Score: 50}},
		"D": {{Color: card.Green, Value: "2", Score: 2}},
	}

	scores := gs.RankScores(nil)
	require.Len(t, scores, 4)

	// Ascending by remaining points, winner first
	assert.Equal(t, PlayerScore{Name: "A", Points: 0}, scores[0])
	assert.Equal(t, PlayerScore{Name: "D", Points: 2}, scores[1])
	assert.Equal(t, PlayerScore{Name: "B", Points: 14}, scores[2])
	assert.Equal(t, PlayerScore{Name: "C", Points: 50}, scores[3])
}

func TestGameState_RankScores_ServerScoresTakePrecedence(t *testing.T) {
	gs := NewGameState()
	gs.Players = []string{"A", "B", "C", "D"}
	gs.Hands = map[string][]card.Card{
		"A": {{Color: card.Red, Value: "9", Score: 9}},
		"B": {},
		"C": {},
		"D": {},
	}

	scores := gs.RankScores(map[string]int{"A": 3, "B": 99})
	require.Len(t, scores, 4)

	byName := make(map[string]int, 4)
	for _, s := range scores {
		byName[s.Name] = s.Points
	}
	assert.Equal(t, 3, byName["A"], "server final overrides local tally")
	assert.Equal(t, 99, byName["B"])
	assert.Equal(t, 0, byName["C"], "players without server finals keep the local tally")
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "NoSession", PhaseNoSession.String())
	assert.Equal(t, "AwaitingDeal", PhaseAwaitingDeal.String())
	assert.Equal(t, "AwaitingTurn", PhaseAwaitingTurn.String())
	assert.Equal(t, "AwaitingColorChoice", PhaseAwaitingColorChoice.String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.Equal(t, "Unknown", Phase(99).String())
}
