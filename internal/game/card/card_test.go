package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
		wantErr  bool
	}{
		{name: "plain red", input: "RED", expected: Red},
		{name: "lowercase", input: "blue", expected: Blue},
		{name: "surrounding spaces", input: " GREEN ", expected: Green},
		{name: "wild", input: "WILD", expected: Wild},
		{name: "black is an alias for wild", input: "BLACK", expected: Wild},
		{name: "unknown color", input: "PURPLE", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCard_Equal(t *testing.T) {
	red7 := Card{Color: Red, Value: "7"}

	assert.True(t, red7.Equal(Card{Color: Red, Value: "7", Score: 7}),
		"score must not affect identity")
	assert.False(t, red7.Equal(Card{Color: Blue, Value: "7"}))
	assert.False(t, red7.Equal(Card{Color: Red, Value: "8"}))
}

func TestCard_IsWild(t *testing.T) {
	assert.True(t, Card{Color: Wild, Value: "0"}.IsWild())
	assert.False(t, Card{Color: Yellow, Value: "4"}.IsWild())
}

func TestCard_ImageKey(t *testing.T) {
	assert.Equal(t, "red7", Card{Color: Red, Value: "7"}.ImageKey())
	assert.Equal(t, "wild0", Card{Color: Wild, Value: "0"}.ImageKey())
}

func TestCard_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Card
		wantErr  bool
	}{
		{
			name:     "numeric value",
			body:     `{"Color":"RED","Value":7,"DisplayValue":"Red 7","Score":7}`,
			expected: Card{Color: Red, Value: "7", DisplayValue: "Red 7", Score: 7},
		},
		{
			name:     "string value",
			body:     `{"Color":"GREEN","Value":"SKIP","DisplayValue":"Green Skip","Score":20}`,
			expected: Card{Color: Green, Value: "SKIP", DisplayValue: "Green Skip", Score: 20},
		},
		{
			name:     "quoted numeric value",
			body:     `{"Color":"BLUE","Value":"3","Score":3}`,
			expected: Card{Color: Blue, Value: "3", Score: 3},
		},
		{
			name:     "missing value",
			body:     `{"Color":"YELLOW","Score":0}`,
			expected: Card{Color: Yellow},
		},
		{
			name:     "black normalized to wild",
			body:     `{"Color":"BLACK","Value":13,"DisplayValue":"Wild Draw 4","Score":50}`,
			expected: Card{Color: Wild, Value: "13", DisplayValue: "Wild Draw 4", Score: 50},
		},
		{
			name:    "unknown color",
			body:    `{"Color":"PINK","Value":1}`,
			wantErr: true,
		},
		{
			name:    "malformed body",
			body:    `{"Color":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Card
			err := json.Unmarshal([]byte(tt.body), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestTotalScore(t *testing.T) {
	hand := []Card{
		{Color: Red, Value: "7", Score: 7},
		{Color: Wild, Value: "0", Score: 50},
		{Color: Blue, Value: "SKIP", Score: 20},
	}

	assert.Equal(t, 77, TotalScore(hand))
	assert.Zero(t, TotalScore(nil))
}
