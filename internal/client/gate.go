package client

import (
	"github.com/nowauno/unoterm/internal/apperrors"
	"github.com/nowauno/unoterm/internal/game/card"
)

// Action is a user intent the gate can authorize.
type Action int

const (
	ActionPlay Action = iota
	ActionDraw
)

// ErrColorChoiceRequired signals that a wild play cannot proceed until the
// player picks a replacement color. It is a suspend point, not a failure.
var ErrColorChoiceRequired = apperrors.Validation("请先为万能牌选择颜色")

// Ticket is a single-use capability produced by the gate and consumed by
// exactly one Engine round trip.
type Ticket struct {
	action    Action
	player    string
	card      card.Card
	wildColor card.Color
	epoch     uint64
	consumed  bool
}

// consume marks the ticket used. Double consumption is a programming error.
func (t *Ticket) consume() bool {
	if t.consumed {
		return false
	}
	t.consumed = true
	return true
}

// authorize is the turn/action gate: a pure, synchronous decision over
// local state. It must reject before any network I/O happens; no partial
// request is ever sent for an illegal action.
//
// For play actions c is the card being attempted. wildColor must be set for
// wild cards; for colored cards it defaults to the card's own color, which
// is what the wire expects.
func authorize(gs *GameState, action Action, player string, c *card.Card, wildColor card.Color) (*Ticket, error) {
	if gs.Phase != PhaseAwaitingTurn && gs.Phase != PhaseAwaitingColorChoice {
		return nil, apperrors.ErrNotYourTurn
	}
	if gs.inFlight {
		return nil, apperrors.ErrActionInFlight
	}
	if player == "" || player != gs.CurrentPlayer {
		return nil, apperrors.ErrNotYourTurn
	}

	if action == ActionDraw {
		return &Ticket{action: ActionDraw, player: player, epoch: gs.epoch}, nil
	}

	if c == nil {
		return nil, apperrors.Validation("没有指定要出的牌")
	}
	if !gs.Holds(player, *c) {
		return nil, apperrors.ErrCardNotHeld
	}
	if c.IsWild() {
		if wildColor == "" {
			return nil, ErrColorChoiceRequired
		}
		if wildColor.IsWild() || !wildColor.Valid() {
			return nil, apperrors.Validation("无效的万能牌颜色: %s", wildColor)
		}
	} else {
		wildColor = c.Color
	}

	return &Ticket{
		action:    ActionPlay,
		player:    player,
		card:      *c,
		wildColor: wildColor,
		epoch:     gs.epoch,
	}, nil
}
