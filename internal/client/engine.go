package client

import (
	"context"
	"strings"

	"github.com/nowauno/unoterm/internal/apperrors"
	"github.com/nowauno/unoterm/internal/game/card"
	"github.com/nowauno/unoterm/internal/logger"
	"github.com/nowauno/unoterm/internal/network/authority"
)

// Authority is the remote rules server. It owns legality and turn order;
// the engine only relays actions and reconciles local state with replies.
type Authority interface {
	Start(ctx context.Context, players []string) (*authority.StartResult, error)
	Hand(ctx context.Context, gameID, player string) ([]card.Card, error)
	TopCard(ctx context.Context, gameID string) (card.Card, error)
	PlayCard(ctx context.Context, gameID string, played card.Card, wildColor card.Color) (*authority.PlayResult, error)
	DrawCard(ctx context.Context, gameID, player string) (*authority.DrawResult, error)
}

// Outcome tells the rendering layer how an action resolved.
type Outcome struct {
	// NeedsColor means the action is suspended on a wild-color choice;
	// nothing was sent to the authority.
	NeedsColor bool
	// Rejected means the authority refused the action per game rules.
	// Local state is untouched; Message carries the refusal verbatim.
	Rejected bool
	Message  string
	// GameOver means the session reached its terminal state.
	GameOver bool
}

// Engine runs the synchronization protocol: every accepted action issues
// the authority call, reconciles top card and color, rebuilds all hands,
// and advances the turn, in that order. All GameState mutation happens
// here.
type Engine struct {
	authority Authority
	state     *GameState
}

// NewEngine creates an engine around a fresh GameState.
func NewEngine(a Authority) *Engine {
	return &Engine{authority: a, state: NewGameState()}
}

// State exposes the game state for the rendering layer to read.
func (e *Engine) State() *GameState {
	return e.state
}

// NormalizeNames trims, falls back to defaults for blank entries and
// upper-cases, mirroring what the setup form promises the player.
func NormalizeNames(inputs, defaults []string) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in)
		if name == "" && i < len(defaults) {
			name = defaults[i]
		}
		names[i] = strings.ToUpper(name)
	}
	return names
}

// validateNames enforces the session roster invariant before any network
// call: exactly 4 pairwise distinct non-empty names.
func validateNames(names []string) error {
	if len(names) != 4 {
		return apperrors.Validation("需要恰好 4 位玩家")
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return apperrors.Validation("请输入 4 个不同的玩家名")
		}
		if _, dup := seen[name]; dup {
			return apperrors.Validation("玩家名不能重复: %s", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// StartGame starts a session: NoSession -> AwaitingDeal. On success all
// four hands are fetched before the state becomes visible; there is no
// partial-session state.
func (e *Engine) StartGame(ctx context.Context, names []string) error {
	if e.state.Phase != PhaseNoSession {
		return apperrors.Validation("已有进行中的对局")
	}
	if err := validateNames(names); err != nil {
		return err
	}

	res, err := e.authority.Start(ctx, names)
	if err != nil {
		return err
	}
	if !containsName(names, res.NextPlayer) {
		return apperrors.Protocol("服务器指定的先手玩家不在名单中: "+res.NextPlayer, nil)
	}

	hands, err := e.fetchAllHands(ctx, res.GameID, names)
	if err != nil {
		return err
	}

	top := res.TopCard
	e.state.GameID = res.GameID
	e.state.Players = append([]string(nil), names...)
	e.state.CurrentPlayer = res.NextPlayer
	e.state.TopCard = &top
	e.state.CurrentColor = top.Color
	e.state.DisplayedColor = top.Color
	e.state.Hands = hands
	e.state.Phase = PhaseAwaitingDeal
	e.state.epoch++

	logger.LogInfo("session started game=%s first=%s top=%s", res.GameID, res.NextPlayer, top.ImageKey())
	return nil
}

// FinishDeal ends the cosmetic dealing transition: AwaitingDeal ->
// AwaitingTurn. The delay before calling this is presentation-owned and
// must not hold back actions once elapsed.
func (e *Engine) FinishDeal() {
	if e.state.Phase == PhaseAwaitingDeal {
		e.state.Phase = PhaseAwaitingTurn
	}
}

// Play attempts to play a card for the given player. Wild cards suspend
// into AwaitingColorChoice and resolve through ChooseColor.
func (e *Engine) Play(ctx context.Context, player string, c card.Card) (*Outcome, error) {
	if e.state.Phase == PhaseAwaitingColorChoice {
		return nil, ErrColorChoiceRequired
	}

	ticket, err := authorize(e.state, ActionPlay, player, &c, "")
	if err != nil {
		if err == ErrColorChoiceRequired {
			// Phase A of the wild protocol: suspend, no network call.
			pending := c
			e.state.PendingWild = &pending
			e.state.Phase = PhaseAwaitingColorChoice
			return &Outcome{NeedsColor: true}, nil
		}
		return nil, err
	}
	return e.resolvePlay(ctx, ticket)
}

// ChooseColor is phase B of the wild protocol: the chosen color is
// threaded into the suspended play and the normal sequence runs. The
// color sub-state ends whether the attempt is accepted or rejected.
func (e *Engine) ChooseColor(ctx context.Context, color card.Color) (*Outcome, error) {
	if e.state.Phase != PhaseAwaitingColorChoice || e.state.PendingWild == nil {
		return nil, apperrors.Validation("当前没有待选颜色的万能牌")
	}

	pending := *e.state.PendingWild
	ticket, err := authorize(e.state, ActionPlay, e.state.CurrentPlayer, &pending, color)
	if err != nil {
		return nil, err
	}

	e.state.PendingWild = nil
	e.state.Phase = PhaseAwaitingTurn
	return e.resolvePlay(ctx, ticket)
}

// CancelColorChoice abandons a suspended wild play locally, resolving the
// color sub-state as a rejection without any network call.
func (e *Engine) CancelColorChoice() {
	if e.state.Phase == PhaseAwaitingColorChoice {
		e.state.PendingWild = nil
		e.state.Phase = PhaseAwaitingTurn
	}
}

// Draw attempts to draw a card for the given player.
func (e *Engine) Draw(ctx context.Context, player string) (*Outcome, error) {
	if e.state.Phase == PhaseAwaitingColorChoice {
		return nil, ErrColorChoiceRequired
	}

	ticket, err := authorize(e.state, ActionDraw, player, nil, "")
	if err != nil {
		return nil, err
	}
	if !ticket.consume() {
		return nil, apperrors.Validation("操作凭据已被使用")
	}

	e.state.inFlight = true
	defer func() { e.state.inFlight = false }()

	res, err := e.authority.DrawCard(ctx, e.state.GameID, ticket.player)
	if err != nil {
		return nil, err
	}
	if res.Rejected {
		return &Outcome{Rejected: true, Message: res.Message}, nil
	}
	if !e.state.HasPlayer(res.NextPlayer) {
		return nil, apperrors.Protocol("服务器指定的下一位玩家不在名单中: "+res.NextPlayer, nil)
	}

	if err := e.reconcile(ctx, ticket, res.NextPlayer, nil); err != nil {
		return nil, err
	}
	return &Outcome{}, nil
}

// Restart discards the session: GameOver -> NoSession.
func (e *Engine) Restart() {
	e.state.Reset()
}

// resolvePlay runs the accepted-play sequence against a gate ticket.
func (e *Engine) resolvePlay(ctx context.Context, ticket *Ticket) (*Outcome, error) {
	if !ticket.consume() {
		return nil, apperrors.Validation("操作凭据已被使用")
	}

	e.state.inFlight = true
	defer func() { e.state.inFlight = false }()

	res, err := e.authority.PlayCard(ctx, e.state.GameID, ticket.card, ticket.wildColor)
	if err != nil {
		return nil, err
	}
	if res.Rejected {
		// Recoverable refusal: surface verbatim, state untouched.
		return &Outcome{Rejected: true, Message: res.Message}, nil
	}
	if !e.state.HasPlayer(res.NextPlayer) {
		return nil, apperrors.Protocol("服务器指定的下一位玩家不在名单中: "+res.NextPlayer, nil)
	}

	if err := e.reconcile(ctx, ticket, res.NextPlayer, res.TopCard); err != nil {
		return nil, err
	}

	if res.GameOver {
		e.finishGame(res.Scores)
		return &Outcome{GameOver: true}, nil
	}
	return &Outcome{}, nil
}

// reconcile applies an accepted action: top card and active color first
// (fetched as a fallback when the response omits them), then a wholesale
// rebuild of every player's hand, then the turn advance. The hand rebuild
// is unconditional: draw penalties change hands beyond the acting player,
// so no incremental assumption is safe.
func (e *Engine) reconcile(ctx context.Context, ticket *Ticket, nextPlayer string, top *card.Card) error {
	if top == nil {
		fetched, err := e.authority.TopCard(ctx, e.state.GameID)
		if err != nil {
			return err
		}
		top = &fetched
	}

	hands, err := e.fetchAllHands(ctx, e.state.GameID, e.state.Players)
	if err != nil {
		return err
	}

	// Hand and top-card refreshes are idempotent and safe to apply even
	// for a stale ticket; the turn advance is not.
	stale := ticket.epoch != e.state.epoch || ticket.player != e.state.CurrentPlayer
	if stale {
		logger.LogWarn("discarding stale turn effects player=%s epoch=%d", ticket.player, ticket.epoch)
	}

	e.state.TopCard = top
	e.state.Hands = hands
	if !stale {
		color := top.Color
		if ticket.action == ActionPlay && ticket.card.IsWild() {
			color = ticket.wildColor
		}
		e.state.CurrentColor = color
		e.state.DisplayedColor = color
		e.state.CurrentPlayer = nextPlayer
		e.state.epoch++
	}
	return nil
}

// fetchAllHands fetches every roster hand into a fresh map so the swap is
// all-or-nothing.
func (e *Engine) fetchAllHands(ctx context.Context, gameID string, players []string) (map[string][]card.Card, error) {
	hands := make(map[string][]card.Card, len(players))
	for _, p := range players {
		hand, err := e.authority.Hand(ctx, gameID, p)
		if err != nil {
			return nil, err
		}
		hands[p] = hand
	}
	return hands, nil
}

// finishGame enters the terminal state with the ranked score list.
func (e *Engine) finishGame(serverScores map[string]int) {
	e.state.Scores = e.state.RankScores(serverScores)
	if len(e.state.Scores) > 0 {
		e.state.Winner = e.state.Scores[0].Name
	}
	e.state.Phase = PhaseGameOver
	logger.LogInfo("game over winner=%s", e.state.Winner)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
