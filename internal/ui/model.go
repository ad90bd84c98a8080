// Package ui is the rendering collaborator: it reads GameState, raises
// user intents into the engine, and never mutates game state itself.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nowauno/unoterm/internal/apperrors"
	"github.com/nowauno/unoterm/internal/client"
	"github.com/nowauno/unoterm/internal/config"
	"github.com/nowauno/unoterm/internal/game/card"
	"github.com/nowauno/unoterm/internal/sound"
)

// noticeSeverity 决定提示横幅的样式
type noticeSeverity int

const (
	noticeInfo noticeSeverity = iota
	noticeWarn
	noticeError
)

// --- Tea Messages ---

// startedMsg 开局请求完成
type startedMsg struct{ err error }

// dealDoneMsg 发牌动画结束
type dealDoneMsg struct{}

// actionMsg 一次出牌/摸牌动作完成
type actionMsg struct {
	out     *client.Outcome
	err     error
	success string // 动作被接受时的提示文案
}

// clearNoticeMsg 提示横幅到期
type clearNoticeMsg struct{ seq int }

// Model is the top-level Bubble Tea model.
type Model struct {
	engine *client.Engine
	cfg    *config.Config
	sound  *sound.SoundManager

	// Setup form
	inputs []textinput.Model
	focus  int

	// Table view
	selected int  // cursor into the current player's hand
	busy     bool // an action's round trip is unresolved

	// Overlays
	showRules bool

	// Notification banner
	notice         string
	noticeSeverity noticeSeverity
	noticeSeq      int

	width  int
	height int
}

// NewModel creates the top-level model.
func NewModel(engine *client.Engine, cfg *config.Config) *Model {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = cfg.Game.DefaultNames[i%len(cfg.Game.DefaultNames)]
		ti.CharLimit = 20
		ti.Width = 24
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &Model{
		engine: engine,
		cfg:    cfg,
		sound:  sound.NewSoundManager(),
		inputs: inputs,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.cfg.Sound.Enabled {
		assetDir := m.cfg.Sound.AssetDir
		go func() {
			_ = m.sound.Init(assetDir)
		}()
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		m.sound.Play("deal")
		return m, tea.Batch(
			m.showNotice("发牌中...", noticeInfo),
			tea.Tick(m.cfg.Game.DealDelayDuration(), func(time.Time) tea.Msg { return dealDoneMsg{} }),
		)

	case dealDoneMsg:
		m.engine.FinishDeal()
		m.selected = 0
		return m, nil

	case actionMsg:
		m.busy = false
		return m.handleActionResult(msg)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, m.updateInputs(msg)
}

// handleActionResult applies the outcome of a resolved action to the
// presentation: notices, sounds and the hand cursor. Game state itself was
// already reconciled by the engine.
func (m *Model) handleActionResult(msg actionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.showError(msg.err)
	}
	out := msg.out

	if out.NeedsColor {
		// The color picker overlay renders from PhaseAwaitingColorChoice.
		return m, nil
	}
	if out.Rejected {
		m.sound.Play("reject")
		return m, m.showNotice(out.Message, noticeWarn)
	}

	m.clampSelection()
	if out.GameOver {
		m.sound.Play("gameover")
		return m, nil
	}
	m.sound.Play("play")
	return m, m.showNotice(msg.success, noticeInfo)
}

// clampSelection keeps the hand cursor inside the freshly rebuilt hand.
func (m *Model) clampSelection() {
	hand := m.engine.State().HandOf(m.engine.State().CurrentPlayer)
	if m.selected >= len(hand) {
		m.selected = len(hand) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// --- Notices ---

func (m *Model) showNotice(text string, severity noticeSeverity) tea.Cmd {
	if text == "" {
		return nil
	}
	m.notice = text
	m.noticeSeverity = severity
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(m.cfg.Game.NoticeTimeoutDuration(), func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *Model) showError(err error) tea.Cmd {
	severity := noticeError
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindNotYourTurn,
		apperrors.KindCardNotHeld, apperrors.KindServerRejection:
		severity = noticeWarn
	}
	return m.showNotice(err.Error(), severity)
}

// --- Engine commands ---

func (m *Model) startCmd() tea.Cmd {
	raw := make([]string, len(m.inputs))
	for i := range m.inputs {
		raw[i] = m.inputs[i].Value()
	}
	names := client.NormalizeNames(raw, m.cfg.Game.DefaultNames)

	m.busy = true
	return func() tea.Msg {
		err := m.engine.StartGame(context.Background(), names)
		return startedMsg{err: err}
	}
}

func (m *Model) playCmd(player string, c card.Card) tea.Cmd {
	m.busy = true
	success := fmt.Sprintf("%s 打出了 %s！", player, c)
	return func() tea.Msg {
		out, err := m.engine.Play(context.Background(), player, c)
		return actionMsg{out: out, err: err, success: success}
	}
}

func (m *Model) chooseColorCmd(color card.Color) tea.Cmd {
	player := m.engine.State().CurrentPlayer
	m.busy = true
	success := fmt.Sprintf("%s 打出了万能牌，颜色改为 %s", player, colorNames[color])
	return func() tea.Msg {
		out, err := m.engine.ChooseColor(context.Background(), color)
		return actionMsg{out: out, err: err, success: success}
	}
}

func (m *Model) drawCmd(player string) tea.Cmd {
	m.busy = true
	success := fmt.Sprintf("%s 摸了一张牌", player)
	return func() tea.Msg {
		out, err := m.engine.Draw(context.Background(), player)
		return actionMsg{out: out, err: err, success: success}
	}
}

// updateInputs forwards messages to the focused setup input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	if m.engine.State().Phase != client.PhaseNoSession {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}
