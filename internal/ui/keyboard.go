package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nowauno/unoterm/internal/client"
	"github.com/nowauno/unoterm/internal/game/card"
)

// pickerKeys 颜色选择弹层的按键映射
var pickerKeys = map[string]card.Color{
	"r": card.Red, "1": card.Red,
	"b": card.Blue, "2": card.Blue,
	"g": card.Green, "3": card.Green,
	"y": card.Yellow, "4": card.Yellow,
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showRules {
		if key == "esc" || key == "?" {
			m.showRules = false
		}
		return m, nil
	}

	switch m.engine.State().Phase {
	case client.PhaseNoSession:
		return m.handleSetupKey(msg)
	case client.PhaseAwaitingDeal:
		// Cosmetic transition; nothing to do but wait or quit.
		if key == "q" {
			return m, tea.Quit
		}
		return m, nil
	case client.PhaseAwaitingTurn:
		return m.handleTableKey(key)
	case client.PhaseAwaitingColorChoice:
		return m.handlePickerKey(key)
	case client.PhaseGameOver:
		return m.handleGameOverKey(key)
	}
	return m, nil
}

func (m *Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focusInput(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusInput(m.focus - 1)
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		if m.focus < len(m.inputs)-1 {
			m.focusInput(m.focus + 1)
			return m, nil
		}
		return m, m.startCmd()
	}
	return m, m.updateInputs(msg)
}

func (m *Model) focusInput(next int) {
	count := len(m.inputs)
	m.focus = (next + count) % count
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) handleTableKey(key string) (tea.Model, tea.Cmd) {
	gs := m.engine.State()
	hand := gs.HandOf(gs.CurrentPlayer)

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "?":
		m.showRules = true
		return m, nil
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "right", "l":
		if m.selected < len(hand)-1 {
			m.selected++
		}
		return m, nil
	case "enter", " ":
		if m.busy || len(hand) == 0 {
			return m, nil
		}
		return m, m.playCmd(gs.CurrentPlayer, hand[m.selected])
	case "d":
		if m.busy {
			return m, nil
		}
		return m, m.drawCmd(gs.CurrentPlayer)
	}
	return m, nil
}

func (m *Model) handlePickerKey(key string) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if color, ok := pickerKeys[key]; ok {
		return m, m.chooseColorCmd(color)
	}
	if key == "esc" {
		m.engine.CancelColorChoice()
		return m, m.showNotice("已取消出牌", noticeInfo)
	}
	return m, nil
}

func (m *Model) handleGameOverKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "n":
		m.engine.Restart()
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.focusInput(0)
		m.selected = 0
		m.notice = ""
		return m, textinput.Blink
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}
