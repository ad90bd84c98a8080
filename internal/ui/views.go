package ui

import (
	"fmt"
	"strings"

	"github.com/nowauno/unoterm/internal/client"
)

func (m *Model) View() string {
	if m.showRules {
		return DocStyle.Render(m.rulesView())
	}

	var body string
	switch m.engine.State().Phase {
	case client.PhaseNoSession:
		body = m.setupView()
	case client.PhaseAwaitingDeal:
		body = m.dealingView()
	case client.PhaseAwaitingTurn, client.PhaseAwaitingColorChoice:
		body = m.tableView()
	case client.PhaseGameOver:
		body = m.gameOverView()
	}

	if m.notice != "" {
		body = m.noticeBanner() + "\n\n" + body
	}
	return DocStyle.Render(body)
}

func (m *Model) noticeBanner() string {
	style := NoticeInfoStyle
	switch m.noticeSeverity {
	case noticeWarn:
		style = NoticeWarnStyle
	case noticeError:
		style = NoticeErrorStyle
	}
	return style.Render(m.notice)
}

func (m *Model) setupView() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle("🎴 UNO"))
	sb.WriteString("\n\n输入 4 位玩家的名字（留空使用默认名）：\n\n")

	for i := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "▸ "
		}
		sb.WriteString(fmt.Sprintf("%s玩家 %d: %s\n", cursor, i+1, m.inputs[i].View()))
	}

	hint := "Tab 切换输入框 · Enter 开始游戏 · Esc 退出"
	if m.busy {
		hint = "正在连接服务器..."
	}
	sb.WriteString(PromptStyle.Render(DimStyle.Render(hint)))
	return sb.String()
}

func (m *Model) dealingView() string {
	gs := m.engine.State()
	var sb strings.Builder
	sb.WriteString(TitleStyle("🎴 UNO"))
	sb.WriteString("\n\n")
	sb.WriteString(BoxStyle.Render("正在发牌..."))
	sb.WriteString("\n\n")
	sb.WriteString(DimStyle.Render("玩家: " + strings.Join(gs.Players, " · ")))
	return sb.String()
}

func (m *Model) tableView() string {
	gs := m.engine.State()
	var sb strings.Builder

	// Center info: top card, active color, whose turn it is
	center := fmt.Sprintf("弃牌堆: %s   当前颜色: %s   当前玩家: %s",
		RenderCard(*gs.TopCard, false),
		RenderColorBadge(gs.DisplayedColor),
		ActiveStyle.Render(gs.CurrentPlayer),
	)
	sb.WriteString(BoxStyle.Render(center))
	sb.WriteString("\n\n")

	for _, p := range gs.Players {
		sb.WriteString(m.playerRow(p))
		sb.WriteString("\n")
	}

	if gs.Phase == client.PhaseAwaitingColorChoice {
		sb.WriteString("\n")
		sb.WriteString(m.colorPicker())
	} else {
		hint := "←/→ 选牌 · Enter 出牌 · D 摸牌 · ? 规则 · Q 退出"
		if m.busy {
			hint = "等待服务器..."
		}
		sb.WriteString(PromptStyle.Render(DimStyle.Render(hint)))
	}
	return sb.String()
}

// playerRow renders one seat: the current player face up and selectable,
// everyone else as card backs.
func (m *Model) playerRow(player string) string {
	gs := m.engine.State()
	hand := gs.HandOf(player)

	name := player
	if player == gs.CurrentPlayer {
		name = ActiveStyle.Render("▸ " + player)
	} else {
		name = "  " + name
	}
	row := fmt.Sprintf("%-24s", name)

	if player == gs.CurrentPlayer && gs.Phase != client.PhaseAwaitingDeal {
		cells := make([]string, len(hand))
		for i, c := range hand {
			cells[i] = RenderCard(c, i == m.selected)
		}
		row += strings.Join(cells, " ")
	} else {
		row += DimStyle.Render(strings.Repeat("🂠 ", len(hand))) + DimStyle.Render(fmt.Sprintf(" ×%d", len(hand)))
	}
	return row
}

func (m *Model) colorPicker() string {
	gs := m.engine.State()
	var sb strings.Builder
	if gs.PendingWild != nil {
		sb.WriteString(fmt.Sprintf("为 %s 选择颜色：\n\n", RenderCard(*gs.PendingWild, false)))
	}
	sb.WriteString("  [R/1] " + RenderColorBadge("RED"))
	sb.WriteString("   [B/2] " + RenderColorBadge("BLUE"))
	sb.WriteString("   [G/3] " + RenderColorBadge("GREEN"))
	sb.WriteString("   [Y/4] " + RenderColorBadge("YELLOW"))
	sb.WriteString("\n\n" + DimStyle.Render("Esc 取消出牌"))
	return BoxStyle.Render(sb.String())
}

func (m *Model) gameOverView() string {
	gs := m.engine.State()
	var sb strings.Builder

	sb.WriteString(TitleStyle("🏆 游戏结束"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("获胜者: %s\n\n", ActiveStyle.Render(gs.Winner)))

	for i, s := range gs.Scores {
		sb.WriteString(fmt.Sprintf("%d. %-20s %d 分\n", i+1, s.Name, s.Points))
	}

	sb.WriteString(PromptStyle.Render(DimStyle.Render("Enter 再来一局 · Q 退出")))
	return BoxStyle.Render(sb.String())
}

func (m *Model) rulesView() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle("📖 UNO 规则速览"))
	sb.WriteString("\n\n")

	var rules string
	rules += "【游戏目标】\n"
	rules += "最先出完手中所有牌的玩家获胜，其余玩家按剩余牌分值排名\n\n"

	rules += "【出牌规则】\n"
	rules += "• 出的牌必须与弃牌堆顶的牌颜色或数字相同\n"
	rules += "• 万能牌可随时出，出牌时指定新的生效颜色\n"
	rules += "• 无牌可出时必须摸一张牌\n\n"

	rules += "【计分】\n"
	rules += "• 数字牌按面值计分，功能牌 20 分，万能牌 50 分\n"
	rules += "• 游戏结束时按手中剩余牌的总分从低到高排名\n\n"

	rules += "规则裁决与回合顺序（跳过、反转、罚摸）均由服务器判定，\n"
	rules += "客户端只反映结果。"

	sb.WriteString(BoxStyle.Render(rules))
	sb.WriteString("\n\n")
	sb.WriteString(DimStyle.Render("按 Esc 返回"))
	return sb.String()
}
