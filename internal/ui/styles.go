package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nowauno/unoterm/internal/game/card"
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)

	NoticeInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")).Padding(0, 1)
	NoticeWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Padding(0, 1)
	NoticeErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1)
)

// cardStyles 每种颜色一种牌面样式
var cardStyles = map[card.Color]lipgloss.Style{
	card.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Bold(true),
	card.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")).Bold(true),
	card.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")).Bold(true),
	card.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true),
	card.Wild:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("54")).Bold(true),
}

var selectedCardStyle = lipgloss.NewStyle().Underline(true).Reverse(true)

// colorNames 颜色的界面文案
var colorNames = map[card.Color]string{
	card.Red:    "红",
	card.Blue:   "蓝",
	card.Green:  "绿",
	card.Yellow: "黄",
	card.Wild:   "万能",
}

// RenderCard 渲染一张面朝上的牌
func RenderCard(c card.Card, selected bool) string {
	style, ok := cardStyles[c.Color]
	if !ok {
		style = DimStyle
	}
	label := " " + colorNames[c.Color] + " " + c.Value + " "
	if selected {
		return selectedCardStyle.Render(style.Render(label))
	}
	return style.Render(label)
}

// RenderColorBadge 渲染当前生效颜色的角标
func RenderColorBadge(c card.Color) string {
	style, ok := cardStyles[c]
	if !ok {
		return DimStyle.Render("--")
	}
	return style.Render(" " + colorNames[c] + " ")
}
