package card

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Color 定义牌的颜色
type Color string

const (
	Red    Color = "RED"
	Blue   Color = "BLUE"
	Green  Color = "GREEN"
	Yellow Color = "YELLOW"
	Wild   Color = "WILD" // 万能牌，出牌时由玩家指定颜色
)

// colorAliases 服务端对万能牌颜色的两种写法
var colorAliases = map[string]Color{
	"RED":    Red,
	"BLUE":   Blue,
	"GREEN":  Green,
	"YELLOW": Yellow,
	"WILD":   Wild,
	"BLACK":  Wild,
}

// ParseColor 解析服务端返回的颜色字符串
func ParseColor(s string) (Color, error) {
	if c, ok := colorAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("无法识别的颜色: %q", s)
}

// Playable 返回可被选作万能牌颜色的四种颜色
func Playable() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) Valid() bool {
	_, ok := colorAliases[string(c)]
	return ok
}

func (c Color) String() string {
	return string(c)
}

// Card 定义一张牌，由服务端发出后不可变
type Card struct {
	Color        Color  `json:"Color"`
	Value        string `json:"Value"`
	DisplayValue string `json:"DisplayValue"`
	Score        int    `json:"Score"`
}

// Equal 按颜色和面值匹配（本地判断手牌是否持有该牌）
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Value == other.Value
}

// IsWild 是否为万能牌
func (c Card) IsWild() bool {
	return c.Color.IsWild()
}

// ImageKey 渲染层使用的贴图键，形如 "red7"、"wild0"
func (c Card) ImageKey() string {
	return strings.ToLower(string(c.Color)) + c.Value
}

func (c Card) String() string {
	if c.DisplayValue != "" {
		return c.DisplayValue
	}
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

// UnmarshalJSON 兼容服务端对字段的两种写法：
// Value 可能是数字或字符串，Color 可能写作 BLACK
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw struct {
		Color        string          `json:"Color"`
		Value        json.RawMessage `json:"Value"`
		DisplayValue string          `json:"DisplayValue"`
		Score        int             `json:"Score"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	color, err := ParseColor(raw.Color)
	if err != nil {
		return err
	}

	value, err := decodeValue(raw.Value)
	if err != nil {
		return err
	}

	c.Color = color
	c.Value = value
	c.DisplayValue = raw.DisplayValue
	c.Score = raw.Score
	return nil
}

// decodeValue 面值既可能是数字 7，也可能是动作名 "SKIP"
func decodeValue(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// TotalScore 计算一手牌的剩余分值
func TotalScore(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Score
	}
	return total
}
