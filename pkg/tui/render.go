package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Drodd/2dBakery/pkg/game"
)

// 字符网格中的图元
const (
	glyphFloor    = '·'
	glyphObstacle = '█'
	glyphFlag     = '⚑'
)

// playerGlyphs 按朝向显示的玩家字符
var playerGlyphs = map[game.Direction]rune{
	game.DirectionUp:    '▲',
	game.DirectionDown:  '▼',
	game.DirectionLeft:  '◀',
	game.DirectionRight: '▶',
}

var (
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2e355a"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166")).Bold(true)
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")).Bold(true)

	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2"))
	timerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166")).Bold(true)
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0e1330")).Background(lipgloss.Color("#ffd166")).Bold(true).Padding(0, 1)
	lostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2")).Background(lipgloss.Color("#ef476f")).Bold(true).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#39406a"))
	obstacleBase = lipgloss.NewStyle()
)

// Projection 世界坐标到字符网格的投影
type Projection struct {
	WorldWidth, WorldHeight float64
	Cols, Rows              int
}

// Cell 返回世界坐标所在的格子，超出范围时夹到边缘
func (p Projection) Cell(x, y float64) (col, row int) {
	col = clampInt(int(math.Floor(x*float64(p.Cols)/p.WorldWidth)), 0, p.Cols-1)
	row = clampInt(int(math.Floor(y*float64(p.Rows)/p.WorldHeight)), 0, p.Rows-1)
	return col, row
}

// Rect 返回矩形覆盖的格子范围（闭区间），至少一格
func (p Projection) Rect(r game.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = p.Cell(r.X, r.Y)
	c1 = int(math.Ceil((r.X+r.W)*float64(p.Cols)/p.WorldWidth)) - 1
	r1 = int(math.Ceil((r.Y+r.H)*float64(p.Rows)/p.WorldHeight)) - 1
	c1 = clampInt(c1, c0, p.Cols-1)
	r1 = clampInt(r1, r0, p.Rows-1)
	return c0, r0, c1, r1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cell 网格中的一个字符及其样式
type cell struct {
	r     rune
	style lipgloss.Style
	key   string // 样式标识，用于合并相邻的同样式字符
}

// Grid 一帧的字符画面
type Grid struct {
	proj  Projection
	cells []cell
}

// NewGrid 创建填充地板的网格
func NewGrid(proj Projection) *Grid {
	g := &Grid{proj: proj, cells: make([]cell, proj.Cols*proj.Rows)}
	for i := range g.cells {
		g.cells[i] = cell{r: glyphFloor, style: floorStyle, key: "floor"}
	}
	return g
}

// Rune 返回格子中的字符
func (g *Grid) Rune(col, row int) rune {
	return g.cells[row*g.proj.Cols+col].r
}

func (g *Grid) fill(r game.Rect, c cell) {
	c0, r0, c1, r1 := g.proj.Rect(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.cells[row*g.proj.Cols+col] = c
		}
	}
}

// Compose 按与图形前端相同的顺序绘制：障碍、旗帜、玩家
func (g *Grid) Compose(gs *game.GameState) {
	for _, o := range gs.Obstacles {
		hex := hexColor(o.Color)
		g.fill(o.Rect, cell{r: glyphObstacle, style: obstacleBase.Foreground(lipgloss.Color(hex)), key: hex})
	}
	g.fill(gs.Flag.Rect, cell{r: glyphFlag, style: flagStyle, key: "flag"})

	// 玩家只占碰撞盒中心一格
	c := gs.Player.Collider()
	col, row := g.proj.Cell(c.X+c.W/2, c.Y+c.H/2)
	glyph, ok := playerGlyphs[gs.Player.Direction]
	if !ok {
		glyph = '@'
	}
	g.cells[row*g.proj.Cols+col] = cell{r: glyph, style: playerStyle, key: "player"}
}

// String 渲染为带样式的字符串，相邻同样式的字符合并输出
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells)*2 + g.proj.Rows)
	for row := range g.proj.Rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		line := g.cells[row*g.proj.Cols : (row+1)*g.proj.Cols]
		for i := 0; i < len(line); {
			start := line[i]
			var run strings.Builder
			for i < len(line) && line[i].key == start.key {
				run.WriteRune(line[i].r)
				i++
			}
			sb.WriteString(start.style.Render(run.String()))
		}
	}
	return sb.String()
}

// PlainString 渲染为不带样式的字符串（测试与日志用）
func (g *Grid) PlainString() string {
	var sb strings.Builder
	for row := range g.proj.Rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range g.proj.Cols {
			sb.WriteRune(g.Rune(col, row))
		}
	}
	return sb.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
