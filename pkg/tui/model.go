package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/systems"
)

// 网格默认尺寸与最小尺寸（字符）
const (
	DefaultCols = 80
	DefaultRows = 22
	minCols     = 16
	minRows     = 6

	// chromeRows 状态栏、帮助行与边框占用的行数
	chromeRows = 4
	// chromeCols 左右边框占用的列数
	chromeCols = 2
)

// DefaultTickRate 默认每秒模拟次数
const DefaultTickRate = 30

// TickMsg 触发一次模拟步进
type TickMsg time.Time

// tickCmd 以固定频率发送 TickMsg
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options 终端前端选项
type Options struct {
	TickRate  int     // 每秒模拟次数，<= 0 时使用 DefaultTickRate
	LatchHold float64 // 按键锁存时长，<= 0 时使用 DefaultLatchHold
}

// Model Bubble Tea 模型
//
// 每个按键事件立即写入 GameState；TickMsg 推进锁存与模拟。
// 时间增量来自消息携带的时间戳，经 game.Clock 限幅。
type Model struct {
	state    *game.GameState
	latch    *KeyLatch
	clock    *game.Clock
	tickRate int

	cols, rows int
	quitting   bool

	logger *log.Logger
}

// NewModel 创建终端前端模型
func NewModel(cfg *config.GameConfig, opts Options) *Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	return &Model{
		state:    game.NewGameState(cfg),
		latch:    NewKeyLatch(opts.LatchHold),
		clock:    game.NewClock(nil),
		tickRate: opts.TickRate,
		cols:     DefaultCols,
		rows:     DefaultRows,
		logger:   logging.For("TUI"),
	}
}

// State 返回游戏状态
func (m *Model) State() *game.GameState {
	return m.state
}

// Init 启动 tick 循环
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update 处理按键、窗口尺寸与 tick 消息
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.step(time.Time(msg))
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := ActionForKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if dir, ok := action.Direction(); ok {
		// 自动重复只刷新锁存，新的按下才写入状态（同时设置朝向）
		if m.latch.Press(dir) {
			m.state.HandleKey(game.KeyEvent{Action: action, Down: true})
		}
		return m, nil
	}
	if action != game.ActionNone {
		m.state.HandleKey(game.KeyEvent{Action: action, Down: true})
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.cols = max(width-chromeCols, minCols)
	m.rows = max(height-chromeRows, minRows)
}

// step 推进锁存与模拟，锁存到期的方向在本帧步进前释放
func (m *Model) step(ts time.Time) game.StepResult {
	dt := m.clock.TickAt(ts)
	for _, d := range m.latch.Advance(dt) {
		m.state.HandleKey(game.KeyEvent{Action: game.MoveAction(d), Down: false})
	}
	result := m.state.Step(dt, m.state.Input.Snapshot())
	switch result.Event {
	case game.EventTimeUp:
		m.logger.Info("time is up")
	case game.EventReachedFlag:
		m.logger.Info("reached the flag", "remaining", m.state.Timer.Remaining)
	}
	return result
}

// Projection 返回当前网格投影
func (m *Model) Projection() Projection {
	return Projection{
		WorldWidth:  m.state.WorldWidth,
		WorldHeight: m.state.WorldHeight,
		Cols:        m.cols,
		Rows:        m.rows,
	}
}

// View 渲染当前画面
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	grid := NewGrid(m.Projection())
	grid.Compose(m.state)

	texts := systems.HUDText(m.state.Status, systems.LangZH)
	header := statusStyle.Render(texts.Status) + "  " + timerStyle.Render(systems.CountdownText(m.state.Timer))
	switch m.state.Status {
	case game.StatusWon:
		header += "  " + wonStyle.Render(texts.Banner)
	case game.StatusLost:
		header += "  " + lostStyle.Render(texts.Banner)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')
	sb.WriteString(borderStyle.Render(grid.String()))
	sb.WriteRune('\n')
	sb.WriteString(helpStyle.Render("方向键/WASD 移动 · R 重新开始 · Q 退出"))
	return sb.String()
}

// Run 运行终端前端直到退出
func Run(cfg *config.GameConfig, opts Options) error {
	p := tea.NewProgram(NewModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
