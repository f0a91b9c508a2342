// Package tui 提供基于 Bubble Tea 的终端前端
//
// 与 Ebitengine 前端共用 game.GameState 与同一个 Step，
// 只是把世界坐标投影到字符网格上绘制。
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Drodd/2dBakery/pkg/game"
)

// ActionForKey 把终端按键映射为动作
//
// 返回：
//   - game.Action: 对应的动作，未绑定时为 ActionNone
//   - bool: 是否为退出请求
func ActionForKey(msg tea.KeyMsg) (game.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return game.ActionNone, true
	case "up", "w":
		return game.ActionMoveUp, false
	case "down", "s":
		return game.ActionMoveDown, false
	case "left", "a":
		return game.ActionMoveLeft, false
	case "right", "d":
		return game.ActionMoveRight, false
	case "r":
		return game.ActionRestart, false
	}
	return game.ActionNone, false
}
