// Package scenes 实现加载与游戏两个场景
package scenes

import (
	"github.com/Drodd/2dBakery/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现都应满足该接口
type Scene = game.Scene
