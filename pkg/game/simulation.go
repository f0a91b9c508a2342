package game

import (
	"math"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/utils"
)

// diagonalScale 斜向移动时每个轴的缩放（1/√2），保证斜向速度与单轴一致
var diagonalScale = 1 / math.Sqrt2

// Intent 根据按住的方向计算单位移动意图
// 相反方向同时按住时互相抵消
func (s InputSnapshot) Intent() (mx, my float64) {
	if s.Left {
		mx--
	}
	if s.Right {
		mx++
	}
	if s.Up {
		my--
	}
	if s.Down {
		my++
	}
	if mx != 0 && my != 0 {
		mx *= diagonalScale
		my *= diagonalScale
	}
	return mx, my
}

// Step 推进一帧模拟
//
// 执行顺序：
//  1. 处理排队的重新开始（排队后按下的方向保留为朝向）
//  2. 已结束则不做任何事
//  3. 倒计时；归零时判负并冻结本帧
//  4. 按意图计算位移，先 X 后 Y 分轴解决障碍碰撞
//  5. 限制在世界范围内
//  6. 更新行走动画
//  7. 碰到旗帜判胜
//
// 参数：
//   - dt: 已限制过的时间增量（秒）
//   - in: 本帧的输入快照
//
// 返回：
//   - StepResult: 本帧结束后的状态与事件
func (gs *GameState) Step(dt float64, in InputSnapshot) StepResult {
	gs.applyPendingRestart()

	if gs.Status.IsOver() {
		return StepResult{Status: gs.Status}
	}

	if gs.Timer.Advance(dt) {
		gs.Status = StatusLost
		return StepResult{Status: gs.Status, Event: EventTimeUp}
	}

	mx, my := in.Intent()
	p := &gs.Player
	dx := mx * p.Speed * dt
	dy := my * p.Speed * dt

	gs.moveX(dx)
	gs.moveY(dy)

	p.X = utils.Clamp(p.X, 0, gs.WorldWidth-p.ColliderWidth)
	p.Y = utils.Clamp(p.Y, 0, gs.WorldHeight-p.ColliderHeight)

	moving := math.Abs(dx) > 0 || math.Abs(dy) > 0
	target := 0.0
	if moving {
		gs.WalkTime += dt
		target = 1
	}
	gs.WalkIntensity = utils.Approach(gs.WalkIntensity, target, dt, config.WalkIntensityRate)

	result := StepResult{Status: gs.Status, Moving: moving}
	if p.Collider().Overlaps(gs.Flag.Rect) {
		gs.Status = StatusWon
		result.Status = gs.Status
		result.Event = EventReachedFlag
	}
	return result
}

// moveX 沿 X 轴移动并贴合到碰撞的障碍边缘
func (gs *GameState) moveX(dx float64) {
	if dx == 0 {
		return
	}
	p := &gs.Player
	p.X += dx
	for _, o := range gs.Obstacles {
		if !blocksX(p.Collider(), o.Rect) {
			continue
		}
		if dx > 0 {
			p.X = o.X - p.ColliderWidth
		} else {
			p.X = o.X + o.W
		}
	}
}

// moveY 沿 Y 轴移动并贴合到碰撞的障碍边缘
func (gs *GameState) moveY(dy float64) {
	if dy == 0 {
		return
	}
	p := &gs.Player
	p.Y += dy
	for _, o := range gs.Obstacles {
		if !blocksY(p.Collider(), o.Rect) {
			continue
		}
		if dy > 0 {
			p.Y = o.Y - p.ColliderHeight
		} else {
			p.Y = o.Y + o.H
		}
	}
}

// blocksX 沿 X 轴移动后障碍是否阻挡
// X 方向边界相接算阻挡；Y 方向必须真正重叠，贴着障碍上下边时仍可水平滑动
func blocksX(c, o Rect) bool {
	return c.Overlaps(o) && c.Y < o.Y+o.H && c.Y+c.H > o.Y
}

// blocksY 沿 Y 轴移动后障碍是否阻挡
// Y 方向边界相接算阻挡；X 方向必须真正重叠，贴着障碍左右边时仍可垂直滑动
func blocksY(c, o Rect) bool {
	return c.Overlaps(o) && c.X < o.X+o.W && c.X+c.W > o.X
}
