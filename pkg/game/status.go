package game

// GameStatus 游戏状态
//
// Playing -> Won | Lost，两个结束状态都只能通过重新开始回到 Playing
type GameStatus int

const (
	StatusPlaying GameStatus = iota
	StatusWon
	StatusLost
)

// String 返回状态名称
func (s GameStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver 是否已结束（胜利或失败）
func (s GameStatus) IsOver() bool {
	return s == StatusWon || s == StatusLost
}

// StepEvent 单次步进中发生的状态事件
type StepEvent int

const (
	// EventNone 无状态变化
	EventNone StepEvent = iota
	// EventTimeUp 倒计时归零，判负
	EventTimeUp
	// EventReachedFlag 到达旗帜，获胜
	EventReachedFlag
)

// StepResult 单次步进的结果
type StepResult struct {
	Status GameStatus
	Event  StepEvent
	Moving bool // 本帧是否产生了位移意图
}
