package systems

import (
	"reflect"
	"testing"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/utils"
)

func newTestControls() *TouchControls {
	return NewTouchControls(config.GameWindowWidth, config.GameWindowHeight, false)
}

// 1280x720 下各按钮中心
var buttonCenters = map[game.Direction][2]int{
	game.DirectionUp:    {172, 452},
	game.DirectionLeft:  {76, 548},
	game.DirectionRight: {268, 548},
	game.DirectionDown:  {172, 644},
}

func touchAt(id int, d game.Direction) utils.Pointer {
	c := buttonCenters[d]
	return utils.Pointer{ID: id, X: c[0], Y: c[1], Touch: true}
}

// TestTouchControlsHitTest 测试按钮命中
func TestTouchControlsHitTest(t *testing.T) {
	tc := newTestControls()

	tests := []struct {
		name    string
		x, y    float64
		wantDir game.Direction
		wantHit bool
	}{
		{"上按钮中心", 172, 452, game.DirectionUp, true},
		{"左按钮中心", 76, 548, game.DirectionLeft, true},
		{"右按钮中心", 268, 548, game.DirectionRight, true},
		{"下按钮中心", 172, 644, game.DirectionDown, true},
		{"左按钮左上角边界", 32, 504, game.DirectionLeft, true},
		{"十字中心空白", 172, 548, game.DirectionDown, false},
		{"按钮间隙", 124, 548, game.DirectionDown, false},
		{"屏幕中央", 640, 360, game.DirectionDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, hit := tc.HitTest(tt.x, tt.y)
			if hit != tt.wantHit {
				t.Fatalf("HitTest(%v, %v) hit = %v, want %v", tt.x, tt.y, hit, tt.wantHit)
			}
			if hit && dir != tt.wantDir {
				t.Errorf("HitTest(%v, %v) dir = %v, want %v", tt.x, tt.y, dir, tt.wantDir)
			}
		})
	}
}

// TestTouchControlsLayoutInsideScreen 测试按钮全部位于屏幕内且互不重叠
func TestTouchControlsLayoutInsideScreen(t *testing.T) {
	tc := newTestControls()
	buttons := tc.Buttons()
	if len(buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(buttons))
	}
	for i, b := range buttons {
		if b.X < 0 || b.Y < 0 || b.X+b.W > config.GameWindowWidth || b.Y+b.H > config.GameWindowHeight {
			t.Errorf("button %v out of screen: %+v", b.Dir, b)
		}
		for _, o := range buttons[i+1:] {
			if b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y {
				t.Errorf("buttons %v and %v overlap", b.Dir, o.Dir)
			}
		}
	}
}

// TestTouchControlsUpdate 测试逐帧指针比较生成的事件
func TestTouchControlsUpdate(t *testing.T) {
	tests := []struct {
		name   string
		frames [][]utils.Pointer
		want   [][]game.PointerEvent
	}{
		{
			name: "按下然后松开",
			frames: [][]utils.Pointer{
				{touchAt(0, game.DirectionRight)},
				{touchAt(0, game.DirectionRight)},
				{},
			},
			want: [][]game.PointerEvent{
				{{Dir: game.DirectionRight, Kind: game.PointerDown}},
				nil,
				{{Dir: game.DirectionRight, Kind: game.PointerUp}},
			},
		},
		{
			name: "滑出按钮",
			frames: [][]utils.Pointer{
				{touchAt(3, game.DirectionUp)},
				{{ID: 3, X: 640, Y: 360, Touch: true}},
				{},
			},
			want: [][]game.PointerEvent{
				{{Dir: game.DirectionUp, Kind: game.PointerDown}},
				{{Dir: game.DirectionUp, Kind: game.PointerLeave}},
				nil,
			},
		},
		{
			name: "滑入其他按钮不会按下",
			frames: [][]utils.Pointer{
				{touchAt(1, game.DirectionLeft)},
				{touchAt(1, game.DirectionDown)},
				{touchAt(1, game.DirectionDown)},
			},
			want: [][]game.PointerEvent{
				{{Dir: game.DirectionLeft, Kind: game.PointerDown}},
				{{Dir: game.DirectionLeft, Kind: game.PointerLeave}},
				nil,
			},
		},
		{
			name: "在空白处按下后滑入按钮",
			frames: [][]utils.Pointer{
				{{ID: 2, X: 640, Y: 360, Touch: true}},
				{touchAt(2, game.DirectionUp)},
			},
			want: [][]game.PointerEvent{
				nil,
				nil,
			},
		},
		{
			name: "鼠标与触摸同时按下",
			frames: [][]utils.Pointer{
				{touchAt(0, game.DirectionUp), {ID: utils.MousePointerID, X: 268, Y: 548}},
			},
			want: [][]game.PointerEvent{
				{
					{Dir: game.DirectionUp, Kind: game.PointerDown},
					{Dir: game.DirectionRight, Kind: game.PointerDown},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestControls()
			for i, frame := range tt.frames {
				got := tc.Update(frame)
				if len(got) == 0 && len(tt.want[i]) == 0 {
					continue
				}
				if !reflect.DeepEqual(got, tt.want[i]) {
					t.Errorf("frame %d: Update() = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

// TestTouchControlsPointerLanded 新指针在任意位置按下都会记录，按住不重复记录
func TestTouchControlsPointerLanded(t *testing.T) {
	blank := utils.Pointer{ID: utils.MousePointerID, X: 640, Y: 200}

	tests := []struct {
		name   string
		frames [][]utils.Pointer
		want   []bool
	}{
		{
			name:   "空白处点击并按住",
			frames: [][]utils.Pointer{{blank}, {blank}, nil},
			want:   []bool{true, false, false},
		},
		{
			name:   "按钮上触摸",
			frames: [][]utils.Pointer{{touchAt(0, game.DirectionUp)}, {touchAt(0, game.DirectionUp)}},
			want:   []bool{true, false},
		},
		{
			name:   "按住时第二根手指落下",
			frames: [][]utils.Pointer{{blank}, {blank, touchAt(1, game.DirectionDown)}},
			want:   []bool{true, true},
		},
		{
			name:   "松开后再次点击",
			frames: [][]utils.Pointer{{blank}, nil, {blank}},
			want:   []bool{true, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestControls()
			for i, frame := range tt.frames {
				tc.Update(frame)
				if got := tc.PointerLanded(); got != tt.want[i] {
					t.Errorf("frame %d: PointerLanded() = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

// TestTouchControlsCancel 测试失焦时取消所有按下的按钮
func TestTouchControlsCancel(t *testing.T) {
	tc := newTestControls()
	tc.Update([]utils.Pointer{touchAt(0, game.DirectionUp), touchAt(1, game.DirectionRight)})

	got := tc.Cancel()
	want := []game.PointerEvent{
		{Dir: game.DirectionUp, Kind: game.PointerCancel},
		{Dir: game.DirectionRight, Kind: game.PointerCancel},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cancel() = %v, want %v", got, want)
	}

	// 取消后同一指针仍按在按钮上，视为新的按下
	next := tc.Update([]utils.Pointer{touchAt(0, game.DirectionUp)})
	if len(next) != 1 || next[0].Kind != game.PointerDown {
		t.Errorf("after Cancel, expected a fresh PointerDown, got %v", next)
	}
}

// TestTouchControlsDriveGameState 测试按钮事件驱动游戏输入
func TestTouchControlsDriveGameState(t *testing.T) {
	tc := newTestControls()
	gs := game.NewGameState(nil)

	interacted := false
	for _, ev := range tc.Update([]utils.Pointer{touchAt(0, game.DirectionLeft)}) {
		interacted = gs.HandlePointer(ev) || interacted
	}
	if !interacted {
		t.Error("pointer down on a button should count as interaction")
	}
	if !gs.Input.Held(game.DirectionLeft) || gs.Player.Direction != game.DirectionLeft {
		t.Errorf("left should be held and facing left, got held=%v facing=%v",
			gs.Input.Held(game.DirectionLeft), gs.Player.Direction)
	}

	for _, ev := range tc.Update(nil) {
		gs.HandlePointer(ev)
	}
	if gs.Input.Held(game.DirectionLeft) {
		t.Error("left should be released after the touch ends")
	}
}

// TestTouchControlsVisible 测试按钮可见性
func TestTouchControlsVisible(t *testing.T) {
	t.Setenv("BAKERY_MOBILE_EMULATE", "")

	tc := newTestControls()
	if tc.Visible() {
		t.Error("desktop without touches should hide the controls")
	}
	tc.Update([]utils.Pointer{{ID: 5, X: 900, Y: 100, Touch: true}})
	if !tc.Visible() {
		t.Error("controls should show once a touch is seen")
	}

	always := NewTouchControls(config.GameWindowWidth, config.GameWindowHeight, true)
	if !always.Visible() {
		t.Error("alwaysVisible controls should be shown")
	}

	t.Setenv("BAKERY_MOBILE_EMULATE", "1")
	if !newTestControls().Visible() {
		t.Error("emulated mobile should show the controls")
	}
}

// TestTouchControlsDrawNilScreen 测试空画布不会崩溃
func TestTouchControlsDrawNilScreen(t *testing.T) {
	tc := NewTouchControls(config.GameWindowWidth, config.GameWindowHeight, true)
	tc.Draw(nil, game.InputSnapshot{Up: true})
}
