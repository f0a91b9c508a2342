package systems

import (
	"bytes"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/utils"
)

// Lang HUD 文本语言
type Lang int

const (
	LangZH Lang = iota
	LangEN
)

// HUDStrings 某一状态下的 HUD 文本
type HUDStrings struct {
	Status string // 状态栏
	Banner string // 结算横幅，进行中为空
}

var hudTexts = map[Lang]map[game.GameStatus]HUDStrings{
	LangZH: {
		game.StatusPlaying: {Status: "到达右下角旗帜处以获胜！"},
		game.StatusWon:     {Status: "胜利！按 R 重新开始", Banner: "胜利！"},
		game.StatusLost:    {Status: "时间到！按 R 重新开始", Banner: "时间到"},
	},
	LangEN: {
		game.StatusPlaying: {Status: "Reach the flag in the bottom-right corner to win!"},
		game.StatusWon:     {Status: "You win! Press R to restart", Banner: "YOU WIN!"},
		game.StatusLost:    {Status: "Time's up! Press R to restart", Banner: "TIME'S UP"},
	},
}

// HUDText 返回状态对应的 HUD 文本
func HUDText(status game.GameStatus, lang Lang) HUDStrings {
	table, ok := hudTexts[lang]
	if !ok {
		table = hudTexts[LangZH]
	}
	return table[status]
}

// CountdownText 返回倒计时显示文本（剩余秒数向上取整）
func CountdownText(t game.Timer) string {
	return strconv.Itoa(t.DisplaySeconds())
}

// bannerPopDuration 结算横幅弹出动画时长（秒）
const bannerPopDuration = 0.35

// HUDRenderSystem HUD 渲染系统
//
// 职责：
//   - 左上角状态栏
//   - 右上角倒计时
//   - 结束时居中的结算横幅（带弹出动画）
//
// 字体来自资源清单中的 FONT_HUD；缺失时使用 goregular，
// 该字体没有中文字形，因此同时切换为英文文本。
type HUDRenderSystem struct {
	lang Lang

	statusFace text.Face
	timerFace  text.Face
	bannerFace text.Face

	bannerStatus game.GameStatus
	bannerAge    float64

	logger *log.Logger
}

// NewHUDRenderSystem 创建 HUD 渲染系统
//
// 参数：
//   - source: HUD 字体源，nil 时回退到 goregular 与英文文本
func NewHUDRenderSystem(source *text.GoTextFaceSource) *HUDRenderSystem {
	h := &HUDRenderSystem{
		lang:   LangZH,
		logger: logging.For("HUD"),
	}
	if source == nil {
		h.lang = LangEN
		fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			h.logger.Warn("failed to load fallback font, HUD text disabled", "err", err)
			return h
		}
		source = fallback
		h.logger.Debug("FONT_HUD not available, using goregular with English text")
	}
	h.statusFace = &text.GoTextFace{Source: source, Size: config.HUDFontSize}
	h.timerFace = &text.GoTextFace{Source: source, Size: config.TimerFontSize}
	h.bannerFace = &text.GoTextFace{Source: source, Size: config.BannerFontSize}
	return h
}

// Lang 返回当前使用的文本语言
func (h *HUDRenderSystem) Lang() Lang {
	return h.lang
}

// Update 推进结算横幅动画
// 状态变化时动画从头开始
func (h *HUDRenderSystem) Update(dt float64, status game.GameStatus) {
	if status != h.bannerStatus {
		h.bannerStatus = status
		h.bannerAge = 0
		return
	}
	if status.IsOver() && h.bannerAge < bannerPopDuration {
		h.bannerAge += dt
	}
}

// BannerScale 返回结算横幅当前缩放（0.6 → 1）
func (h *HUDRenderSystem) BannerScale() float64 {
	return utils.Lerp(0.6, 1, utils.EaseOutCubic(h.bannerAge/bannerPopDuration))
}

// Draw 绘制 HUD
func (h *HUDRenderSystem) Draw(screen *ebiten.Image, gs *game.GameState) {
	if screen == nil || gs == nil {
		return
	}
	texts := HUDText(gs.Status, h.lang)

	utils.DrawTextShadowed(screen, texts.Status, h.statusFace,
		config.HUDMarginX, config.HUDMarginY,
		config.HUDTextColor, config.HUDShadowColor, text.AlignStart)
	utils.DrawTextShadowed(screen, CountdownText(gs.Timer), h.timerFace,
		gs.WorldWidth-config.HUDMarginX, config.HUDMarginY,
		config.HUDTextColor, config.HUDShadowColor, text.AlignEnd)

	if texts.Banner != "" {
		h.drawBanner(screen, gs, texts.Banner)
	}
}

func (h *HUDRenderSystem) drawBanner(screen *ebiten.Image, gs *game.GameState, banner string) {
	accent := config.BannerLoseColor
	if gs.Status == game.StatusWon {
		accent = config.BannerWinColor
	}

	s := h.BannerScale()
	w, bh := config.BannerWidth*s, config.BannerHeight*s
	cx, cy := gs.WorldWidth/2, gs.WorldHeight/2
	x, y := float32(cx-w/2), float32(cy-bh/2)

	vector.DrawFilledRect(screen, x, y, float32(w), float32(bh), config.BannerBackground, true)
	vector.StrokeRect(screen, x, y, float32(w), float32(bh), 4, accent, true)

	if h.bannerFace == nil {
		return
	}
	tw, th := utils.MeasureText(banner, h.bannerFace)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-tw/2, -th/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(accent)
	text.Draw(screen, banner, h.bannerFace, op)
}
