// Package logging 配置进程级日志
//
// 各组件在构造时通过 For 取得带前缀的 logger，
// 因此 Setup 必须在创建任何组件之前调用。
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Setup 配置默认 logger
//
// 参数：
//   - w: 日志输出，TUI 模式下传入 io.Discard 避免干扰画面
//   - verbose: true 时输出 Debug 级别，否则只输出 Warn 及以上
//
// 返回：
//   - *log.Logger: 新的默认 logger
func Setup(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	log.SetDefault(logger)
	return logger
}

// For 返回带组件前缀的 logger
func For(prefix string) *log.Logger {
	return log.Default().WithPrefix(prefix)
}
