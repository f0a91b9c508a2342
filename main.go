// bakery 是一个俯视角的面包房移动小游戏
//
// 用法：
//
//	bakery                      - 打开游戏窗口
//	bakery tui                  - 在终端中游玩
//	bakery simulate --hold right --seconds 1
//	                            - 无界面运行并打印最终状态
//	bakery config               - 打印合并默认值后的配置
//
// 全局参数：
//
//	--config <path>  - 游戏配置文件（默认使用嵌入的 data/game.yaml）
//	--verbose        - 输出调试日志
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drodd/2dBakery/pkg/app"
	"github.com/Drodd/2dBakery/pkg/embedded"
)

var (
	// 全局参数
	flagVerbose    bool
	flagConfig     string
	flagFullscreen bool
)

func main() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bakery",
	Short: "2D Bakery - walk to the flag before the timer runs out",
	Long: `2D Bakery is a small top-down movement game.

Move with the arrow keys or WASD, avoid the counters and reach the flag in the
bottom-right corner before the countdown ends. R restarts, M mutes the music,
F11 toggles fullscreen.

Examples:
  bakery
  bakery --fullscreen
  bakery --config ./my-bakery.yaml
  bakery tui
  bakery simulate --hold right,down --seconds 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Config{
			Verbose:    flagVerbose,
			ConfigPath: flagConfig,
			Fullscreen: flagFullscreen,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML (default: embedded data/game.yaml)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
