// bubblerow 桌面端入口
//
// 显示一个查询输入框和一行可横向滚动的建议气泡。
//
// 用法:
//
//	go run . [--config path] [--width 480] [--initial] [--verbose]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/decker502/bubblerow/pkg/app"
	"github.com/decker502/bubblerow/pkg/embedded"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	cfg, err := parseFlags(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	width, height := gameApp.Size()
	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetWindowTitle("Suggestion Bubbles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.Printf("[Main] 启动窗口 %dx%d", width*2, height*2)
	return ebiten.RunGame(gameApp)
}

// parseFlags 解析命令行参数
func parseFlags(args []string) (app.Config, error) {
	var cfg app.Config

	flagSet := pflag.NewFlagSet("bubblerow", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.ConfigPath, "config", "", "path to a suggest.yaml overriding the embedded defaults")
	flagSet.IntVar(&cfg.Width, "width", app.DefaultWidth, "logical screen width in pixels")
	flagSet.BoolVar(&cfg.Initial, "initial", false, "show the first batch at full size without the reveal animation")
	flagSet.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable log output")

	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cfg, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if cfg.Width <= 0 {
		return cfg, fmt.Errorf("--width must be positive, got %d", cfg.Width)
	}
	return cfg, nil
}
