// Package main 提供终端版建议气泡演示
//
// 用法:
//
//	go run ./cmd/suggest-tui [--config path] [--initial] [--log file]
//
// 功能:
//   - 输入框每次编辑推送 5 条派生建议
//   - 鼠标拖动或滚轮横向滚动气泡行，快速拖动后惯性滚动
//   - 点击气泡弹出提示
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	initial    bool
	logFile    string
}

func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("suggest-tui", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a suggest.yaml overriding the defaults")
	flagSet.BoolVar(&opts.initial, "initial", false, "show the first batch at full size without the reveal animation")
	flagSet.StringVar(&opts.logFile, "log", "", "write log output to this file (the terminal is owned by the UI)")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	// 终端由界面占用，日志只能写文件
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.ResolveSuggestConfig(opts.configPath)
	if err != nil {
		return err
	}

	model := tui.New(tui.Options{Config: cfg, Initial: opts.initial})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}
