package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nowauno/unoterm/internal/client"
	"github.com/nowauno/unoterm/internal/config"
	"github.com/nowauno/unoterm/internal/logger"
	"github.com/nowauno/unoterm/internal/network/authority"
	"github.com/nowauno/unoterm/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（可选）")
	serverURL := flag.String("server", "", "规则服务器地址，覆盖配置文件")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
		cfg = loaded
	}
	if *serverURL != "" {
		cfg.Authority.BaseURL = *serverURL
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	remote := authority.NewClient(cfg.Authority.BaseURL, cfg.Authority.TimeoutDuration())
	engine := client.NewEngine(remote)
	model := ui.NewModel(engine, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("client exited with error: %v", err)
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
