package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/config"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: onboard [-config path] <command> [args]\n\n%s", commandHelp)
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(execute(*configPath, flag.Args()))
}

// execute は終了コードを返します。os.Exit は main でのみ呼びます。
func execute(configPath string, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv(configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "onboard: %v\n", err)
		return 1
	}

	// 標準出力はコマンドの結果に使うため、ログは標準エラーへ出します。
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onboard: %v\n", err)
		return 1
	}
	defer backend.Close()

	svc := onboarding.NewService(backend.Store, nil, backend.Tx, onboarding.WithLogger(log))

	if err := run(ctx, args, os.Stdout, svc); err != nil {
		fmt.Fprintf(os.Stderr, "onboard: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, commandHelp)
			return 2
		}
		return 1
	}
	return 0
}
