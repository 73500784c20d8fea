package main

import (
	"flag"
	"os"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf configs/config.yaml")
}

func newApp(logger log.Logger, hs *khttp.Server) *kratos.App {
	return kratos.New(
		kratos.Name("feed"),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service", "feed",
	)
	helper := log.NewHelper(logger)

	bc, confCleanup, err := conf.Load(flagconf)
	if err != nil {
		helper.Fatalw("msg", "load config failed", "path", flagconf, "error", err)
	}
	defer confCleanup()

	app, cleanup, err := wireApp(bc, logger)
	if err != nil {
		helper.Fatalw("msg", "wire app failed", "error", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		helper.Fatalw("msg", "app run failed", "error", err)
	}
}
