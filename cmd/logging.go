package cmd

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/logger"
)

// setupLogging initialises the global logger from the config, raised to
// debug by -v and with caller annotations by -vv
func setupLogging(ctx *cli.Context, cfg *config.Config) error {
	opts := cfg.LoggerOptions()
	opts.Console = os.Stderr
	if ctx.GlobalBool("v") || ctx.GlobalBool("vv") {
		opts.Level = "debug"
	}
	opts.Caller = ctx.GlobalBool("vv")
	return logger.InitWithOptions(opts)
}
