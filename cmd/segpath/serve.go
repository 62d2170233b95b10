package main

import (
	"flag"

	"github.com/gonuts/commander"

	"github.com/katalvlaran/segpath/internal/config"
	"github.com/katalvlaran/segpath/server"
)

type serveFlags struct {
	config string
	addr   string
	policy string
	snap   bool
}

// apply overlays explicitly given flags on cfg.
func (f serveFlags) apply(cfg config.Config) config.Config {
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.policy != "" {
		cfg.RelaxPolicy = f.policy
	}
	if f.snap {
		cfg.Snap = true
	}

	return cfg
}

func ServeCmd() *commander.Command {
	var f serveFlags
	cmd := &commander.Command{
		UsageLine: "serve [-config file] [-addr host:port] [-policy name] [-snap]",
		Short:     "runs the HTTP planning service",
		Long: `
runs the HTTP planning service (POST /astar/, GET /)

	$ segpath serve -config segpath.yaml -addr :8000

`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
		Run: func(cmd *commander.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			srv, err := server.New(f.apply(cfg), newLogger())
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}
	cmd.Flag.StringVar(&f.config, "config", "", "YAML configuration file")
	cmd.Flag.StringVar(&f.addr, "addr", "", "listen address (overrides config)")
	cmd.Flag.StringVar(&f.policy, "policy", "", "relax policy: best-cost | frontier-scan (overrides config)")
	cmd.Flag.BoolVar(&f.snap, "snap", false, "snap unknown endpoints to the nearest vertex")

	return cmd
}
