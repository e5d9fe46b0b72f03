package announcerd

import (
	"context"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	DefAnnouncerURL    = "http://localhost:7070"
	DefTLSVerification = false

	defHTTPPort = "7070"
)

var startCmd = []cobra.Command{
	{
		Use:   "start",
		Short: "Start announcer",
		Long:  `Start the competition announcer.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := Config{}
			if err := env.Parse(&cfg); err != nil {
				log.Fatalf("failed to load configuration : %s", err.Error())
			}
			if cfg.InstanceID == "" {
				cfg.InstanceID = uuid.NewString()
			}
			if cfg.Server.Port == "" {
				cfg.Server.Port = defHTTPPort
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			if err := StartAnnouncer(ctx, cancel, cfg); err != nil {
				cmd.PrintErrf("failed to start announcer: %s", err.Error())
			}
			cancel()
		},
	},
}

func NewAnnouncerCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "announcer [start]",
		Short: "Announcer management",
		Long:  `Run the competition announcer daemon.`,
	}

	for i := range startCmd {
		cmd.AddCommand(&startCmd[i])
	}

	return &cmd
}
