package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/safe-scan-ai/announcer/announcerd"
	"github.com/safe-scan-ai/announcer/cli"
	"github.com/safe-scan-ai/announcer/pkg/sdk"
)

func main() {
	announcerURL := announcerd.DefAnnouncerURL
	tlsVerification := announcerd.DefTLSVerification

	rootCmd := &cobra.Command{
		Use:   "announcer-cli",
		Short: "Announcer CLI",
		Long:  `Announcer CLI is a command line interface for interacting with the competition announcer.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			sdkConf := sdk.Config{
				AnnouncerURL:    announcerURL,
				TLSVerification: tlsVerification,
			}
			s := sdk.NewSDK(sdkConf)
			cli.SetAnnouncerSDK(s)
		},
	}

	rootCmd.PersistentFlags().StringVarP(
		&announcerURL,
		"announcer-url",
		"a",
		announcerURL,
		"Announcer URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&tlsVerification,
		"tls-verification",
		"v",
		tlsVerification,
		"TLS Verification",
	)

	rootCmd.AddCommand(cli.NewCompetitionsCmd())
	rootCmd.AddCommand(cli.NewSweepCmd())
	rootCmd.AddCommand(cli.NewConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
