package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/safe-scan-ai/announcer/announcerd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "announcerd",
		Short: "Announcer Daemon",
		Long:  `Announcer Daemon manages the lifecycle of the competition announcer.`,
	}

	announcerCmd := announcerd.NewAnnouncerCmd()

	rootCmd.AddCommand(announcerCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
