package cli

import (
	"github.com/spf13/cobra"

	"github.com/safe-scan-ai/announcer/pkg/sdk"
)

var (
	defOffset uint64 = 0
	defLimit  uint64 = 10
)

var asdk sdk.SDK

func SetAnnouncerSDK(s sdk.SDK) {
	asdk = s
}

func NewCompetitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "competitions [list|view|announcement]",
		Short: "Competitions inspection",
		Long:  `List configured competitions and view their last announcements.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List competitions",
		Long:  `List competitions currently held in the registry.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			page, err := asdk.ListCompetitions(defOffset, defLimit)
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logJSONCmd(*cmd, page)
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view <id>",
		Short: "View competition",
		Long:  `View a single competition definition.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			c, err := asdk.GetCompetition(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logJSONCmd(*cmd, c)
		},
	}

	announcementCmd := &cobra.Command{
		Use:   "announcement <id>",
		Short: "View last announcement",
		Long:  `View the last announced occurrence of a competition.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			a, err := asdk.LastAnnouncement(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logJSONCmd(*cmd, a)
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(viewCmd)
	cmd.AddCommand(announcementCmd)

	cmd.PersistentFlags().Uint64VarP(
		&defOffset,
		"offset",
		"o",
		defOffset,
		"Offset",
	)

	cmd.PersistentFlags().Uint64VarP(
		&defLimit,
		"limit",
		"l",
		defLimit,
		"Limit",
	)

	return cmd
}

func NewSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Trigger a sweep",
		Long:  `Trigger one refresh-and-announce cycle.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			if err := asdk.Sweep(); err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logSuccessCmd(*cmd, "Sweep started")
		},
	}
}
