package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/safe-scan-ai/announcer/competition"
	"github.com/safe-scan-ai/announcer/pkg/schedule"
)

const filePermission = 0o644

// NewConfigCmd scaffolds a local competition configuration document, useful
// for trying the announcer against a file served by any static HTTP server.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [init]",
		Short: "Configuration helpers",
		Long:  `Scaffold a competition configuration document.`,
	}

	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Create a competition configuration",
		Long:  `Interactively create a competition configuration JSON document.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)

				return
			}

			var (
				id, category, times      string
				repo, filename, repoType string
			)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Competition ID").Value(&id),
					huh.NewInput().Title("Category").Value(&category),
					huh.NewInput().Title("Evaluation times (comma-separated HH:MM UTC)").Value(&times),
					huh.NewInput().Title("Dataset repo").Value(&repo),
					huh.NewInput().Title("Dataset filename").Value(&filename),
					huh.NewInput().Title("Dataset repo type").Value(&repoType),
				),
			)
			if err := form.Run(); err != nil {
				logErrorCmd(*cmd, err)

				return
			}

			slots := []string{}
			for _, slot := range strings.Split(times, ",") {
				if slot = strings.TrimSpace(slot); slot != "" {
					slots = append(slots, slot)
				}
			}

			def := competition.Definition{
				ID:              id,
				Category:        category,
				EvaluationTimes: slots,
				DatasetRepo:     repo,
				DatasetFilename: filename,
				DatasetRepoType: repoType,
			}
			if err := def.Validate(); err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			if err := schedule.Validate(def.EvaluationTimes); err != nil {
				logErrorCmd(*cmd, err)

				return
			}

			data, err := json.MarshalIndent([]competition.Definition{def}, "", "  ")
			if err != nil {
				logErrorCmd(*cmd, err)

				return
			}

			if err := os.WriteFile(args[0], data, filePermission); err != nil {
				logErrorCmd(*cmd, err)

				return
			}
			logSuccessCmd(*cmd, "Successfully created configuration "+args[0])
		},
	}

	cmd.AddCommand(initCmd)

	return cmd
}
