package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/ui/shell"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOpts struct {
	debug    bool
	logLevel string
	dir      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "clubctl",
		Short:        "Club Deportivo: members, employees, activities and facilities",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			club, report := ws.load.Execute()

			sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), shell.Deps{
				Club:    club,
				Save:    ws.save,
				Weather: ws.weather,
				Logger:  ws.log,
			})
			sh.ReportLoad(report)
			return sh.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .club/logs/club.log")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override: debug|info|warn|error")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Workspace root (optional; autodetected from club.yaml if omitted)")

	cmd.AddCommand(
		listCmd(opts),
		weatherCmd(opts),
		browseCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
