package cli

import (
	"github.com/spf13/cobra"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/ui/tui"
)

func browseCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the club read-only in a full-screen view",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			return tui.Run(tui.Deps{
				LoadClub: ws.load,
				Weather:  ws.weather,
				Logger:   ws.log,
				Debug:    opts.debug,
			})
		},
	}
}
