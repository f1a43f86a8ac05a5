package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func weatherCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Show the current weather at the club's configured coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			w, err := ws.weather.Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clima actual: %s\n", w)
			return nil
		},
	}
}
