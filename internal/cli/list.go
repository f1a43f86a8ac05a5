package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

var listKinds = []string{"members", "employees", "activities", "facilities"}

func listCmd(opts *globalOpts) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:       "list <members|employees|activities|facilities>",
		Short:     "Print one collection without opening the menu",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if !isListKind(kind) {
				return fmt.Errorf("unknown collection %q (expected members|employees|activities|facilities)", kind)
			}

			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			club, report := ws.load.Execute()
			for _, d := range report.Documents {
				if d.Status != domain.DocumentFailed {
					continue
				}
				if d.Name == kind {
					return d.Err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s not loaded: %v\n", d.Name, d.Err)
			}

			return printList(cmd.OutOrStdout(), kind, summaries(club, kind), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func isListKind(kind string) bool {
	for _, k := range listKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func summaries(c *domain.Club, kind string) []string {
	var out []string
	switch kind {
	case "members":
		for _, m := range c.Members() {
			out = append(out, m.String())
		}
	case "employees":
		for _, e := range c.Employees() {
			out = append(out, e.String())
		}
	case "activities":
		for _, a := range c.Activities() {
			out = append(out, a.String())
		}
	case "facilities":
		for _, f := range c.Facilities() {
			out = append(out, f.String())
		}
	}
	return out
}

func printList(w io.Writer, kind string, items []string, format string) error {
	switch format {
	case "json":
		if items == nil {
			items = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"collection": kind,
			"count":      len(items),
			"items":      items,
		})
	case "pretty", "":
		if len(items) == 0 {
			fmt.Fprintf(w, "(no %s)\n", kind)
			return nil
		}
		for i, s := range items {
			fmt.Fprintf(w, "%d. %s\n", i, s)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
