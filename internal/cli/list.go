package cli

import (
	"todo-cli/internal/format"
	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		outFormat string
		pretty    bool
	)
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print checklist items (json|edn)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := store.File{Path: args[0]}.Load()
			if err != nil {
				return err
			}
			return format.Write(cmd.OutOrStdout(), format.NewListing(args[0], items), outFormat, pretty)
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", envOr("TODO_FORMAT", format.JSON), "Output format (json|edn)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print output")
	return cmd
}
