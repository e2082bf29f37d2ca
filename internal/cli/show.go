package cli

import (
	"fmt"

	"todo-cli/internal/config"
	"todo-cli/internal/publish"
	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	opt := publish.RenderOptions{}
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render the checklist as formatted markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, app)
			if err != nil {
				return err
			}
			items, err := store.File{Path: args[0]}.Load()
			if err != nil {
				return err
			}
			if opt.Style == "" && cfg.Theme == config.ThemeLight {
				opt.Style = "light"
			}
			out, err := publish.RenderTerminal(items, opt)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&opt.Style, "style", envOr("TODO_SHOW_STYLE", ""), "Glamour style (dark|light|notty|ascii|...; default dark, or light with --theme light)")
	cmd.Flags().IntVar(&opt.Width, "width", 80, "Wrap width")
	cmd.Flags().BoolVar(&opt.HideComplete, "hide-complete", false, "Omit completed items")
	return cmd
}
