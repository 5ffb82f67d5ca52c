package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"estuatlas/internal/config"
	"estuatlas/internal/tui"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "estuatlas",
	Short: "Browse an interactive world atlas of estuarine systems",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m := tui.New(cfg)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
		final, err := p.Run()
		if err != nil {
			return err
		}
		if fm, ok := final.(tui.Model); ok {
			fm.PersistSession()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "estuatlas.toml", "Path to configuration file")
}

func Execute() error {
	return rootCmd.Execute()
}
