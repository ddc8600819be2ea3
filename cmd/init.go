package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livingcost/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize livingcost configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the dashboard and writes the config file (default .livingcost.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
