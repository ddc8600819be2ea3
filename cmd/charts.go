package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/progress"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Inspect the chart artifacts in the assets directory",
}

var chartsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the chart artifacts available to the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		names, err := charts.NewLoader(cfg.AssetsDir).List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintf(os.Stderr, "No chart artifacts in %s\n", cfg.AssetsDir)
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var chartsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every chart artifact and report any that fail",
	Long: `Loads each artifact the way a page render would and reports missing fields
or malformed JSON. Exits non-zero if any artifact fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader := charts.NewLoader(cfg.AssetsDir)
		names, err := loader.List()
		if err != nil {
			return err
		}

		reporter := progress.NewReporter("Checking charts")
		reporter.Start(len(names))
		results, err := loader.Check(func(done int, name string) {
			reporter.Update(done, name)
		})
		reporter.Finish()
		if err != nil {
			return err
		}

		failed := 0
		for _, res := range results {
			if res.OK() {
				fmt.Printf("%s %s (%d traces)\n", okMark("✓"), res.Name, res.Traces)
				continue
			}
			failed++
			fmt.Printf("%s %s: %v\n", failMark("✗"), res.Name, res.Err)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d chart artifact(s) failed", failed, len(results))
		}
		fmt.Printf("All %d chart artifact(s) OK\n", len(results))
		return nil
	},
}

func init() {
	chartsCmd.AddCommand(chartsListCmd)
	chartsCmd.AddCommand(chartsCheckCmd)
	rootCmd.AddCommand(chartsCmd)
}
