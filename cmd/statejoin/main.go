// statejoin builds one denormalized state-level table of hate-crime
// statistics from six source CSVs and derives per-capita features.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	frame "github.com/statejoin/statejoin"
	"github.com/statejoin/statejoin/pipeline"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "statejoin",
	Short: "Join state-level hate-crime, demographic and media tables into one CSV",
	Long: `statejoin loads six state-keyed tables (FBI bias-motivation counts,
agency reporting participation, LGBT population estimates, legal
protection flags, social mentions and raw news articles), normalizes
them, left-joins them on state and writes a single table with derived
per-capita features.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pipeline and write the joined table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, e := pipeline.LoadConfig(cfgFile)
		if e != nil {
			return e
		}

		applyOverrides(cmd, &cfg)

		info, e := pipeline.Run(cfg)
		if e != nil {
			return e
		}

		fmt.Printf("wrote %s: %d rows, %d columns\n", info.Output, info.Rows, info.Columns)

		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <file.csv>",
	Short: "Print per-column summaries of a delimited file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, e := frame.ReadCSV(args[0])
		if e != nil {
			return e
		}

		f.Normalize()

		for _, nm := range f.ColumnNames() {
			fmt.Println(f.Column(nm))
			fmt.Println()
		}

		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter statejoin.yaml with the default paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		const fn = "statejoin.yaml"

		if _, e := os.Stat(fn); e == nil {
			return fmt.Errorf("%s already exists", fn)
		}

		body, e := pipeline.DefaultConfig().YAML()
		if e != nil {
			return e
		}

		if e = os.WriteFile(fn, body, 0o644); e != nil {
			return e
		}

		fmt.Printf("wrote %s\n", fn)

		return nil
	},
}

func applyOverrides(cmd *cobra.Command, cfg *pipeline.Config) {
	override := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}

	override("hate-crimes", &cfg.HateCrimes)
	override("reporting", &cfg.Reporting)
	override("population", &cfg.Population)
	override("legal", &cfg.Legal)
	override("social", &cfg.Social)
	override("news", &cfg.News)
	override("output", &cfg.Output)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default statejoin.yaml)")

	runCmd.Flags().String("hate-crimes", "", "hate-crime counts CSV")
	runCmd.Flags().String("reporting", "", "agency reporting CSV")
	runCmd.Flags().String("population", "", "LGBT population CSV")
	runCmd.Flags().String("legal", "", "legal protection flags CSV")
	runCmd.Flags().String("social", "", "social mention counts CSV")
	runCmd.Flags().String("news", "", "raw news articles CSV")
	runCmd.Flags().String("output", "", "output CSV path")

	rootCmd.AddCommand(runCmd, describeCmd, initCmd)
}

func main() {
	log.SetFlags(0)

	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}
