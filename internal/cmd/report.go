package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kurocal/internal/nutrition"
	"github.com/Simplici0/kurocal/internal/ui"
)

var (
	reportFile  string
	reportCheck bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full calorie report for a cat file",
	Long: `Read a cat description from a TOML file, run every calculation the file
has data for, and print the text report.

The [cat] table is required; [food] and [plan] are optional and their report
sections read "not yet available" when absent.

Example file:
  currency = "TWD"

  [cat]
  weight_kg = 4.0
  age_years = 2
  neutered = true
  bcs = 5

  [food.dry]
  grams_per_day = 50
  kcal_per_1000g = 3600
  package_weight_g = 1500
  package_price = 800

  [food.wet]
  grams_per_day = 100
  kcal_per_100g = 100

  [plan]
  wet_percentage = 50

Examples:
  kurocal report --file kuro.toml
  kurocal report --file kuro.toml --check   # exit 2 when intake is off target`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Cat description file (TOML)")
	reportCmd.Flags().BoolVar(&reportCheck, "check", false, "Exit with status 2 when intake is outside the tolerance band")
	_ = reportCmd.MarkFlagRequired("file")
}

func runReport(cmd *cobra.Command, args []string) error {
	f, err := loadCatFile(reportFile)
	if err != nil {
		return err
	}

	state, err := f.run()
	if err != nil {
		return err
	}

	body, err := state.Report(f.Currency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.RenderReport(body))

	if state.Intake != nil {
		status := state.Intake.Status
		fmt.Fprintf(out, "\nIntake: %s\n", ui.RenderStatus(status, status.Label()))
		if reportCheck && status != nutrition.IntakeOnTarget {
			return &exitError{code: 2}
		}
	}
	return nil
}
