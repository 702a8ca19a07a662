package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kurocal/internal/ui"
	"github.com/Simplici0/kurocal/internal/wizard"
)

var derInput wizard.ProfileInput

var derCmd = &cobra.Command{
	Use:   "der",
	Short: "Print RER, activity multiplier and DER for a cat",
	Long: `Compute the resting energy requirement (RER), the activity multiplier and
the daily energy requirement (DER) from command-line flags.

Examples:
  kurocal der --weight 4 --age-years 2 --neutered
  kurocal der --weight 3.2 --age-months 5
  kurocal der --weight 4.5 --age-years 3 --pregnant`,
	Args: cobra.NoArgs,
	RunE: runDER,
}

func init() {
	rootCmd.AddCommand(derCmd)
	derCmd.Flags().Float64Var(&derInput.WeightKg, "weight", 0, "Body weight in kg")
	derCmd.Flags().IntVar(&derInput.AgeYears, "age-years", 0, "Age, whole years")
	derCmd.Flags().IntVar(&derInput.AgeMonths, "age-months", 0, "Age, additional months")
	derCmd.Flags().BoolVar(&derInput.Neutered, "neutered", false, "Cat is neutered")
	derCmd.Flags().IntVar(&derInput.BCS, "bcs", 5, "Body condition score (1-9)")
	derCmd.Flags().BoolVar(&derInput.Pregnant, "pregnant", false, "Cat is pregnant")
	derCmd.Flags().BoolVar(&derInput.Lactating, "lactating", false, "Cat is lactating")
	_ = derCmd.MarkFlagRequired("weight")
}

func runDER(cmd *cobra.Command, args []string) error {
	state, err := wizard.New().SubmitProfile(derInput)
	if err != nil {
		return err
	}

	e := state.Energy
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "RER: %.2f kcal/day\n", e.RER)
	fmt.Fprintf(out, "Activity multiplier: %.1f\n", e.Multiplier)
	fmt.Fprintf(out, "%s %.2f kcal/day\n", ui.HeadingStyle.Render("DER:"), e.DER)
	return nil
}
