package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	compoundAmount    string
	compoundRate      string
	compoundTermYears int
	compoundFrequency int
)

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Print the full compound interest schedule",
	Long: `Prints one row per compounding period with the interest earned and
the growing balance.

Examples:
  fincalc compound --amount 85000 --rate 10.58 --term 3
  fincalc compound --amount 1000 --rate 12 --term 1`,
	RunE: runCompound,
}

func init() {
	rootCmd.AddCommand(compoundCmd)

	compoundCmd.Flags().StringVarP(&compoundAmount, "amount", "a", "", "Initial principal")
	compoundCmd.Flags().StringVarP(&compoundRate, "rate", "r", "", "Annual interest rate in percent")
	compoundCmd.Flags().IntVarP(&compoundTermYears, "term", "t", 0, "Investment term in years")
	compoundCmd.Flags().IntVarP(&compoundFrequency, "frequency", "f", 12, "Compounding periods per year")
	compoundCmd.MarkFlagRequired("amount")
	compoundCmd.MarkFlagRequired("rate")
	compoundCmd.MarkFlagRequired("term")
}

func runCompound(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", compoundAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", compoundRate)
	if err != nil {
		return err
	}

	schedule, err := tvm.CompoundInterest(tvm.GrowthParameters{
		Principal:      amount,
		AnnualRate:     rate,
		TermYears:      compoundTermYears,
		PeriodsPerYear: compoundFrequency,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-14s %-12s %-14s\n", "PERIOD", "STARTING", "INTEREST", "ENDING")

	for _, period := range schedule {
		fmt.Printf("%-8d %-14s %-12s %-14s\n",
			period.PeriodNumber,
			period.StartingPrincipal.StringFixed(2),
			period.InterestEarned.StringFixed(2),
			period.NewPrincipal.StringFixed(2))
	}

	last := schedule[len(schedule)-1]
	fmt.Println()
	fmt.Printf("Final balance:         %s\n", last.NewPrincipal.StringFixed(2))
	fmt.Printf("Total interest earned: %s\n", last.NewPrincipal.Sub(amount).StringFixed(2))
	return nil
}
