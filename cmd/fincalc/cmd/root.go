package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Time value of money calculator",
	Long: `fincalc computes loan payments, discounted values and interest
schedules using exact decimal arithmetic.

Commands:
  payment            - Fixed periodic loan payment
  simple-interest    - Principal grown by a flat annual rate
  present-value      - Discounted value of a future amount
  net-present-value  - Present value net of the original investment
  future-value       - Balance after a number of compounding periods
  amortize           - Full amortization schedule
  compound           - Full compound interest schedule`,
}

func Execute() error {
	return rootCmd.Execute()
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return d, nil
}
