package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	futureValueAmount    string
	futureValueRate      string
	futureValueTermYears int
	futureValueFrequency int
	futureValuePeriod    int
)

var futureValueCmd = &cobra.Command{
	Use:   "future-value",
	Short: "Balance after a number of compounding periods",
	Long: `Computes the compounded balance at a single period of the growth
schedule.

Examples:
  fincalc future-value --amount 85000 --rate 10.58 --term 3 --period 13
  fincalc future-value --amount 1000 --rate 12 --term 1 --period 12`,
	RunE: runFutureValue,
}

func init() {
	rootCmd.AddCommand(futureValueCmd)

	futureValueCmd.Flags().StringVarP(&futureValueAmount, "amount", "a", "", "Initial principal")
	futureValueCmd.Flags().StringVarP(&futureValueRate, "rate", "r", "", "Annual interest rate in percent")
	futureValueCmd.Flags().IntVarP(&futureValueTermYears, "term", "t", 0, "Investment term in years")
	futureValueCmd.Flags().IntVarP(&futureValueFrequency, "frequency", "f", 12, "Compounding periods per year")
	futureValueCmd.Flags().IntVarP(&futureValuePeriod, "period", "p", 0, "Period to report, starting at 1")
	futureValueCmd.MarkFlagRequired("amount")
	futureValueCmd.MarkFlagRequired("rate")
	futureValueCmd.MarkFlagRequired("term")
	futureValueCmd.MarkFlagRequired("period")
}

func runFutureValue(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", futureValueAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", futureValueRate)
	if err != nil {
		return err
	}

	value, err := tvm.FutureValue(amount, rate, futureValueTermYears, futureValueFrequency, futureValuePeriod)
	if err != nil {
		return err
	}

	fmt.Printf("Future value after period %d: %s\n", futureValuePeriod, value.StringFixed(2))
	return nil
}
