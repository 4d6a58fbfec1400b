package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	simpleInterestAmount string
	simpleInterestRate   string
)

var simpleInterestCmd = &cobra.Command{
	Use:   "simple-interest",
	Short: "Grow a principal by a flat annual rate",
	Long: `Computes the principal plus one year of simple interest.

Examples:
  fincalc simple-interest --amount 85000 --rate 10.58
  fincalc simple-interest --amount 1500.50 --rate 4.25`,
	RunE: runSimpleInterest,
}

func init() {
	rootCmd.AddCommand(simpleInterestCmd)

	simpleInterestCmd.Flags().StringVarP(&simpleInterestAmount, "amount", "a", "", "Principal amount")
	simpleInterestCmd.Flags().StringVarP(&simpleInterestRate, "rate", "r", "", "Annual interest rate in percent")
	simpleInterestCmd.MarkFlagRequired("amount")
	simpleInterestCmd.MarkFlagRequired("rate")
}

func runSimpleInterest(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", simpleInterestAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", simpleInterestRate)
	if err != nil {
		return err
	}

	total := tvm.SimpleInterest(amount, rate)

	fmt.Printf("Amount with interest: %s\n", total.StringFixed(2))
	return nil
}
