package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	paymentAmount    string
	paymentRate      string
	paymentTermYears int
	paymentFrequency int
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Compute the fixed periodic loan payment",
	Long: `Computes the fixed payment that retires a loan over the given term.

Examples:
  fincalc payment --amount 85000 --rate 10.58 --term 3
  fincalc payment --amount 250000 --rate 6.5 --term 30 --frequency 12`,
	RunE: runPayment,
}

func init() {
	rootCmd.AddCommand(paymentCmd)

	paymentCmd.Flags().StringVarP(&paymentAmount, "amount", "a", "", "Loan amount")
	paymentCmd.Flags().StringVarP(&paymentRate, "rate", "r", "", "Annual interest rate in percent")
	paymentCmd.Flags().IntVarP(&paymentTermYears, "term", "t", 0, "Loan term in years")
	paymentCmd.Flags().IntVarP(&paymentFrequency, "frequency", "f", 12, "Payments per year")
	paymentCmd.MarkFlagRequired("amount")
	paymentCmd.MarkFlagRequired("rate")
	paymentCmd.MarkFlagRequired("term")
}

func runPayment(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", paymentAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", paymentRate)
	if err != nil {
		return err
	}

	payment, err := tvm.Payment(amount, rate, paymentTermYears, paymentFrequency)
	if err != nil {
		return err
	}

	fmt.Printf("Periodic payment: %s\n", payment.StringFixed(2))
	return nil
}
