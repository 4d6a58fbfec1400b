package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	amortizeAmount    string
	amortizeRate      string
	amortizeTermYears int
	amortizeFrequency int
)

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Print the full amortization schedule",
	Long: `Prints one row per payment period with the payment split into
principal and interest, plus the remaining balance.

Examples:
  fincalc amortize --amount 85000 --rate 10.58 --term 3
  fincalc amortize --amount 10000 --rate 8 --term 1`,
	RunE: runAmortize,
}

func init() {
	rootCmd.AddCommand(amortizeCmd)

	amortizeCmd.Flags().StringVarP(&amortizeAmount, "amount", "a", "", "Loan amount")
	amortizeCmd.Flags().StringVarP(&amortizeRate, "rate", "r", "", "Annual interest rate in percent")
	amortizeCmd.Flags().IntVarP(&amortizeTermYears, "term", "t", 0, "Loan term in years")
	amortizeCmd.Flags().IntVarP(&amortizeFrequency, "frequency", "f", 12, "Payments per year")
	amortizeCmd.MarkFlagRequired("amount")
	amortizeCmd.MarkFlagRequired("rate")
	amortizeCmd.MarkFlagRequired("term")
}

func runAmortize(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", amortizeAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", amortizeRate)
	if err != nil {
		return err
	}

	schedule, err := tvm.Amortize(tvm.LoanParameters{
		LoanAmount:      amount,
		AnnualRate:      rate,
		TermYears:       amortizeTermYears,
		PaymentsPerYear: amortizeFrequency,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-12s %-12s %-12s %-12s\n", "PERIOD", "PAYMENT", "PRINCIPAL", "INTEREST", "BALANCE")

	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero
	for _, period := range schedule {
		fmt.Printf("%-8d %-12s %-12s %-12s %-12s\n",
			period.PeriodNumber,
			period.PaymentAmount.StringFixed(2),
			period.PrincipalPortion.StringFixed(2),
			period.InterestPortion.StringFixed(2),
			period.EndingPrincipal.StringFixed(2))
		totalPrincipal = totalPrincipal.Add(period.PrincipalPortion)
		totalInterest = totalInterest.Add(period.InterestPortion)
	}

	fmt.Println()
	fmt.Printf("Payment amount:  %s\n", schedule[0].PaymentAmount.StringFixed(2))
	fmt.Printf("Total paid:      %s\n", totalPrincipal.Add(totalInterest).StringFixed(2))
	fmt.Printf("Total principal: %s\n", totalPrincipal.StringFixed(2))
	fmt.Printf("Total interest:  %s\n", totalInterest.StringFixed(2))
	fmt.Printf("Final balance:   %s\n", schedule[len(schedule)-1].EndingPrincipal.StringFixed(2))
	return nil
}
