package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneyforge/fincalc/pkg/tvm"
)

var (
	presentValueAmount  string
	presentValueRate    string
	presentValuePeriods int

	netPresentValueAmount     string
	netPresentValueRate       string
	netPresentValuePeriods    int
	netPresentValueInvestment string
)

var presentValueCmd = &cobra.Command{
	Use:   "present-value",
	Short: "Discount a future amount back to today",
	Long: `Computes the value today of an amount received after a number of
compounding periods.

Examples:
  fincalc present-value --amount 100000 --rate 10.58 --periods 12
  fincalc present-value --amount 16470.09 --rate 5 --periods 10`,
	RunE: runPresentValue,
}

var netPresentValueCmd = &cobra.Command{
	Use:   "net-present-value",
	Short: "Present value net of the original investment",
	Long: `Computes the present value of a future amount and subtracts the
investment made today.

Examples:
  fincalc net-present-value --amount 100000 --rate 10.58 --periods 12 --investment 80000`,
	RunE: runNetPresentValue,
}

func init() {
	rootCmd.AddCommand(presentValueCmd)
	rootCmd.AddCommand(netPresentValueCmd)

	presentValueCmd.Flags().StringVarP(&presentValueAmount, "amount", "a", "", "Future amount to discount")
	presentValueCmd.Flags().StringVarP(&presentValueRate, "rate", "r", "", "Interest rate per period in percent")
	presentValueCmd.Flags().IntVarP(&presentValuePeriods, "periods", "n", 0, "Number of compounding periods")
	presentValueCmd.MarkFlagRequired("amount")
	presentValueCmd.MarkFlagRequired("rate")
	presentValueCmd.MarkFlagRequired("periods")

	netPresentValueCmd.Flags().StringVarP(&netPresentValueAmount, "amount", "a", "", "Future amount to discount")
	netPresentValueCmd.Flags().StringVarP(&netPresentValueRate, "rate", "r", "", "Interest rate per period in percent")
	netPresentValueCmd.Flags().IntVarP(&netPresentValuePeriods, "periods", "n", 0, "Number of compounding periods")
	netPresentValueCmd.Flags().StringVarP(&netPresentValueInvestment, "investment", "i", "", "Amount invested today")
	netPresentValueCmd.MarkFlagRequired("amount")
	netPresentValueCmd.MarkFlagRequired("rate")
	netPresentValueCmd.MarkFlagRequired("periods")
	netPresentValueCmd.MarkFlagRequired("investment")
}

func runPresentValue(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", presentValueAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", presentValueRate)
	if err != nil {
		return err
	}

	value, err := tvm.PresentValue(amount, rate, presentValuePeriods)
	if err != nil {
		return err
	}

	fmt.Printf("Present value: %s\n", value.StringFixed(2))
	return nil
}

func runNetPresentValue(cmd *cobra.Command, args []string) error {
	amount, err := parseDecimalFlag("amount", netPresentValueAmount)
	if err != nil {
		return err
	}
	rate, err := parseDecimalFlag("rate", netPresentValueRate)
	if err != nil {
		return err
	}
	investment, err := parseDecimalFlag("investment", netPresentValueInvestment)
	if err != nil {
		return err
	}

	value, err := tvm.NetPresentValue(amount, rate, netPresentValuePeriods, investment)
	if err != nil {
		return err
	}

	fmt.Printf("Net present value: %s\n", value.StringFixed(2))
	return nil
}
