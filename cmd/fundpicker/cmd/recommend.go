package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"FundPicker/internal/model"
	"FundPicker/internal/notifier"
	"FundPicker/internal/session"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print a recommendation for one set of inputs",
	Long: `Recommend submits the given inputs once and prints the top picks
and one page of the eligible-funds table.

Example:
  fundpicker recommend --amount 9000 --risk low --period 5
  fundpicker recommend -a 10000 -r high -p 3 --json`,
	RunE: runRecommend,
}

var (
	recAmount string
	recRisk   string
	recPeriod string
	recPage   int
	recJSON   bool
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&recAmount, "amount", "a", "", "investment amount (required)")
	recommendCmd.Flags().StringVarP(&recRisk, "risk", "r", model.DefaultRiskTier.Key(), "risk appetite: low, medium or high")
	recommendCmd.Flags().StringVarP(&recPeriod, "period", "p", "", "investment period in years (required)")
	recommendCmd.Flags().IntVar(&recPage, "page", 1, "table page to print, starting at 1")
	recommendCmd.Flags().BoolVar(&recJSON, "json", false, "print the result as JSON")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	tier, err := model.ParseRiskTier(recRisk)
	if err != nil {
		return err
	}
	if recPage < 1 {
		return fmt.Errorf("--page must be at least 1")
	}
	a, err := bootstrap()
	if err != nil {
		return err
	}

	s := session.New(uuid.NewString(), a.catalog, a.engine)
	if err := s.Submit(recAmount, tier, recPeriod); err != nil {
		return err
	}
	s.GoToPage(recPage - 1)
	snap := s.Snapshot()

	if recJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	out, err := terminalOut(os.Stdout)
	if err != nil {
		return err
	}
	return out.Send(notifier.MarkdownFormatter{Currency: a.cfg.Display.Currency}.Results(snap))
}
