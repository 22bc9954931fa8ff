package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haniwa/cfdrisk/internal/risk"
)

// portfolioCmd represents the portfolio command
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "상관 고려 포트폴리오 VaR 계산",
	Long: `자산별 수익률과 비중으로부터 포트폴리오 VaR를 계산합니다.

개별 자산 VaR 합계와 포트폴리오 VaR의 차이가 분산 효과입니다.
상관행렬은 Pearson 상관계수로 계산됩니다.

Example:
  go run ./cmd/risk portfolio --file portfolio.json --weights "BTC=0.5,ETH=0.3,SOL=0.2"
  go run ./cmd/risk portfolio --file portfolio.json --weights "BTC=0.6,ETH=0.4" --base parametric`,
	RunE: runPortfolio,
}

var (
	// Flags
	portfolioFile    string
	portfolioWeights string
	portfolioBase    string
)

func init() {
	rootCmd.AddCommand(portfolioCmd)

	portfolioCmd.Flags().StringVar(&portfolioFile, "file", "", "자산별 수익률 JSON 파일 (필수)")
	portfolioCmd.Flags().StringVar(&portfolioWeights, "weights", "", "자산별 비중 (ASSET=W,... 필수)")
	portfolioCmd.Flags().StringVar(&portfolioBase, "base", "historical", "개별 VaR 기법 (historical|parametric)")

	portfolioCmd.MarkFlagRequired("file")
	portfolioCmd.MarkFlagRequired("weights")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	assetReturns, err := loadAssetReturns(portfolioFile)
	if err != nil {
		return err
	}

	weights, err := parseWeights(portfolioWeights)
	if err != nil {
		return err
	}

	confidence := rt.confidence()

	result, err := rt.calc.PortfolioVaR(assetReturns, weights, confidence, risk.Method(portfolioBase), flagValue)
	if err != nil {
		return fmt.Errorf("portfolio var calculation failed: %w", err)
	}

	printPortfolioResult(result, confidence)

	if flagSave {
		runID := rt.reporter.PublishPortfolio(cmd.Context(), confidence, result)
		fmt.Printf("\n💾 Saved (run_id: %s)\n", runID)
	}

	if flagExport {
		path, err := rt.reporter.Export("portfolio", result)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("📄 Exported: %s\n", path)
	}

	return nil
}

func printPortfolioResult(result *risk.PortfolioVaRResult, confidence float64) {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  Portfolio VaR")
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Confidence : %.1f%%\n", confidence*100)
	fmt.Printf("  Assets     : %d\n", len(result.Assets))
	fmt.Println("───────────────────────────────────────────────────────────")

	var sumIndividual float64
	for _, asset := range result.Assets {
		v := result.IndividualVaRs[asset]
		sumIndividual += v
		fmt.Printf("  %-12s : %.2f\n", asset, v)
	}

	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Sum Individual          : %.2f\n", sumIndividual)
	fmt.Printf("  Portfolio VaR           : %.2f\n", result.PortfolioVaR)
	fmt.Printf("  Diversification Benefit : %.2f\n", result.DiversificationBenefit)
	fmt.Printf("  Portfolio Volatility    : %.4f\n", result.PortfolioVolatility)
	fmt.Println("───────────────────────────────────────────────────────────")

	// 상관행렬 (자산 순서는 result.Assets)
	fmt.Println("  Correlation Matrix")
	for i, row := range result.CorrelationMatrix {
		fmt.Printf("  %-12s :", result.Assets[i])
		for _, v := range row {
			fmt.Printf(" %6.3f", v)
		}
		fmt.Println()
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
}
