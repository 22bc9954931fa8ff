package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haniwa/cfdrisk/internal/risk"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Kupiec POF 검정으로 VaR 모델 검증",
	Long: `실제 수익률과 VaR 추정치를 비교하여 모델 적합성을 검증합니다.

위반(violation)은 실제 수익률이 -VaR 추정치보다 낮은 날입니다.
Kupiec likelihood ratio 검정의 p-value가 0.05를 넘으면 모델 유효.

Example:
  go run ./cmd/risk validate --returns returns.json --estimates estimates.json
  go run ./cmd/risk validate --returns returns.json --estimates estimates.json --method parametric`,
	RunE: runValidate,
}

var (
	// Flags
	validateReturns   string
	validateEstimates string
	validateMethod    string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateReturns, "returns", "", "실제 수익률 JSON 파일 (필수)")
	validateCmd.Flags().StringVar(&validateEstimates, "estimates", "", "VaR 추정치 JSON 파일 (필수)")
	validateCmd.Flags().StringVar(&validateMethod, "method", "historical", "검증 대상 기법 표시용 라벨")

	validateCmd.MarkFlagRequired("returns")
	validateCmd.MarkFlagRequired("estimates")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	returns, err := loadReturns(validateReturns)
	if err != nil {
		return err
	}

	estimates, err := loadReturns(validateEstimates)
	if err != nil {
		return err
	}

	confidence := rt.confidence()

	result, err := rt.calc.ValidateModel(returns, estimates, confidence, validateMethod)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printValidationResult(result)

	if flagSave {
		runID := rt.reporter.PublishValidation(cmd.Context(), result)
		fmt.Printf("\n💾 Saved (run_id: %s)\n", runID)
	}

	if flagExport {
		path, err := rt.reporter.Export("validation", result)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("📄 Exported: %s\n", path)
	}

	return nil
}

func printValidationResult(result *risk.ValidationResult) {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  Kupiec POF Test")
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Method              : %s\n", result.Method)
	fmt.Printf("  Confidence          : %.1f%%\n", result.ConfidenceLevel*100)
	fmt.Printf("  Observations        : %d\n", result.TotalObservations)
	fmt.Printf("  Violations          : %d (expected %d)\n", result.Violations, result.ExpectedViolations)
	fmt.Printf("  Violation Rate      : %.4f\n", result.ViolationRate)
	fmt.Printf("  Kupiec Statistic    : %.4f\n", result.KupiecStatistic)
	fmt.Printf("  Kupiec p-value      : %.4f\n", result.KupiecPValue)
	fmt.Println("───────────────────────────────────────────────────────────")
	if result.IsModelValid {
		fmt.Println("  ✅ Model is statistically valid (p > 0.05)")
	} else {
		fmt.Println("  ❌ Model rejected by Kupiec test (p <= 0.05)")
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
}
