package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haniwa/cfdrisk/internal/risk"
)

// varCmd represents the var command
var varCmd = &cobra.Command{
	Use:   "var",
	Short: "단일 자산 VaR/CVaR 계산",
	Long: `수익률 시계열로부터 VaR와 CVaR를 계산합니다.

지원 기법:
- historical   과거 분포 퍼센타일
- parametric   정규/t 분포 가정 (--distribution)
- monte_carlo  정규 적합 시뮬레이션 (--simulations, --seed)
- hybrid       세 기법 가중 결합

Example:
  go run ./cmd/risk var --method historical --file returns.json
  go run ./cmd/risk var --method parametric --distribution student_t --file returns.json
  go run ./cmd/risk var --method monte_carlo --sample --days 252 --seed 42
  go run ./cmd/risk var --method hybrid --file returns.json --confidence 0.99
  go run ./cmd/risk var --method all --sample --seed 42`,
	RunE: runVaR,
}

var (
	// Flags
	varMethod       string
	varDistribution string
	varFile         string
	varSample       bool
	varDays         int
	varSimulations  int
	varSeed         uint64
)

func init() {
	rootCmd.AddCommand(varCmd)

	varCmd.Flags().StringVar(&varMethod, "method", "historical", "계산 기법 (historical|parametric|monte_carlo|hybrid|all)")
	varCmd.Flags().StringVar(&varDistribution, "distribution", "normal", "파라메트릭 분포 (normal|student_t)")
	varCmd.Flags().StringVar(&varFile, "file", "", "수익률 JSON 파일 경로")
	varCmd.Flags().BoolVar(&varSample, "sample", false, "샘플 수익률 생성 사용")
	varCmd.Flags().IntVar(&varDays, "days", 252, "샘플 생성 일수")
	varCmd.Flags().IntVar(&varSimulations, "simulations", 0, "Monte Carlo 시뮬레이션 횟수 (기본: 설정값)")
	varCmd.Flags().Uint64Var(&varSeed, "seed", 0, "Monte Carlo 시드 (0=시각 기반)")

	varCmd.MarkFlagsMutuallyExclusive("file", "sample")
}

func runVaR(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	returns, err := resolveReturns(rt)
	if err != nil {
		return err
	}

	confidence := rt.confidence()

	if varMethod == "all" {
		return runAllMethods(cmd, rt, returns, confidence)
	}

	var result *risk.VaRResult
	switch risk.Method(varMethod) {
	case risk.MethodHistorical:
		result, err = rt.calc.HistoricalVaR(returns, confidence, flagValue)
	case risk.MethodParametric:
		result, err = rt.calc.ParametricVaR(returns, confidence, risk.Distribution(varDistribution), flagValue)
	case risk.MethodMonteCarlo:
		result, err = rt.calc.MonteCarloVaR(returns, confidence, monteCarloConfig(rt), flagValue)
	case risk.MethodHybrid:
		result, err = rt.calc.HybridVaR(returns, confidence, risk.DefaultHybridWeights(), flagValue)
	default:
		return fmt.Errorf("unknown method %q (historical|parametric|monte_carlo|hybrid|all)", varMethod)
	}
	if err != nil {
		return fmt.Errorf("var calculation failed: %w", err)
	}

	printVaRResult(result)

	if flagSave {
		runID := rt.reporter.PublishVaR(cmd.Context(), result)
		fmt.Printf("\n💾 Saved (run_id: %s)\n", runID)
	}

	if flagExport {
		path, err := rt.reporter.Export("var", result)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("📄 Exported: %s\n", path)
	}

	return nil
}

// runAllMethods 네 기법을 모두 실행해 비교 출력
func runAllMethods(cmd *cobra.Command, rt *runtime, returns []float64, confidence float64) error {
	results := make([]*risk.VaRResult, 0, 4)

	hist, err := rt.calc.HistoricalVaR(returns, confidence, flagValue)
	if err != nil {
		return fmt.Errorf("var calculation failed: %w", err)
	}
	results = append(results, hist)

	param, err := rt.calc.ParametricVaR(returns, confidence, risk.Distribution(varDistribution), flagValue)
	if err != nil {
		return fmt.Errorf("var calculation failed: %w", err)
	}
	results = append(results, param)

	mc, err := rt.calc.MonteCarloVaR(returns, confidence, monteCarloConfig(rt), flagValue)
	if err != nil {
		return fmt.Errorf("var calculation failed: %w", err)
	}
	results = append(results, mc)

	hybrid, err := rt.calc.HybridVaR(returns, confidence, risk.DefaultHybridWeights(), flagValue)
	if err != nil {
		return fmt.Errorf("var calculation failed: %w", err)
	}
	results = append(results, hybrid)

	for _, result := range results {
		printVaRResult(result)
		fmt.Println()

		if flagSave {
			runID := rt.reporter.PublishVaR(cmd.Context(), result)
			fmt.Printf("💾 Saved (run_id: %s)\n", runID)
		}
	}

	if flagExport {
		path, err := rt.reporter.Export("var_all", results)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("📄 Exported: %s\n", path)
	}

	return nil
}

// resolveReturns --file 또는 --sample 입력 해석
func resolveReturns(rt *runtime) ([]float64, error) {
	if varSample {
		seed := varSeed
		if seed == 0 {
			seed = rt.cfg.Risk.Seed
		}
		return risk.SampleReturns(varDays, seed), nil
	}
	if varFile == "" {
		return nil, fmt.Errorf("either --file or --sample is required")
	}
	return loadReturns(varFile)
}

func monteCarloConfig(rt *runtime) risk.MonteCarloConfig {
	cfg := risk.MonteCarloConfig{
		Simulations: varSimulations,
		Seed:        varSeed,
	}
	if cfg.Simulations <= 0 {
		cfg.Simulations = rt.cfg.Risk.Simulations
	}
	if cfg.Seed == 0 {
		cfg.Seed = rt.cfg.Risk.Seed
	}
	return cfg
}

func printVaRResult(result *risk.VaRResult) {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  %s\n", result.Method)
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Confidence     : %.1f%%\n", result.ConfidenceLevel*100)
	fmt.Printf("  Portfolio Value: %.2f\n", result.PortfolioValue)
	fmt.Printf("  Data Points    : %d\n", result.DataPoints)
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  VaR            : %.2f (%.2f%%)\n", result.VaRValue, result.VaRPercentage)
	fmt.Printf("  CVaR           : %.2f (%.2f%%)\n", result.CVaRValue, result.CVaRPercentage)
	fmt.Printf("  Volatility     : %.4f\n", result.Volatility)
	fmt.Printf("  Skewness       : %.4f\n", result.Skewness)
	fmt.Printf("  Excess Kurtosis: %.4f\n", result.Kurtosis)

	if result.Hybrid != nil {
		fmt.Println("───────────────────────────────────────────────────────────")
		fmt.Printf("  Historical VaR : %.2f\n", result.Hybrid.HistoricalVaR)
		fmt.Printf("  Parametric VaR : %.2f\n", result.Hybrid.ParametricVaR)
		fmt.Printf("  MonteCarlo VaR : %.2f\n", result.Hybrid.MonteCarloVaR)
	}
	if result.MonteCarlo != nil {
		fmt.Println("───────────────────────────────────────────────────────────")
		fmt.Printf("  Simulations    : %d\n", result.MonteCarlo.Simulations)
		fmt.Printf("  Seed           : %d\n", result.MonteCarlo.Seed)
	}
	fmt.Println("═══════════════════════════════════════════════════════════")
}
