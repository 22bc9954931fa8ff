package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfidence float64
	flagValue      float64
	flagExport     bool
	flagSave       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "risk",
	Short: "CFD 포트폴리오 VaR/CVaR 계산 엔진",
	Long: `CFD Risk CLI

일별 수익률 시계열 기반 VaR/CVaR 계산 및 모델 검증 도구.
Historical / Parametric / Monte Carlo / Hybrid 4개 기법 지원.

Usage:
  go run ./cmd/risk [command]

Examples:
  go run ./cmd/risk var --method historical --file returns.json
  go run ./cmd/risk var --method monte_carlo --sample --seed 42
  go run ./cmd/risk portfolio --file portfolio.json --weights "BTC=0.5,ETH=0.5"
  go run ./cmd/risk validate --returns returns.json --estimates estimates.json`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Float64Var(&flagConfidence, "confidence", 0, "신뢰수준 (0~1, 기본: 설정값)")
	rootCmd.PersistentFlags().Float64Var(&flagValue, "value", 0, "포트폴리오 가치 (기본: 설정값)")
	rootCmd.PersistentFlags().BoolVar(&flagExport, "export", false, "결과를 JSON 파일로 내보내기")
	rootCmd.PersistentFlags().BoolVar(&flagSave, "save", false, "결과를 DB/캐시에 저장")
}
