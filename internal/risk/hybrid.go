package risk

import (
	"fmt"
	"math"
	"time"
)

// =============================================================================
// Hybrid VaR (세 기법의 가중 결합)
// =============================================================================

// DefaultHybridWeights Hybrid VaR 기본 가중치
// ⭐ 가중치 합이 1인지 검증하지 않음 — 의도적으로 비정규화 블렌드를 허용하는
// 호출자 책임 계약 (누락된 키는 가중치 0으로 집계)
func DefaultHybridWeights() map[string]float64 {
	return map[string]float64{
		string(MethodHistorical): 0.4,
		string(MethodParametric): 0.3,
		string(MethodMonteCarlo): 0.3,
	}
}

// CalculateHybridVaR Historical + Parametric(normal) + Monte Carlo(5000회)의
// 가중 결합 VaR 계산. weights가 nil이면 기본 가중치 {0.4, 0.3, 0.3} 사용
func CalculateHybridVaR(returns []float64, confidence float64, weights map[string]float64, portfolioValue float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("hybrid VaR: %w", ErrEmptyInput)
	}

	if weights == nil {
		weights = DefaultHybridWeights()
	}

	hist, err := CalculateHistoricalVaR(returns, confidence, portfolioValue)
	if err != nil {
		return nil, fmt.Errorf("hybrid VaR: %w", err)
	}
	param, err := CalculateParametricVaR(returns, confidence, DistributionNormal, portfolioValue)
	if err != nil {
		return nil, fmt.Errorf("hybrid VaR: %w", err)
	}
	mc, err := CalculateMonteCarloVaR(returns, confidence, MonteCarloConfig{Simulations: hybridSimulations}, portfolioValue)
	if err != nil {
		return nil, fmt.Errorf("hybrid VaR: %w", err)
	}

	wHist := weights[string(MethodHistorical)]
	wParam := weights[string(MethodParametric)]
	wMC := weights[string(MethodMonteCarlo)]

	varValue := wHist*hist.VaRValue + wParam*param.VaRValue + wMC*mc.VaRValue
	cvarValue := wHist*hist.CVaRValue + wParam*param.CVaRValue + wMC*mc.CVaRValue

	_, volatility, skewness, kurtosis := Moments(returns)

	return &VaRResult{
		Method:            "Hybrid VaR",
		ConfidenceLevel:   confidence,
		VaRValue:          varValue,
		VaRPercentage:     varValue / portfolioValue * 100,
		CVaRValue:         cvarValue,
		CVaRPercentage:    cvarValue / portfolioValue * 100,
		ExpectedShortfall: cvarValue,
		PortfolioValue:    portfolioValue,
		CalculationDate:   time.Now(),
		DataPoints:        len(returns),
		Volatility:        volatility,
		Skewness:          skewness,
		Kurtosis:          kurtosis,
		Hybrid: &HybridStats{
			Weights:       weights,
			HistoricalVaR: hist.VaRValue,
			ParametricVaR: param.VaRValue,
			MonteCarloVaR: mc.VaRValue,
			Agreement: MethodAgreement{
				HistParamDiff: math.Abs(hist.VaRValue - param.VaRValue),
				HistMCDiff:    math.Abs(hist.VaRValue - mc.VaRValue),
				ParamMCDiff:   math.Abs(param.VaRValue - mc.VaRValue),
			},
		},
	}, nil
}
