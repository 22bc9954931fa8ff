package risk

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// =============================================================================
// Historical VaR (경험적 백분위수 + tail 평균)
// =============================================================================

// CalculateHistoricalVaR 과거 수익률 기반 Historical VaR/CVaR 계산
// returns: 일별 수익률 (양수=이익, 음수=손실)
// confidence: 신뢰수준 (0~1, 예: 0.95)
// portfolioValue: 포트폴리오 가치 (금액 환산 기준)
func CalculateHistoricalVaR(returns []float64, confidence, portfolioValue float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("historical VaR: %w", ErrEmptyInput)
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	mean, volatility, skewness, kurtosis := Moments(returns)

	// (1-confidence) 백분위수를 선형 보간으로 추정
	percentile := (1 - confidence) * 100
	varReturn := Percentile(sorted, percentile)
	varValue := math.Abs(varReturn * portfolioValue)
	varPct := math.Abs(varReturn) * 100

	// CVaR: VaR 임계값 이하 수익률의 평균 (tail이 비면 VaR로 대체)
	tail := tailBelow(sorted, varReturn)
	cvarValue := varValue
	cvarPct := varPct
	if len(tail) > 0 {
		cvarReturn := Mean(tail)
		cvarValue = math.Abs(cvarReturn * portfolioValue)
		cvarPct = math.Abs(cvarReturn) * 100
	}

	return &VaRResult{
		Method:            "Historical VaR",
		ConfidenceLevel:   confidence,
		VaRValue:          varValue,
		VaRPercentage:     varPct,
		CVaRValue:         cvarValue,
		CVaRPercentage:    cvarPct,
		ExpectedShortfall: cvarValue,
		PortfolioValue:    portfolioValue,
		CalculationDate:   time.Now(),
		DataPoints:        len(returns),
		Volatility:        volatility,
		Skewness:          skewness,
		Kurtosis:          kurtosis,
		Historical: &HistoricalStats{
			MinReturn:        sorted[0],
			MaxReturn:        sorted[len(sorted)-1],
			MeanReturn:       mean,
			MedianReturn:     Percentile(sorted, 50),
			PercentileUsed:   percentile,
			TailObservations: len(tail),
		},
	}, nil
}
