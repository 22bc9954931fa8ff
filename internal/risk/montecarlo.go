package risk

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// =============================================================================
// Monte Carlo VaR (정규분포 적합 + 시뮬레이션 표본에 Historical 로직 적용)
// =============================================================================

// CalculateMonteCarloVaR 정규분포를 적합해 시뮬레이션한 표본의 Historical VaR 계산
// cfg.Seed가 0이면 시각 기반 시드 사용 (운영), 고정 시드는 회귀 테스트용
// 난수 소스는 호출마다 새로 생성 (공유 전역 생성기 없음 → 동시 호출 안전)
func CalculateMonteCarloVaR(returns []float64, confidence float64, cfg MonteCarloConfig, portfolioValue float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("monte carlo VaR: %w", ErrEmptyInput)
	}

	if cfg.Simulations <= 0 {
		cfg.Simulations = DefaultSimulations
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	mean, volatility, skewness, kurtosis := Moments(returns)

	normal := distuv.Normal{
		Mu:    mean,
		Sigma: volatility,
		Src:   rand.NewSource(seed),
	}

	simulated := make([]float64, cfg.Simulations)
	for i := range simulated {
		simulated[i] = normal.Rand()
	}
	sort.Float64s(simulated)

	percentile := (1 - confidence) * 100
	varReturn := Percentile(simulated, percentile)
	varValue := math.Abs(varReturn * portfolioValue)
	varPct := math.Abs(varReturn) * 100

	tail := tailBelow(simulated, varReturn)
	cvarValue := varValue
	cvarPct := varPct
	if len(tail) > 0 {
		cvarReturn := Mean(tail)
		cvarValue = math.Abs(cvarReturn * portfolioValue)
		cvarPct = math.Abs(cvarReturn) * 100
	}

	return &VaRResult{
		Method:            "Monte Carlo VaR",
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
		MonteCarlo: &MonteCarloStats{
			Simulations:      cfg.Simulations,
			Seed:             seed,
			SimulatedMean:    Mean(simulated),
			SimulatedStd:     Volatility(simulated),
			PercentileUsed:   percentile,
			TailObservations: len(tail),
		},
	}, nil
}

// SampleReturns 데모/테스트용 수익률 생성 (μ=0.1%, σ=2% 정규분포)
func SampleReturns(days int, seed uint64) []float64 {
	if days <= 0 {
		return nil
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	normal := distuv.Normal{
		Mu:    0.001,
		Sigma: 0.02,
		Src:   rand.NewSource(seed),
	}

	returns := make([]float64, days)
	for i := range returns {
		returns[i] = normal.Rand()
	}
	return returns
}
