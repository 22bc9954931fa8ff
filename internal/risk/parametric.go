package risk

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// =============================================================================
// Parametric VaR (분포 가정 기반 닫힌 해)
// =============================================================================

// CalculateParametricVaR 분포 가정 기반 Parametric VaR/CVaR 계산
// dist: DistributionNormal 또는 DistributionStudentT
//
// 정규분포 CVaR는 해석해, Student-t CVaR는 정확한 tail 기대값 공식:
//
//	ES = μ − σ · f_ν(t_α) · (ν + t_α²) / ((ν−1) · α)
//
// df < 2에서 위 공식이 정의되지 않으면 1.2×|VaR| 근사로 대체
func CalculateParametricVaR(returns []float64, confidence float64, dist Distribution, portfolioValue float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, fmt.Errorf("parametric VaR: %w", ErrEmptyInput)
	}

	mean, volatility, skewness, kurtosis := Moments(returns)
	alpha := 1 - confidence

	stats := &ParametricStats{
		Distribution: dist,
		MeanReturn:   mean,
	}

	var varReturn, cvarReturn float64

	switch dist {
	case DistributionNormal:
		stdNormal := distuv.Normal{Mu: 0, Sigma: 1}
		z := stdNormal.Quantile(alpha)
		varReturn = mean + z*volatility
		// 정규분포 tail 기대값 해석해: μ − σ·φ(z)/α
		cvarReturn = mean - volatility*stdNormal.Prob(z)/alpha
		stats.ZScore = &z

	case DistributionStudentT:
		df := len(returns) - 1
		if df < 1 {
			df = 1
		}
		nu := float64(df)
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}
		tScore := tDist.Quantile(alpha)
		varReturn = mean + tScore*volatility
		if df >= 2 {
			cvarReturn = mean - volatility*tDist.Prob(tScore)*(nu+tScore*tScore)/((nu-1)*alpha)
		} else {
			// ν<2: tail 기대값이 발산하므로 근사값 사용
			cvarReturn = varReturn * 1.2
		}
		stats.TScore = &tScore
		stats.DegreesOfFreedom = &df

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDistribution, dist)
	}

	varValue := math.Abs(varReturn * portfolioValue)
	cvarValue := math.Abs(cvarReturn * portfolioValue)

	return &VaRResult{
		Method:            fmt.Sprintf("Parametric VaR (%s)", dist),
		ConfidenceLevel:   confidence,
		VaRValue:          varValue,
		VaRPercentage:     math.Abs(varReturn) * 100,
		CVaRValue:         cvarValue,
		CVaRPercentage:    math.Abs(cvarReturn) * 100,
		ExpectedShortfall: cvarValue,
		PortfolioValue:    portfolioValue,
		CalculationDate:   time.Now(),
		DataPoints:        len(returns),
		Volatility:        volatility,
		Skewness:          skewness,
		Kurtosis:          kurtosis,
		Parametric:        stats,
	}, nil
}
