package risk

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Portfolio VaR (상관 고려)
// =============================================================================

// CalculatePortfolioVaR 다자산 포트폴리오 VaR 계산
// assetReturns: 자산별 수익률 시계열, weights: 자산별 비중 (합=1 권장, 강제 안 함)
// base: MethodHistorical 또는 그 외(Parametric normal로 처리)
//
// 자산 순서는 식별자 정렬 순으로 고정되어 상관행렬 행/열과 일치
func CalculatePortfolioVaR(
	assetReturns map[string][]float64,
	weights map[string]float64,
	confidence float64,
	base Method,
	portfolioValue float64,
) (*PortfolioVaRResult, error) {
	if len(assetReturns) == 0 {
		return nil, fmt.Errorf("portfolio VaR: %w", ErrEmptyPortfolio)
	}

	assets := make([]string, 0, len(assetReturns))
	for asset := range assetReturns {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	// 1. 자산별 개별 VaR (비중 반영 가치 기준)
	individual := make(map[string]float64, len(assets))
	for _, asset := range assets {
		scaled := portfolioValue * weights[asset]
		result, err := calculateBaseVaR(assetReturns[asset], confidence, base, scaled)
		if err != nil {
			return nil, fmt.Errorf("portfolio VaR (%s): %w", asset, err)
		}
		individual[asset] = result.VaRValue
	}

	// 2. 공통 구간으로 절단 후 Pearson 상관행렬
	minLen := -1
	for _, returns := range assetReturns {
		if minLen == -1 || len(returns) < minLen {
			minLen = len(returns)
		}
	}

	corr := correlationMatrix(assets, assetReturns, minLen)

	// 3. 기간별 비중 가중합으로 포트폴리오 수익률 구성
	portfolioReturns := make([]float64, minLen)
	for i := 0; i < minLen; i++ {
		var dayReturn float64
		for _, asset := range assets {
			dayReturn += weights[asset] * assetReturns[asset][i]
		}
		portfolioReturns[i] = dayReturn
	}

	// 4. 전체 가치 기준 포트폴리오 VaR
	portfolioResult, err := calculateBaseVaR(portfolioReturns, confidence, base, portfolioValue)
	if err != nil {
		return nil, fmt.Errorf("portfolio VaR: %w", err)
	}

	// 5. 분산 효과 = 개별 VaR 합 − 포트폴리오 VaR
	var sumIndividual float64
	for _, v := range individual {
		sumIndividual += v
	}

	return &PortfolioVaRResult{
		Assets:                 assets,
		IndividualVaRs:         individual,
		PortfolioVaR:           portfolioResult.VaRValue,
		DiversificationBenefit: sumIndividual - portfolioResult.VaRValue,
		CorrelationMatrix:      corr,
		PortfolioVolatility:    Volatility(portfolioReturns),
		CalculationDate:        time.Now(),
	}, nil
}

// calculateBaseVaR 포트폴리오 집계용 기본 기법 선택
func calculateBaseVaR(returns []float64, confidence float64, base Method, value float64) (*VaRResult, error) {
	if base == MethodHistorical {
		return CalculateHistoricalVaR(returns, confidence, value)
	}
	return CalculateParametricVaR(returns, confidence, DistributionNormal, value)
}

// correlationMatrix 공통 길이 구간의 쌍별 Pearson 상관행렬
// 대각 1 고정, 분산 0인 퇴화 시계열과의 상관은 0으로 처리
func correlationMatrix(assets []string, assetReturns map[string][]float64, minLen int) [][]float64 {
	n := len(assets)
	corr := make([][]float64, n)
	for i := range corr {
		corr[i] = make([]float64, n)
		corr[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := assetReturns[assets[i]][:minLen]
			y := assetReturns[assets[j]][:minLen]
			rho := stat.Correlation(x, y, nil)
			if math.IsNaN(rho) {
				rho = 0
			}
			corr[i][j] = rho
			corr[j][i] = rho
		}
	}
	return corr
}
