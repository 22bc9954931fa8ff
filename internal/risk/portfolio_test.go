package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssetReturns() map[string][]float64 {
	return map[string][]float64{
		"ASSET1": {0.01, -0.02, 0.03, -0.01, 0.02},
		"ASSET2": {-0.01, 0.02, -0.03, 0.01, -0.02},
		"ASSET3": {0.005, -0.01, 0.015, -0.005, 0.01},
	}
}

func TestCalculatePortfolioVaR_Basic(t *testing.T) {
	weights := map[string]float64{"ASSET1": 0.5, "ASSET2": 0.3, "ASSET3": 0.2}

	result, err := CalculatePortfolioVaR(testAssetReturns(), weights, 0.95, MethodParametric, 1_000_000)
	require.NoError(t, err)

	assert.Len(t, result.IndividualVaRs, 3)
	assert.Equal(t, []string{"ASSET1", "ASSET2", "ASSET3"}, result.Assets)
	assert.Greater(t, result.PortfolioVaR, 0.0)
	assert.GreaterOrEqual(t, result.PortfolioVolatility, 0.0)
	assert.Len(t, result.CorrelationMatrix, 3)
}

func TestCalculatePortfolioVaR_CorrelationMatrix(t *testing.T) {
	weights := map[string]float64{"ASSET1": 0.5, "ASSET2": 0.3, "ASSET3": 0.2}

	result, err := CalculatePortfolioVaR(testAssetReturns(), weights, 0.95, MethodHistorical, 1_000_000)
	require.NoError(t, err)

	matrix := result.CorrelationMatrix
	n := len(matrix)
	for i := 0; i < n; i++ {
		require.Len(t, matrix[i], n)
		assert.Equal(t, 1.0, matrix[i][i], "diagonal must be 1")
		for j := 0; j < n; j++ {
			assert.Equal(t, matrix[i][j], matrix[j][i], "matrix must be symmetric")
			assert.GreaterOrEqual(t, matrix[i][j], -1.0-1e-12)
			assert.LessOrEqual(t, matrix[i][j], 1.0+1e-12)
		}
	}

	// ASSET2는 ASSET1의 부호 반전 → 상관 -1
	assert.InDelta(t, -1.0, matrix[0][1], 1e-9)
}

func TestCalculatePortfolioVaR_DiversificationBenefit(t *testing.T) {
	// 완전 역상관 2자산, 동일 비중 → 포트폴리오 수익률 0, 분산 효과 최대
	assetReturns := map[string][]float64{
		"LONG":  {0.02, -0.01, 0.03, -0.02, 0.01},
		"SHORT": {-0.02, 0.01, -0.03, 0.02, -0.01},
	}
	weights := map[string]float64{"LONG": 0.5, "SHORT": 0.5}

	result, err := CalculatePortfolioVaR(assetReturns, weights, 0.95, MethodHistorical, 1_000_000)
	require.NoError(t, err)

	var sumIndividual float64
	for _, v := range result.IndividualVaRs {
		sumIndividual += v
	}

	assert.Less(t, result.PortfolioVaR, sumIndividual)
	assert.Greater(t, result.DiversificationBenefit, 0.0)
}

func TestCalculatePortfolioVaR_UnequalLengths(t *testing.T) {
	// 공통 구간(최단 길이)으로 절단해서 계산
	assetReturns := map[string][]float64{
		"A": {0.01, -0.02, 0.03, -0.01, 0.02, 0.04, -0.03},
		"B": {-0.01, 0.02, -0.03, 0.01},
	}
	weights := map[string]float64{"A": 0.6, "B": 0.4}

	result, err := CalculatePortfolioVaR(assetReturns, weights, 0.95, MethodHistorical, 1_000_000)
	require.NoError(t, err)
	assert.Greater(t, result.PortfolioVaR, 0.0)
}

func TestCalculatePortfolioVaR_EmptyPortfolio(t *testing.T) {
	_, err := CalculatePortfolioVaR(map[string][]float64{}, map[string]float64{}, 0.95, MethodHistorical, 1_000_000)
	assert.ErrorIs(t, err, ErrEmptyPortfolio)
}

func TestCalculatePortfolioVaR_EmptyAssetSeries(t *testing.T) {
	assetReturns := map[string][]float64{
		"A": {0.01, -0.02},
		"B": {},
	}
	weights := map[string]float64{"A": 0.5, "B": 0.5}

	_, err := CalculatePortfolioVaR(assetReturns, weights, 0.95, MethodHistorical, 1_000_000)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
