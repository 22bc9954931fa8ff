package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHybridVaR_DefaultWeights(t *testing.T) {
	result, err := CalculateHybridVaR(sampleReturns(), 0.95, nil, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, "Hybrid VaR", result.Method)
	assert.Greater(t, result.VaRValue, 0.0)
	assert.Greater(t, result.CVaRValue, 0.0)

	require.NotNil(t, result.Hybrid)
	assert.Equal(t, 0.4, result.Hybrid.Weights[string(MethodHistorical)])
	assert.Equal(t, 0.3, result.Hybrid.Weights[string(MethodParametric)])
	assert.Equal(t, 0.3, result.Hybrid.Weights[string(MethodMonteCarlo)])

	// 결합값 = 보고된 개별 VaR의 가중합
	want := 0.4*result.Hybrid.HistoricalVaR +
		0.3*result.Hybrid.ParametricVaR +
		0.3*result.Hybrid.MonteCarloVaR
	assert.InDelta(t, want, result.VaRValue, 1e-9)
}

func TestCalculateHybridVaR_CustomWeights(t *testing.T) {
	weights := map[string]float64{
		string(MethodHistorical): 0.5,
		string(MethodParametric): 0.3,
		string(MethodMonteCarlo): 0.2,
	}

	result, err := CalculateHybridVaR(sampleReturns(), 0.95, weights, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, weights, result.Hybrid.Weights)

	want := 0.5*result.Hybrid.HistoricalVaR +
		0.3*result.Hybrid.ParametricVaR +
		0.2*result.Hybrid.MonteCarloVaR
	assert.InDelta(t, want, result.VaRValue, 1e-9)
}

func TestCalculateHybridVaR_UnnormalizedWeights(t *testing.T) {
	// 합이 1이 아닌 가중치도 그대로 반영 (호출자 계약)
	weights := map[string]float64{
		string(MethodHistorical): 2.0,
	}

	result, err := CalculateHybridVaR(sampleReturns(), 0.95, weights, 1_000_000)
	require.NoError(t, err)

	assert.InDelta(t, 2.0*result.Hybrid.HistoricalVaR, result.VaRValue, 1e-9)
}

func TestCalculateHybridVaR_Agreement(t *testing.T) {
	result, err := CalculateHybridVaR(sampleReturns(), 0.95, nil, 1_000_000)
	require.NoError(t, err)

	agreement := result.Hybrid.Agreement
	assert.GreaterOrEqual(t, agreement.HistParamDiff, 0.0)
	assert.GreaterOrEqual(t, agreement.HistMCDiff, 0.0)
	assert.GreaterOrEqual(t, agreement.ParamMCDiff, 0.0)
}

func TestCalculateHybridVaR_EmptyInput(t *testing.T) {
	_, err := CalculateHybridVaR(nil, 0.95, nil, 1_000_000)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
