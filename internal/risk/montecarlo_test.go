package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMonteCarloVaR_Basic(t *testing.T) {
	cfg := MonteCarloConfig{Simulations: 1000, Seed: 42}
	result, err := CalculateMonteCarloVaR(sampleReturns(), 0.95, cfg, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, "Monte Carlo VaR", result.Method)
	assert.Greater(t, result.VaRValue, 0.0)
	assert.Greater(t, result.CVaRValue, 0.0)
	assert.GreaterOrEqual(t, result.CVaRValue, result.VaRValue)
	assert.Equal(t, 10, result.DataPoints) // 원본 표본 크기 기준

	require.NotNil(t, result.MonteCarlo)
	assert.Equal(t, 1000, result.MonteCarlo.Simulations)
	assert.Equal(t, uint64(42), result.MonteCarlo.Seed)
	assert.Greater(t, result.MonteCarlo.TailObservations, 0)
}

func TestCalculateMonteCarloVaR_Deterministic(t *testing.T) {
	cfg := MonteCarloConfig{Simulations: 2000, Seed: 7}

	first, err := CalculateMonteCarloVaR(sampleReturns(), 0.95, cfg, 1_000_000)
	require.NoError(t, err)
	second, err := CalculateMonteCarloVaR(sampleReturns(), 0.95, cfg, 1_000_000)
	require.NoError(t, err)

	// 동일 시드 → 동일 결과
	assert.Equal(t, first.VaRValue, second.VaRValue)
	assert.Equal(t, first.CVaRValue, second.CVaRValue)
	assert.Equal(t, first.MonteCarlo.SimulatedMean, second.MonteCarlo.SimulatedMean)
	assert.Equal(t, first.MonteCarlo.SimulatedStd, second.MonteCarlo.SimulatedStd)
}

func TestCalculateMonteCarloVaR_DefaultConfig(t *testing.T) {
	result, err := CalculateMonteCarloVaR(sampleReturns(), 0.95, MonteCarloConfig{}, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, DefaultSimulations, result.MonteCarlo.Simulations)
	assert.NotZero(t, result.MonteCarlo.Seed) // 시각 기반 시드 기록
}

func TestCalculateMonteCarloVaR_SimulatedFit(t *testing.T) {
	cfg := MonteCarloConfig{Simulations: 50_000, Seed: 42}
	result, err := CalculateMonteCarloVaR(sampleReturns(), 0.95, cfg, 1_000_000)
	require.NoError(t, err)

	// 시뮬레이션 표본 적률이 적합한 분포 파라미터에 수렴
	mean, vol, _, _ := Moments(sampleReturns())
	assert.InDelta(t, mean, result.MonteCarlo.SimulatedMean, vol*0.05)
	assert.InDelta(t, vol, result.MonteCarlo.SimulatedStd, vol*0.05)
}

func TestCalculateMonteCarloVaR_EmptyInput(t *testing.T) {
	_, err := CalculateMonteCarloVaR(nil, 0.95, DefaultMonteCarloConfig(), 1_000_000)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSampleReturns(t *testing.T) {
	returns := SampleReturns(252, 42)
	require.Len(t, returns, 252)

	again := SampleReturns(252, 42)
	assert.Equal(t, returns, again)

	assert.Nil(t, SampleReturns(0, 42))
}
