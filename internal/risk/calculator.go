package risk

import (
	"github.com/rs/zerolog"
)

// =============================================================================
// Calculator - 순수 계산 파사드
// =============================================================================

// Calculator VaR 계산 파사드
// ⭐ SSOT: 포트폴리오 가치 기본값은 여기서만 보관
// 모든 계산은 호출자가 넘긴 불변 입력에 대한 순수 계산이며 내부 상태 변경 없음
// → 동기화 없이 동시 호출 안전
type Calculator struct {
	portfolioValue float64
	log            zerolog.Logger
}

// NewCalculator 새 계산기 생성
// portfolioValue가 0 이하이면 DefaultPortfolioValue(100만) 사용
func NewCalculator(portfolioValue float64, log zerolog.Logger) *Calculator {
	if portfolioValue <= 0 {
		portfolioValue = DefaultPortfolioValue
	}
	return &Calculator{
		portfolioValue: portfolioValue,
		log:            log.With().Str("component", "risk.calculator").Logger(),
	}
}

// PortfolioValue 기본 포트폴리오 가치
func (c *Calculator) PortfolioValue() float64 {
	return c.portfolioValue
}

// value 호출별 가치 결정 (0 이하이면 계산기 기본값)
func (c *Calculator) value(portfolioValue float64) float64 {
	if portfolioValue <= 0 {
		return c.portfolioValue
	}
	return portfolioValue
}

// HistoricalVaR Historical VaR 계산
func (c *Calculator) HistoricalVaR(returns []float64, confidence, portfolioValue float64) (*VaRResult, error) {
	result, err := CalculateHistoricalVaR(returns, confidence, c.value(portfolioValue))
	if err != nil {
		return nil, err
	}
	c.logResult(result)
	return result, nil
}

// ParametricVaR Parametric VaR 계산 (normal / student_t)
func (c *Calculator) ParametricVaR(returns []float64, confidence float64, dist Distribution, portfolioValue float64) (*VaRResult, error) {
	result, err := CalculateParametricVaR(returns, confidence, dist, c.value(portfolioValue))
	if err != nil {
		return nil, err
	}
	c.logResult(result)
	return result, nil
}

// MonteCarloVaR Monte Carlo VaR 계산
func (c *Calculator) MonteCarloVaR(returns []float64, confidence float64, cfg MonteCarloConfig, portfolioValue float64) (*VaRResult, error) {
	result, err := CalculateMonteCarloVaR(returns, confidence, cfg, c.value(portfolioValue))
	if err != nil {
		return nil, err
	}
	c.logResult(result)
	return result, nil
}

// HybridVaR 세 기법 가중 결합 VaR 계산
func (c *Calculator) HybridVaR(returns []float64, confidence float64, weights map[string]float64, portfolioValue float64) (*VaRResult, error) {
	result, err := CalculateHybridVaR(returns, confidence, weights, c.value(portfolioValue))
	if err != nil {
		return nil, err
	}
	c.logResult(result)
	return result, nil
}

// PortfolioVaR 상관 고려 포트폴리오 VaR 계산
func (c *Calculator) PortfolioVaR(
	assetReturns map[string][]float64,
	weights map[string]float64,
	confidence float64,
	base Method,
	portfolioValue float64,
) (*PortfolioVaRResult, error) {
	result, err := CalculatePortfolioVaR(assetReturns, weights, confidence, base, c.value(portfolioValue))
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Int("assets", len(result.Assets)).
		Float64("portfolio_var", result.PortfolioVaR).
		Float64("diversification_benefit", result.DiversificationBenefit).
		Msg("portfolio VaR calculated")
	return result, nil
}

// ValidateModel Kupiec 백테스트 검증
func (c *Calculator) ValidateModel(returns, estimates []float64, confidence float64, method string) (*ValidationResult, error) {
	result, err := ValidateVaRModel(returns, estimates, confidence, method)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("method", result.Method).
		Int("violations", result.Violations).
		Float64("kupiec_p_value", result.KupiecPValue).
		Bool("is_model_valid", result.IsModelValid).
		Msg("VaR model validated")
	return result, nil
}

func (c *Calculator) logResult(result *VaRResult) {
	c.log.Debug().
		Str("method", result.Method).
		Float64("confidence", result.ConfidenceLevel).
		Float64("var_value", result.VaRValue).
		Float64("cvar_value", result.CVaRValue).
		Int("data_points", result.DataPoints).
		Msg("VaR calculated")
}
