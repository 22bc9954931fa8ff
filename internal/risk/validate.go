package risk

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// =============================================================================
// VaR Model Validation (백테스트 + Kupiec 우도비 검정)
// =============================================================================

// kupiecSignificance 모델 기각 유의수준 (p-value가 이보다 크면 모델 채택)
const kupiecSignificance = 0.05

// ValidateVaRModel 실현 수익률 대비 VaR 추정치의 위반 횟수를 세고
// Kupiec 우도비 검정으로 모델 적합성을 판정
// 위반: returns[i] < -estimates[i] (실현 손실이 예측 VaR 초과)
func ValidateVaRModel(returns, estimates []float64, confidence float64, method string) (*ValidationResult, error) {
	if len(returns) != len(estimates) {
		return nil, fmt.Errorf("%w: returns=%d, estimates=%d",
			ErrLengthMismatch, len(returns), len(estimates))
	}
	if len(returns) == 0 {
		return nil, fmt.Errorf("VaR validation: %w", ErrEmptyInput)
	}

	violations := 0
	for i := range returns {
		if returns[i] < -estimates[i] {
			violations++
		}
	}

	total := len(returns)
	violationRate := float64(violations) / float64(total)
	expectedViolations := int(math.Floor(float64(total) * (1 - confidence)))

	var statistic, pValue float64
	switch {
	case violations == 0:
		// 위반 없음: 정의상 모델 기각 불가
		statistic = 0.0
		pValue = 1.0
	case violationRate > 0 && violationRate < 1:
		pObs := violationRate
		pExp := 1 - confidence
		statistic = 2 * (float64(violations)*math.Log(pObs/pExp) +
			float64(total-violations)*math.Log((1-pObs)/(1-pExp)))
		pValue = 1 - distuv.ChiSquared{K: 1}.CDF(statistic)
	default:
		// 위반율 100%: 로그항이 발산
		statistic = math.Inf(1)
		pValue = 0.0
	}

	return &ValidationResult{
		Method:             method,
		ConfidenceLevel:    confidence,
		Violations:         violations,
		TotalObservations:  total,
		ViolationRate:      violationRate,
		ExpectedViolations: expectedViolations,
		KupiecStatistic:    statistic,
		KupiecPValue:       pValue,
		IsModelValid:       pValue > kupiecSignificance,
		ValidationDate:     time.Now(),
	}, nil
}
