package risk

import "time"

// =============================================================================
// Method & Distribution Tags
// =============================================================================

// Method VaR 계산 기법
type Method string

const (
	MethodHistorical Method = "historical"
	MethodParametric Method = "parametric"
	MethodMonteCarlo Method = "monte_carlo"
	MethodHybrid     Method = "hybrid"
)

// Distribution 파라메트릭 VaR 분포 가정
// 닫힌 집합: normal / student_t 외에는 ErrUnsupportedDistribution
type Distribution string

const (
	DistributionNormal   Distribution = "normal"
	DistributionStudentT Distribution = "student_t"
)

// VaR 부호 규약
// ⭐ SSOT: VaR/CVaR 금액과 퍼센트는 손실을 양수로 표현
// - VaRValue=41000 → 신뢰수준 내 최대 41,000 손실 가능
const (
	// DefaultPortfolioValue 포트폴리오 가치 기본값
	DefaultPortfolioValue = 1_000_000.0

	// DefaultSimulations Monte Carlo 기본 시뮬레이션 횟수
	DefaultSimulations = 10_000

	// hybridSimulations Hybrid 결합 시 Monte Carlo 축소 횟수
	hybridSimulations = 5_000
)

// =============================================================================
// VaR Result Types
// =============================================================================

// VaRResult 단일 자산 VaR 계산 결과
// 계산 호출마다 새로 생성되는 불변 값 객체
type VaRResult struct {
	Method            string    `json:"method"`
	ConfidenceLevel   float64   `json:"confidence_level"`
	VaRValue          float64   `json:"var_value"`
	VaRPercentage     float64   `json:"var_percentage"`
	CVaRValue         float64   `json:"cvar_value"`
	CVaRPercentage    float64   `json:"cvar_percentage"`
	ExpectedShortfall float64   `json:"expected_shortfall"`
	PortfolioValue    float64   `json:"portfolio_value"`
	CalculationDate   time.Time `json:"calculation_date"`
	DataPoints        int       `json:"data_points"`
	Volatility        float64   `json:"volatility"`
	Skewness          float64   `json:"skewness"`
	Kurtosis          float64   `json:"kurtosis"` // excess kurtosis

	// 기법별 상세 통계 (사용한 기법의 필드만 채워짐)
	Historical *HistoricalStats `json:"historical_stats,omitempty"`
	Parametric *ParametricStats `json:"parametric_stats,omitempty"`
	MonteCarlo *MonteCarloStats `json:"monte_carlo_stats,omitempty"`
	Hybrid     *HybridStats     `json:"hybrid_stats,omitempty"`
}

// HistoricalStats Historical VaR 상세 통계
type HistoricalStats struct {
	MinReturn        float64 `json:"min_return"`
	MaxReturn        float64 `json:"max_return"`
	MeanReturn       float64 `json:"mean_return"`
	MedianReturn     float64 `json:"median_return"`
	PercentileUsed   float64 `json:"percentile_used"`
	TailObservations int     `json:"tail_observations"`
}

// ParametricStats Parametric VaR 상세 통계
type ParametricStats struct {
	Distribution     Distribution `json:"distribution"`
	MeanReturn       float64      `json:"mean_return"`
	ZScore           *float64     `json:"z_score,omitempty"`
	TScore           *float64     `json:"t_score,omitempty"`
	DegreesOfFreedom *int         `json:"degrees_of_freedom,omitempty"`
}

// MonteCarloStats Monte Carlo VaR 상세 통계
type MonteCarloStats struct {
	Simulations      int     `json:"simulations"`
	Seed             uint64  `json:"seed"`
	SimulatedMean    float64 `json:"simulated_mean"`
	SimulatedStd     float64 `json:"simulated_std"`
	PercentileUsed   float64 `json:"percentile_used"`
	TailObservations int     `json:"tail_observations"`
}

// HybridStats Hybrid VaR 상세 통계
type HybridStats struct {
	Weights       map[string]float64 `json:"weights"`
	HistoricalVaR float64            `json:"historical_var"`
	ParametricVaR float64            `json:"parametric_var"`
	MonteCarloVaR float64            `json:"monte_carlo_var"`
	Agreement     MethodAgreement    `json:"method_agreement"`
}

// MethodAgreement 기법 간 합치도 진단 (VaR 금액의 쌍별 절대 차이)
type MethodAgreement struct {
	HistParamDiff float64 `json:"hist_param_diff"`
	HistMCDiff    float64 `json:"hist_mc_diff"`
	ParamMCDiff   float64 `json:"param_mc_diff"`
}

// =============================================================================
// Portfolio Types
// =============================================================================

// PortfolioVaRResult 상관 고려 포트폴리오 VaR 결과
type PortfolioVaRResult struct {
	Assets                 []string           `json:"assets"` // 상관행렬 행/열 순서 (정렬)
	IndividualVaRs         map[string]float64 `json:"individual_vars"`
	PortfolioVaR           float64            `json:"portfolio_var"`
	DiversificationBenefit float64            `json:"diversification_benefit"`
	CorrelationMatrix      [][]float64        `json:"correlation_matrix"`
	PortfolioVolatility    float64            `json:"portfolio_volatility"`
	CalculationDate        time.Time          `json:"calculation_date"`
}

// =============================================================================
// Validation Types
// =============================================================================

// ValidationResult VaR 모델 백테스트 검증 결과 (Kupiec 검정)
type ValidationResult struct {
	Method             string    `json:"method"`
	ConfidenceLevel    float64   `json:"confidence_level"`
	Violations         int       `json:"violations"`
	TotalObservations  int       `json:"total_observations"`
	ViolationRate      float64   `json:"violation_rate"`
	ExpectedViolations int       `json:"expected_violations"`
	KupiecStatistic    float64   `json:"kupiec_statistic"`
	KupiecPValue       float64   `json:"kupiec_p_value"`
	IsModelValid       bool      `json:"is_model_valid"`
	ValidationDate     time.Time `json:"validation_date"`
}

// =============================================================================
// Monte Carlo Config
// =============================================================================

// MonteCarloConfig Monte Carlo 시뮬레이션 설정
// ⭐ SSOT: 재현성을 위해 시드는 호출마다 명시적으로 전달 (전역 난수 공유 금지)
type MonteCarloConfig struct {
	Simulations int    `json:"simulations"` // 시뮬레이션 횟수 (0이면 기본값 10000)
	Seed        uint64 `json:"seed"`        // 재현성용 시드 (0=시각 기반)
}

// DefaultMonteCarloConfig 기본 Monte Carlo 설정
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		Simulations: DefaultSimulations,
		Seed:        0, // 시각 기반
	}
}
