package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haniwa/cfdrisk/internal/risk"
)

// Repository handles risk result persistence
// ⭐ SSOT: 계산 결과 저장/조회는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new result repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveVaRResult 단일 자산 VaR 결과 저장
func (r *Repository) SaveVaRResult(ctx context.Context, runID string, result *risk.VaRResult) error {
	detailsJSON, err := json.Marshal(methodDetails(result))
	if err != nil {
		return fmt.Errorf("failed to marshal method details: %w", err)
	}

	query := `
		INSERT INTO analytics.var_results (
			run_id, method, confidence_level, calculation_date,
			var_value, var_percentage, cvar_value, cvar_percentage,
			portfolio_value, data_points,
			volatility, skewness, kurtosis, details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (run_id) DO UPDATE SET
			var_value = EXCLUDED.var_value,
			var_percentage = EXCLUDED.var_percentage,
			cvar_value = EXCLUDED.cvar_value,
			cvar_percentage = EXCLUDED.cvar_percentage,
			details = EXCLUDED.details
	`

	_, err = r.pool.Exec(ctx, query,
		runID, result.Method, result.ConfidenceLevel, result.CalculationDate,
		result.VaRValue, result.VaRPercentage, result.CVaRValue, result.CVaRPercentage,
		result.PortfolioValue, result.DataPoints,
		result.Volatility, result.Skewness, result.Kurtosis, detailsJSON,
	)

	if err != nil {
		return fmt.Errorf("failed to save var result: %w", err)
	}

	return nil
}

// SavePortfolioResult 포트폴리오 VaR 결과 저장
func (r *Repository) SavePortfolioResult(ctx context.Context, runID string, result *risk.PortfolioVaRResult) error {
	individualJSON, err := json.Marshal(result.IndividualVaRs)
	if err != nil {
		return fmt.Errorf("failed to marshal individual vars: %w", err)
	}

	correlationJSON, err := json.Marshal(result.CorrelationMatrix)
	if err != nil {
		return fmt.Errorf("failed to marshal correlation matrix: %w", err)
	}

	query := `
		INSERT INTO analytics.portfolio_var_results (
			run_id, calculation_date, assets,
			individual_vars, portfolio_var, diversification_benefit,
			correlation_matrix, portfolio_volatility
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id) DO UPDATE SET
			individual_vars = EXCLUDED.individual_vars,
			portfolio_var = EXCLUDED.portfolio_var,
			diversification_benefit = EXCLUDED.diversification_benefit,
			correlation_matrix = EXCLUDED.correlation_matrix,
			portfolio_volatility = EXCLUDED.portfolio_volatility
	`

	_, err = r.pool.Exec(ctx, query,
		runID, result.CalculationDate, result.Assets,
		individualJSON, result.PortfolioVaR, result.DiversificationBenefit,
		correlationJSON, result.PortfolioVolatility,
	)

	if err != nil {
		return fmt.Errorf("failed to save portfolio result: %w", err)
	}

	return nil
}

// SaveValidation Kupiec 검증 결과 저장
func (r *Repository) SaveValidation(ctx context.Context, runID string, result *risk.ValidationResult) error {
	query := `
		INSERT INTO analytics.var_validations (
			run_id, method, confidence_level, validation_date,
			violations, total_observations, violation_rate, expected_violations,
			kupiec_statistic, kupiec_p_value, is_model_valid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (run_id) DO UPDATE SET
			violations = EXCLUDED.violations,
			violation_rate = EXCLUDED.violation_rate,
			kupiec_statistic = EXCLUDED.kupiec_statistic,
			kupiec_p_value = EXCLUDED.kupiec_p_value,
			is_model_valid = EXCLUDED.is_model_valid
	`

	_, err := r.pool.Exec(ctx, query,
		runID, result.Method, result.ConfidenceLevel, result.ValidationDate,
		result.Violations, result.TotalObservations, result.ViolationRate, result.ExpectedViolations,
		result.KupiecStatistic, result.KupiecPValue, result.IsModelValid,
	)

	if err != nil {
		return fmt.Errorf("failed to save validation: %w", err)
	}

	return nil
}

// methodDetails 사용 기법의 상세 통계만 추림 (JSONB 컬럼용)
func methodDetails(result *risk.VaRResult) map[string]interface{} {
	details := make(map[string]interface{})
	if result.Historical != nil {
		details["historical"] = result.Historical
	}
	if result.Parametric != nil {
		details["parametric"] = result.Parametric
	}
	if result.MonteCarlo != nil {
		details["monte_carlo"] = result.MonteCarlo
	}
	if result.Hybrid != nil {
		details["hybrid"] = result.Hybrid
	}
	return details
}
