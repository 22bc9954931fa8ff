package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/haniwa/cfdrisk/internal/risk"
	"github.com/haniwa/cfdrisk/pkg/redis"
)

// =============================================================================
// Reporter
// =============================================================================

// Reporter 계산 결과의 저장/캐시/파일 출력 담당
// 저장 실패는 계산 결과 반환을 막지 않는다 (경고 로그 후 계속)
type Reporter struct {
	repo  *Repository
	cache *redis.Cache
	dir   string
	log   zerolog.Logger
}

// NewReporter 새 리포터 생성
// repo, cache는 nil 허용 (해당 경로 비활성)
func NewReporter(repo *Repository, cache *redis.Cache, exportDir string, log zerolog.Logger) *Reporter {
	return &Reporter{
		repo:  repo,
		cache: cache,
		dir:   exportDir,
		log:   log.With().Str("component", "report.reporter").Logger(),
	}
}

// NewRunID 저장 run 식별자 생성
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// VaR Results
// =============================================================================

// PublishVaR VaR 결과를 DB/캐시에 기록
func (r *Reporter) PublishVaR(ctx context.Context, result *risk.VaRResult) string {
	runID := NewRunID()

	if r.repo != nil {
		if err := r.repo.SaveVaRResult(ctx, runID, result); err != nil {
			r.log.Warn().Err(err).Str("run_id", runID).Msg("failed to persist var result")
		}
	}

	if r.cache != nil {
		key := redis.LatestVaRKey(result.Method, result.ConfidenceLevel)
		if err := r.cache.Set(ctx, key, result, redis.TTLMedium); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("failed to cache var result")
		}
	}

	return runID
}

// PublishPortfolio 포트폴리오 VaR 결과를 DB/캐시에 기록
func (r *Reporter) PublishPortfolio(ctx context.Context, confidence float64, result *risk.PortfolioVaRResult) string {
	runID := NewRunID()

	if r.repo != nil {
		if err := r.repo.SavePortfolioResult(ctx, runID, result); err != nil {
			r.log.Warn().Err(err).Str("run_id", runID).Msg("failed to persist portfolio result")
		}
	}

	if r.cache != nil {
		key := redis.LatestPortfolioKey(confidence)
		if err := r.cache.Set(ctx, key, result, redis.TTLMedium); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("failed to cache portfolio result")
		}
	}

	return runID
}

// PublishValidation 검증 결과를 DB/캐시에 기록
func (r *Reporter) PublishValidation(ctx context.Context, result *risk.ValidationResult) string {
	runID := NewRunID()

	if r.repo != nil {
		if err := r.repo.SaveValidation(ctx, runID, result); err != nil {
			r.log.Warn().Err(err).Str("run_id", runID).Msg("failed to persist validation")
		}
	}

	if r.cache != nil {
		key := redis.ValidationKey(result.Method, result.ConfidenceLevel)
		if err := r.cache.Set(ctx, key, result, redis.TTLDaily); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("failed to cache validation")
		}
	}

	return runID
}

// =============================================================================
// File Export
// =============================================================================

// Export 결과를 내보내기 디렉터리에 JSON 파일로 기록하고 경로 반환
func (r *Reporter) Export(prefix string, v interface{}) (string, error) {
	name := fmt.Sprintf("%s_%s.json", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(r.dir, name)

	if err := WriteJSON(path, v); err != nil {
		return "", err
	}

	r.log.Info().Str("path", path).Msg("result exported")
	return path, nil
}
