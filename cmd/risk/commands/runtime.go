package commands

import (
	"context"
	"fmt"

	"github.com/haniwa/cfdrisk/internal/report"
	"github.com/haniwa/cfdrisk/internal/risk"
	"github.com/haniwa/cfdrisk/pkg/config"
	"github.com/haniwa/cfdrisk/pkg/database"
	"github.com/haniwa/cfdrisk/pkg/logger"
	"github.com/haniwa/cfdrisk/pkg/redis"
)

// runtime 커맨드 실행에 필요한 공용 의존성 묶음
type runtime struct {
	cfg      *config.Config
	calc     *risk.Calculator
	reporter *report.Reporter

	db  *database.DB
	rdb *redis.Client
}

// initRuntime 설정/로거/계산기/리포터 초기화
// --save가 켜진 경우에만 DB/Redis 연결 시도
func initRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	rt := &runtime{cfg: cfg}
	rt.calc = risk.NewCalculator(cfg.Risk.PortfolioValue, log)

	var repo *report.Repository
	var cache *redis.Cache

	if flagSave {
		if cfg.Database.Enabled() {
			db, err := database.New(ctx, cfg)
			if err != nil {
				return nil, fmt.Errorf("connect to database: %w", err)
			}
			rt.db = db
			repo = report.NewRepository(db.Pool)
		}

		rdb, err := redis.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		rt.rdb = rdb
		if rdb.Enabled() {
			cache = redis.NewCache(rdb, "cfdrisk")
		}
	}

	rt.reporter = report.NewReporter(repo, cache, cfg.Export.Dir, log)
	return rt, nil
}

// close 열린 연결 정리
func (rt *runtime) close() {
	if rt.db != nil {
		rt.db.Close()
	}
	if rt.rdb != nil {
		_ = rt.rdb.Close()
	}
}

// confidence 플래그 우선, 없으면 설정값
func (rt *runtime) confidence() float64 {
	if flagConfidence > 0 {
		return flagConfidence
	}
	return rt.cfg.Risk.Confidence
}
