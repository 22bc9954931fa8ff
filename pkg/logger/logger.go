package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/haniwa/cfdrisk/pkg/config"
)

// New 설정 기반 zerolog.Logger 생성
// ⭐ SSOT: 로거 인스턴스는 여기서만 구성
func New(cfg *config.Config) zerolog.Logger {
	var output io.Writer
	if cfg.LogFormat == "console" || cfg.LogFormat == "pretty" {
		// 사람이 읽기 좋은 콘솔 출력
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	} else {
		// JSON 출력 (기본)
		output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.LogLevel))

	return zerolog.New(output).
		With().
		Timestamp().
		Str("env", cfg.Env).
		Logger()
}

// Component 컴포넌트 이름이 붙은 하위 로거 반환
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// parseLevel converts string log level to zerolog.Level
func parseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
