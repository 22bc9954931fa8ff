package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Input Parsing Utilities
// 모든 커맨드가 동일한 입력 형식을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

// loadReturns JSON 배열 파일에서 수익률 시계열 로드
// 형식: [0.01, -0.02, 0.005, ...]
func loadReturns(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read returns file: %w", err)
	}

	var returns []float64
	if err := json.Unmarshal(data, &returns); err != nil {
		return nil, fmt.Errorf("parse returns file %s: %w", path, err)
	}

	return returns, nil
}

// loadAssetReturns JSON 객체 파일에서 자산별 수익률 로드
// 형식: {"BTC": [0.01, ...], "ETH": [-0.02, ...]}
func loadAssetReturns(path string) (map[string][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio file: %w", err)
	}

	var assetReturns map[string][]float64
	if err := json.Unmarshal(data, &assetReturns); err != nil {
		return nil, fmt.Errorf("parse portfolio file %s: %w", path, err)
	}

	return assetReturns, nil
}

// parseWeights "BTC=0.5,ETH=0.3,SOL=0.2" 형식 파싱
func parseWeights(spec string) (map[string]float64, error) {
	weights := make(map[string]float64)

	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, val, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight entry %q (expected ASSET=WEIGHT)", pair)
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value %q: %w", val, err)
		}

		weights[strings.TrimSpace(key)] = w
	}

	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights parsed from %q", spec)
	}

	return weights, nil
}
