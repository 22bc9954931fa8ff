package risk

import "math"

// =============================================================================
// Return Statistics (모집단 적률)
// =============================================================================
// ⭐ SSOT: 모든 기법이 동일한 모집단(population) 적률을 사용
// 표본 보정(n-1)이 아닌 n 분모 규약

// Mean 평균 수익률
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Volatility 모집단 표준편차
func Volatility(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// degenerateVolatility 퇴화 판정 임계값
// 상수 시계열도 부동소수점 누적 오차로 변동성이 정확히 0이 아닐 수 있음
// (예: 0.01 열 개 → ≈1.7e-18). 이하의 변동성은 0으로 취급
const degenerateVolatility = 1e-12

// Moments 평균/변동성/왜도/초과첨도 일괄 계산
// 변동성이 퇴화 수준인 입력에서는 왜도/첨도가 0/0이므로 0으로 클램프
func Moments(values []float64) (mean, volatility, skewness, kurtosis float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = Mean(values)
	volatility = Volatility(values)
	if volatility < degenerateVolatility {
		return mean, 0, 0, 0
	}

	n := float64(len(values))
	var sum3, sum4 float64
	for _, v := range values {
		z := (v - mean) / volatility
		z2 := z * z
		sum3 += z2 * z
		sum4 += z2 * z2
	}

	skewness = sum3 / n
	kurtosis = sum4/n - 3 // excess kurtosis
	return mean, volatility, skewness, kurtosis
}

// Percentile 정렬된 시계열의 백분위수 (선형 보간)
// sorted: 오름차순 정렬 필수, p: 0~100
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	pos := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// tailBelow 정렬된 시계열에서 임계값 이하의 구간을 반환
// sorted 오름차순이므로 앞쪽 prefix가 tail
func tailBelow(sorted []float64, threshold float64) []float64 {
	count := 0
	for count < len(sorted) && sorted[count] <= threshold {
		count++
	}
	return sorted[:count]
}
