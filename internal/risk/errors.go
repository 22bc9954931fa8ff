package risk

import "errors"

// 계산 중단 에러 (부분 결과 없이 즉시 반환)
var (
	// ErrEmptyInput 수익률 시계열이 비어 있음
	ErrEmptyInput = errors.New("empty return series")

	// ErrUnsupportedDistribution normal/student_t 외의 분포 태그
	ErrUnsupportedDistribution = errors.New("unsupported distribution")

	// ErrLengthMismatch 수익률과 VaR 추정치 시계열 길이 불일치
	ErrLengthMismatch = errors.New("returns and VaR estimates length mismatch")

	// ErrEmptyPortfolio 자산이 없는 포트폴리오
	ErrEmptyPortfolio = errors.New("empty portfolio")
)
