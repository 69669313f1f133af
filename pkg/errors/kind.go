package errors

// Kind は推定器が返すエラーの分類です。
// 学習・予測が失敗する理由はこの4種類で網羅されます。
type Kind int

const (
	// KindUnknown は分類できないエラー（nil を含む）
	KindUnknown Kind = iota
	// KindEmptyInput は目的変数や特徴量が空の場合
	KindEmptyInput
	// KindShapeMismatch は長さ・次元が一致しない場合
	KindShapeMismatch
	// KindInvalidParameter は学習率やエポック数が不正な場合
	KindInvalidParameter
	// KindDegenerateData は分散0などで推定量が定義できない場合
	KindDegenerateData
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindShapeMismatch:
		return "shape_mismatch"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindDegenerateData:
		return "degenerate_data"
	default:
		return "unknown"
	}
}

// KindOf はエラーチェーンを辿って分類を返します。
//
// 例:
//
//	if _, err := linear.LinearRegression(y, X, coeffs, -1, math.MaxInt); err != nil {
//	    switch errors.KindOf(err) {
//	    case errors.KindDegenerateData:
//	        // 定数列を取り除いて再試行する
//	    }
//	}
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if Is(err, ErrEmptyData) {
		return KindEmptyInput
	}
	var dimErr *DimensionError
	if As(err, &dimErr) {
		return KindShapeMismatch
	}
	var valErr *ValidationError
	if As(err, &valErr) {
		return KindInvalidParameter
	}
	var degErr *DegenerateDataError
	if As(err, &degErr) {
		return KindDegenerateData
	}
	return KindUnknown
}
