package util

//*******************************************
// tuples
//*******************************************

type Triple[TA any, TB any, TC any] struct {
	A TA
	B TB
	C TC
}

func MakeTriple[TA any, TB any, TC any](a TA, b TB, c TC) Triple[TA, TB, TC] {
	return Triple[TA, TB, TC]{A: a, B: b, C: c}
}
