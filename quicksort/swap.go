package quicksort

// Swap s[i]와 s[j]를 교환
func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}
