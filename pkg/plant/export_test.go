package plant

// GenerateIDWith exposes the ID generator with an injectable index source
// and validity check.
func GenerateIDWith(n func(int) int, valid func(string) bool) string {
	return generateID(n, valid)
}
