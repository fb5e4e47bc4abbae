package storage

// PrefixUpperBound returns the smallest string greater than every string
// with the given prefix, for range scans over an ordered key column.
// Keys here are ASCII prefixes followed by dates, so bumping the last byte
// is sufficient.
func PrefixUpperBound(prefix string) string {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1])
		}
	}
	return ""
}
