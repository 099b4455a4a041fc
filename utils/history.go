package utils

const historySize = 5

// History remembers the hashes of recent generations to spot still lifes
// and short cycles.
type History struct {
	hashes []string
}

// Record adds a generation hash and keeps only the most recent ones
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded
// generations, i.e. the board is static or cycling with period <= 3.
// Fewer than three recorded generations is never stagnant.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
