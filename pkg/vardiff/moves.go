package vardiff

// Moves reports which bullet ids changed position between two orderings.
// For every id in variant whose zero-based index differs from its index in
// base, the result maps the id to its ORIGINAL 1-based rank. Ids new to the
// variant and ids whose position is unchanged produce no entry; ids removed
// from the variant can never appear.
//
// Ids must be unique within each slice. The result is unspecified when they
// are not.
func Moves(base, variant []string) map[string]int {
	baseIndex := make(map[string]int, len(base))
	for i, id := range base {
		baseIndex[id] = i
	}

	moves := make(map[string]int)
	for vi, id := range variant {
		bi, ok := baseIndex[id]
		if !ok || bi == vi {
			continue
		}
		moves[id] = bi + 1
	}
	return moves
}
