package vardiff

import "strings"

// WordDiff computes a word-level edit script that turns base into variant.
// Both strings are split on runs of whitespace; the words themselves are
// compared verbatim, with no case folding or normalization. The returned
// tokens read left to right: dropping the Removed tokens yields variant's
// word sequence, dropping the Added tokens yields base's.
//
// The alignment is a longest-common-subsequence over the two word slices,
// O(m·n) in time and space. That is deliberate: inputs are resume bullets
// and paragraph-length summaries, not source files.
func WordDiff(base, variant string) []Token {
	baseWords := strings.Fields(base)
	variantWords := strings.Fields(variant)
	m, n := len(baseWords), len(variantWords)

	if m == 0 && n == 0 {
		return nil
	}

	// dp[i][j] = LCS length of baseWords[:i] and variantWords[:j].
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if baseWords[i-1] == variantWords[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack from the bottom-right corner, collecting tokens in reverse.
	// On a tie we step in the variant direction, which after the reversal
	// puts every removed run ahead of the added run it was replaced by.
	tokens := make([]Token, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && baseWords[i-1] == variantWords[j-1]:
			tokens = append(tokens, Token{Text: baseWords[i-1], Kind: Same})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			tokens = append(tokens, Token{Text: variantWords[j-1], Kind: Added})
			j--
		default:
			tokens = append(tokens, Token{Text: baseWords[i-1], Kind: Removed})
			i--
		}
	}

	for l, r := 0, len(tokens)-1; l < r; l, r = l+1, r-1 {
		tokens[l], tokens[r] = tokens[r], tokens[l]
	}
	return tokens
}
