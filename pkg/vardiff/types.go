// Package vardiff compares two versions of resume text: a base document and
// an edited variant. It produces word-level diff tokens for inline
// highlighting, detects reordered bullets, and scores how far a variant has
// drifted from its base.
package vardiff

import "fmt"

// Kind classifies a diff token.
type Kind int

const (
	// Same marks a word present in both base and variant.
	Same Kind = iota
	// Added marks a word present only in the variant.
	Added
	// Removed marks a word present only in the base.
	Removed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Same:
		return "same"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so tokens serialize with
// their kind name rather than a bare integer.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "same":
		*k = Same
	case "added":
		*k = Added
	case "removed":
		*k = Removed
	default:
		return fmt.Errorf("unknown diff kind %q", text)
	}
	return nil
}

// Token is one word of diff output.
type Token struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}
