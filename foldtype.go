package flasher

import "fmt"

// FoldType classifies an edge of a crease pattern.
type FoldType uint8

// The zero thickness generator only emits FoldHub, FoldMajor and FoldMinor.
// The remaining fold types are reserved for folded-state and thickness work.
const (
	foldUndefined FoldType = iota
	FoldHub
	FoldMajor
	FoldMinor
	FoldMountain
	FoldValley
	FoldNeutral
	FoldDiagonal
	foldEnd
)

var foldNames = [...]string{
	foldUndefined: "undefined",
	FoldHub:       "hub",
	FoldMajor:     "major",
	FoldMinor:     "minor",
	FoldMountain:  "mountain",
	FoldValley:    "valley",
	FoldNeutral:   "neutral",
	FoldDiagonal:  "diagonal",
}

// FoldTypes returns all valid fold types in declaration order.
func FoldTypes() []FoldType {
	ft := make([]FoldType, 0, foldEnd-1)
	for f := foldUndefined + 1; f < foldEnd; f++ {
		ft = append(ft, f)
	}
	return ft
}

// IsValid reports whether f is one of the declared fold types.
func (f FoldType) IsValid() bool { return f > foldUndefined && f < foldEnd }

func (f FoldType) String() string {
	if f >= foldEnd {
		return fmt.Sprintf("FoldType(%d)", uint8(f))
	}
	return foldNames[f]
}

// ParseFoldType returns the fold type named s, i.e. "hub" or "valley".
func ParseFoldType(s string) (FoldType, error) {
	for f := foldUndefined + 1; f < foldEnd; f++ {
		if foldNames[f] == s {
			return f, nil
		}
	}
	return foldUndefined, fmt.Errorf("unknown fold type %q", s)
}
