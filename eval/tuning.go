package eval

// tunableWeights maps a UCI setoption name to the package variable it
// controls, letting a subset of the pawn-structure and king-safety weights
// be retuned at runtime instead of only at compile time.
var tunableWeights = map[string]*int{
	"DoubledPawnMG":  &doubledPawnMG,
	"DoubledPawnEG":  &doubledPawnEG,
	"IsolatedPawnMG": &isolatedPawnMG,
	"IsolatedPawnEG": &isolatedPawnEG,
	"BackwardPawnMG": &backwardPawnMG,
	"BackwardPawnEG": &backwardPawnEG,

	"MissingShielderMG":      &missingShielderMG,
	"OpenFileNearKingMG":     &openFileNearKingMG,
	"HalfOpenFileNearKingMG": &halfOpenFileNearKingMG,
	"CastledKingBonusMG":     &castledKingBonusMG,
	"ExposedHomeKingMG":      &exposedHomeKingMG,
	"TropismKnightMG":        &tropismKnightMG,
	"TropismBishopMG":        &tropismBishopMG,
	"TropismRookMG":          &tropismRookMG,
	"TropismQueenMG":         &tropismQueenMG,
}

// tunableWeightOrder fixes a stable iteration order for TunableWeightNames,
// since map order is unspecified and "uci" output should be reproducible.
var tunableWeightOrder = []string{
	"DoubledPawnMG", "DoubledPawnEG",
	"IsolatedPawnMG", "IsolatedPawnEG",
	"BackwardPawnMG", "BackwardPawnEG",
	"MissingShielderMG",
	"OpenFileNearKingMG", "HalfOpenFileNearKingMG",
	"CastledKingBonusMG", "ExposedHomeKingMG",
	"TropismKnightMG", "TropismBishopMG", "TropismRookMG", "TropismQueenMG",
}

// TunableWeightNames lists every evaluation weight that can be retuned
// through UCI's setoption command, in a fixed order.
func TunableWeightNames() []string {
	names := make([]string, len(tunableWeightOrder))
	copy(names, tunableWeightOrder)
	return names
}

// TunableWeight returns the current value of the named weight, or 0 if name
// is not a recognized weight.
func TunableWeight(name string) int {
	if p, ok := tunableWeights[name]; ok {
		return *p
	}
	return 0
}

// SetTunableWeight updates the named weight and reports whether name was
// recognized.
func SetTunableWeight(name string, value int) bool {
	p, ok := tunableWeights[name]
	if !ok {
		return false
	}
	*p = value
	return true
}
