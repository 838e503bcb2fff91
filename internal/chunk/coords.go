// Package chunk generates fine-grained tile chunks lazily from the macro
// grid: blend with neighboring macro cells, add detail noise, classify,
// erode, trace micro rivers, and place resources. Chunks are cached and
// never regenerated for the lifetime of a generator.
package chunk

// Coords addresses one chunk: the owning macro cell plus a sub-chunk offset.
// The sub-chunk offset participates in seed derivation but stays (0, 0) in
// the current one-chunk-per-macro-cell layout.
type Coords struct {
	MacroX int
	MacroY int
	ChunkX int
	ChunkY int
}

// floorDiv divides rounding toward negative infinity, so that negative
// world coordinates map into the correct chunk.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder matching floorDiv.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
