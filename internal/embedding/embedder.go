package embedding

// Embedder maps chunk text to a fixed-size vector. Prepare runs once per
// transcript with the full chunk corpus before any Embed call; corpus-free
// implementations may treat it as a no-op. Dimension is only meaningful
// after Prepare.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}
