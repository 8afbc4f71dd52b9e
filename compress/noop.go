package compress

// NoOpCompressor stores payloads as they are.
//
// Both directions return the input slice itself without copying, so the result
// shares memory with the input.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged after checking its length against rawLen.
func (c NoOpCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	return checkRawLen(data, rawLen)
}
