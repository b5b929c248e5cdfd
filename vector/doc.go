// Package vector aggregates fixed sections into whole compressed vectors.
//
// Appenders accumulate values in 256-element batches and encode each full
// batch as one fixed section appended to a pooled output buffer. All-zero
// batches are emitted as one-byte null sections, so sparse vectors stay
// small. Finish zero-pads the final partial batch and hands back the
// concatenated section bytes — the concatenation of sections IS the vector,
// with no outer envelope.
//
//	appender := vector.NewU64Appender()
//	for _, v := range values {
//	    appender.Append(v)
//	}
//	data, err := appender.Finish()
//
// Reader walks a vector's bytes section by section and exposes lazy value
// iteration:
//
//	reader := vector.NewReader(data)
//	for v := range reader.AllU64() {
//	    // 256 values per section, null sections yield zeros
//	}
package vector
