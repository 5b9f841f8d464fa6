// Package ioadapter defines the host byte-stream I/O capability the
// evaluator is injected with. Keeping these as two closures, rather
// than letting the evaluator touch os.Stdin/os.Stdout directly,
// follows the pattern of a configuration struct holding injected
// io.Writers, so tests can supply in-memory buffers deterministically.
package ioadapter

import "bytes"

// Adapter bridges Memory key 1 to the host. ReadAll is
// called at most meaningfully once per run — it is expected to drain
// the complete remaining input on first call and return empty slices
// thereafter, consuming all remaining bytes from
// the host input. WriteAll is invoked once per write of key 1.
type Adapter struct {
	ReadAll  func() []byte
	WriteAll func([]byte) error
}

// Buffer builds an Adapter backed by in-memory buffers, for
// deterministic testing. Reads drain
// in from front to back and return nil once exhausted; writes append
// to out.
func Buffer(in []byte, out *bytes.Buffer) Adapter {
	remaining := append([]byte(nil), in...)
	return Adapter{
		ReadAll: func() []byte {
			b := remaining
			remaining = nil
			return b
		},
		WriteAll: func(b []byte) error {
			out.Write(b)
			return nil
		},
	}
}
