package sink

import "io"

// NewStreamSink writes rows to w, normally standard output. The stream is
// not closed by the sink.
func NewStreamSink(w io.Writer) Sink {
	return newCSVSink(w, nil, "stdout")
}
