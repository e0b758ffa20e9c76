package sink

import (
	"os"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
)

// NewFileSink creates (or truncates) the file at path. The parent directory
// must exist.
func NewFileSink(path string) (Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &model.SinkCreationError{Destination: path, Err: err}
	}
	return newCSVSink(file, file, path), nil
}
