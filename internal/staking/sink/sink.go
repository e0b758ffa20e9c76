// Package sink writes export records as semicolon-delimited rows to a file,
// a stream or an S3 object.
package sink

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
)

const (
	delimiter  = ';'
	fileLayout = "2006-01-02"
)

// Sink receives the rows of one export.
type Sink interface {
	// Serialize writes one record, preceded by the header on first use.
	Serialize(record model.ExportRecord) error
	// Close writes the header if no row was written and releases the destination.
	Close() error
	// Destination describes where rows go.
	Destination() string
}

// FileName builds the export file name
// {network-id}-{address}-{from-date}-{to-date}-rewards.csv.
func FileName(network model.Network, address string, from, to time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s-rewards.csv",
		network.ID(), address, from.Format(fileLayout), to.Format(fileLayout))
}

// csvSink encodes records to a backing writer. Every row is flushed as soon
// as it is encoded, so a failed export leaves its complete rows behind.
type csvSink struct {
	buffer      bytes.Buffer
	csvWriter   *csv.Writer
	writer      io.Writer
	closer      io.Closer
	destination string

	rows          int
	headerWritten bool
	closed        bool
}

func newCSVSink(writer io.Writer, closer io.Closer, destination string) *csvSink {
	s := &csvSink{writer: writer, closer: closer, destination: destination}
	s.csvWriter = csv.NewWriter(&s.buffer)
	s.csvWriter.Comma = delimiter
	return s
}

func (s *csvSink) Serialize(record model.ExportRecord) error {
	if s.closed {
		return &model.SerializationError{Row: s.rows + 1, Err: fmt.Errorf("%s already closed", s.destination)}
	}
	if err := s.writeHeader(); err != nil {
		return err
	}
	if err := s.write(record.Fields()); err != nil {
		return &model.SerializationError{Row: s.rows + 1, Err: err}
	}
	s.rows++
	return nil
}

func (s *csvSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.writeHeader()
	if s.closer != nil {
		if closeErr := s.closer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.destination, closeErr)
		}
	}
	return err
}

func (s *csvSink) Destination() string {
	return s.destination
}

func (s *csvSink) writeHeader() error {
	if s.headerWritten {
		return nil
	}
	if err := s.write(model.ExportHeader()); err != nil {
		return &model.SerializationError{Row: 0, Err: err}
	}
	s.headerWritten = true
	return nil
}

func (s *csvSink) write(record []string) error {
	s.buffer.Reset()

	if err := s.csvWriter.Write(record); err != nil {
		return err
	}
	s.csvWriter.Flush()
	if err := s.csvWriter.Error(); err != nil {
		return err
	}

	_, err := s.writer.Write(s.buffer.Bytes())
	return err
}
