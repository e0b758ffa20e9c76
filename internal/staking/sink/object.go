package sink

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
)

// objectWriter pipes writes into a multipart S3 upload running in the
// background.
type objectWriter struct {
	writer  *io.PipeWriter
	errChan chan error
}

var _ io.WriteCloser = (*objectWriter)(nil)

func newObjectWriter(ctx context.Context, uploader Uploader, input *s3manager.UploadInput) *objectWriter {
	reader, writer := io.Pipe()

	in := *input
	in.Body = reader

	errChan := make(chan error, 1)
	go func() {
		_, err := uploader.UploadWithContext(ctx, &in)
		// unblock pending writes when the upload stops early
		if err != nil {
			_ = reader.CloseWithError(err)
		} else {
			_ = reader.Close()
		}
		errChan <- err
		close(errChan)
	}()

	return &objectWriter{writer: writer, errChan: errChan}
}

func (w *objectWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	if err != nil {
		return n, fmt.Errorf("upload exited: %w", err)
	}
	return n, nil
}

// Close ends the stream and waits for the upload to finish.
func (w *objectWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		return err
	}
	return <-w.errChan
}

// NewObjectSink streams rows into the S3 object bucket/key. The object is
// complete once the sink is closed.
func NewObjectSink(ctx context.Context, uploader Uploader, bucket, key string) (Sink, error) {
	destination := fmt.Sprintf("s3://%s/%s", bucket, key)
	if bucket == "" || key == "" {
		return nil, &model.SinkCreationError{Destination: destination, Err: errors.New("bucket and key are required")}
	}
	if uploader == nil {
		return nil, &model.SinkCreationError{Destination: destination, Err: errors.New("uploader is required")}
	}

	w := newObjectWriter(ctx, uploader, &s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String("text/csv"),
	})
	return newCSVSink(w, w, destination), nil
}
