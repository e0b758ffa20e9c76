package sink

import (
	"context"
	"io"
)

// Factory opens the sink chosen for a run. It is selected once at startup.
type Factory func(ctx context.Context) (Sink, error)

// Open opens the sink.
func (f Factory) Open(ctx context.Context) (Sink, error) {
	return f(ctx)
}

// FileFactory opens a FileSink at path.
func FileFactory(path string) Factory {
	return func(context.Context) (Sink, error) {
		return NewFileSink(path)
	}
}

// StreamFactory opens a StreamSink on w.
func StreamFactory(w io.Writer) Factory {
	return func(context.Context) (Sink, error) {
		return NewStreamSink(w), nil
	}
}

// ObjectFactory opens an S3 object sink.
func ObjectFactory(uploader Uploader, bucket, key string) Factory {
	return func(ctx context.Context) (Sink, error) {
		return NewObjectSink(ctx, uploader, bucket, key)
	}
}
