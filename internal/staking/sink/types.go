package sink

import (
	"context"

	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Uploader interface {
		UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
	}
)
