package dal

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/doitintl/hello/agent-data-api/metrics"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

const (
	backendS3  = "s3"
	backendGCS = "gcs"
)

// objectCSVOptions skip malformed rows; object storage datasets are exports
// that are never written back.
var objectCSVOptions = tabular.CSVOptions{SkipBadLines: true}

// S3Object reads CSV objects of a bucket on an S3 compatible service. Dataset
// names are object keys.
type S3Object struct {
	client s3iface.S3API
	bucket string
}

func NewS3Object(client s3iface.S3API, bucket string) *S3Object {
	return &S3Object{
		client: client,
		bucket: bucket,
	}
}

func (d *S3Object) Load(ctx context.Context, key string) (t *tabular.Table, err error) {
	defer func() { metrics.ObserveDataset(backendS3, "load", err) }()

	out, err := d.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == s3.ErrCodeNoSuchBucket) {
			return nil, tabular.NotFound("object %s/%s not found", d.bucket, key)
		}

		return nil, tabular.RemoteAccess(err, "could not read object %s/%s", d.bucket, key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not read object %s/%s", d.bucket, key)
	}

	return tabular.ParseCSV(data, objectCSVOptions)
}

// GCSObject reads CSV objects of a Cloud Storage bucket.
type GCSObject struct {
	bucket *storage.BucketHandle
	name   string
}

func NewGCSObject(client *storage.Client, bucket string) *GCSObject {
	return &GCSObject{
		bucket: client.Bucket(bucket),
		name:   bucket,
	}
}

func (d *GCSObject) Load(ctx context.Context, key string) (t *tabular.Table, err error) {
	defer func() { metrics.ObserveDataset(backendGCS, "load", err) }()

	r, err := d.bucket.Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return nil, tabular.NotFound("object %s/%s not found", d.name, key)
	}

	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not read object %s/%s", d.name, key)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not read object %s/%s", d.name, key)
	}

	return tabular.ParseCSV(data, objectCSVOptions)
}
