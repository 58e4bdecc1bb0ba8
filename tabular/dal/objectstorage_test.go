package dal

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/agent-data-api/tabular"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string]string
}

func (f *fakeS3) GetObjectWithContext(ctx aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.StringValue(in.Bucket)+"/"+aws.StringValue(in.Key)]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)
	}

	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3ObjectLoad(t *testing.T) {
	client := &fakeS3{objects: map[string]string{
		"registros/RegistrosEni.csv": "Usuario,Minutos,Nota\nana,3,\nluis,4,x,extra\nmar,5,ok\n",
	}}

	store := NewS3Object(client, "registros")

	table, err := store.Load(context.Background(), "RegistrosEni.csv")

	require.NoError(t, err)
	assert.Equal(t, []string{"Usuario", "Minutos", "Nota"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Nil(t, table.Rows[0]["Nota"])
	assert.Equal(t, "mar", table.Rows[1]["Usuario"])

	_, err = store.Load(context.Background(), "otro.csv")
	assert.ErrorIs(t, err, tabular.ErrNotFound)
}
