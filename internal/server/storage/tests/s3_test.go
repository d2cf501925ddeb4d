package tests

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/storage"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    string
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = in
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_Save(t *testing.T) {
	client := &fakeS3{}
	store := storage.NewS3Store(client, "recipes", "https://cdn.example.com/recipes/")

	err := store.Save(context.Background(), "uploads/recipe/a.png", strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)

	require.Equal(t, "recipes", aws.ToString(client.put.Bucket))
	require.Equal(t, "uploads/recipe/a.png", aws.ToString(client.put.Key))
	require.Equal(t, "image/png", aws.ToString(client.put.ContentType))
	require.Equal(t, int64(3), aws.ToInt64(client.put.ContentLength))
	require.Equal(t, "img", client.body)

	require.Equal(t, "https://cdn.example.com/recipes/uploads/recipe/a.png", store.URL("uploads/recipe/a.png"))
}

func TestS3Store_Delete(t *testing.T) {
	client := &fakeS3{}
	store := storage.NewS3Store(client, "recipes", "")

	require.NoError(t, store.Delete(context.Background(), "uploads/recipe/a.png"))
	require.Equal(t, "uploads/recipe/a.png", aws.ToString(client.deleted.Key))
	require.Equal(t, "/recipes/uploads/recipe/a.png", store.URL("uploads/recipe/a.png"))
}

func TestS3Store_Error(t *testing.T) {
	client := &fakeS3{err: errors.New("boom")}
	store := storage.NewS3Store(client, "recipes", "")

	err := store.Save(context.Background(), "uploads/recipe/a.png", strings.NewReader("img"), 3, "")
	require.ErrorContains(t, err, "boom")
}
