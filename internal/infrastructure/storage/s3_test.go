package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.DeleteObjectOutput)
	return out, args.Error(1)
}

func TestS3Storage_Store(t *testing.T) {
	api := &mockS3{}
	gif := []byte("GIF89a....")
	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return *in.Bucket == "menus" &&
			strings.HasPrefix(*in.Key, "productos/") &&
			strings.HasSuffix(*in.Key, ".gif") &&
			*in.ContentType == "image/gif" &&
			string(body) == string(gif)
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	s := newS3Storage(api, "menus", "https://cdn.example.com/")
	key, err := s.Store(context.Background(), "productos", gif, "gif")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/"+key, s.URL(key))
	api.AssertExpectations(t)
}

func TestS3Storage_StoreError(t *testing.T) {
	api := &mockS3{}
	api.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("503")).Once()

	s := newS3Storage(api, "menus", "https://cdn.example.com")
	_, err := s.Store(context.Background(), "productos", []byte("x"), "png")
	assert.Error(t, err)
}

func TestS3Storage_Delete(t *testing.T) {
	api := &mockS3{}
	api.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return *in.Bucket == "menus" && *in.Key == "productos/a.png"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()

	s := newS3Storage(api, "menus", "https://cdn.example.com")
	require.NoError(t, s.Delete(context.Background(), "/productos/a.png"))
	require.NoError(t, s.Delete(context.Background(), ""), "ruta vacía no llama a S3")
	api.AssertExpectations(t)
}
