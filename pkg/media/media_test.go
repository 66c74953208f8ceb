package media_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/media"
)

var pixel = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type MediaTestSuite struct {
	suite.Suite
}

func TestMediaTestSuite(t *testing.T) {
	suite.Run(t, new(MediaTestSuite))
}

func (suite *MediaTestSuite) TestDecodeDataURI() {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pixel)

	image, err := media.DecodeDataURI(uri)
	suite.Require().NoError(err)
	suite.Equal("image/png", image.ContentType)
	suite.Equal(pixel, image.Data)
	suite.True(strings.HasPrefix(image.Key(), "recipes/images/"))
	suite.True(strings.HasSuffix(image.Key(), ".png"))
	suite.NotEqual(image.Key(), image.Key())
}

func (suite *MediaTestSuite) TestDecodeDataURI_Rejects() {
	payload := base64.StdEncoding.EncodeToString(pixel)

	for name, uri := range map[string]string{
		"no comma":       "data:image/png;base64",
		"not a data uri": "http://example.com/a.png," + payload,
		"not base64":     "data:image/png," + payload,
		"unknown type":   "data:text/html;base64," + payload,
		"bad payload":    "data:image/png;base64,!!!",
		"empty":          "data:image/png;base64,",
	} {
		_, err := media.DecodeDataURI(uri)
		suite.ErrorIs(err, media.ErrInvalidImage, name)
	}
}

func (suite *MediaTestSuite) TestLocalStore() {
	ctx := context.Background()
	dir := suite.T().TempDir()
	store := media.NewLocalStore(dir, "/media", zap.NewNop())

	url, err := store.Save(ctx, "recipes/images/a.png", "image/png", pixel)
	suite.Require().NoError(err)
	suite.Equal("/media/recipes/images/a.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "recipes", "images", "a.png"))
	suite.Require().NoError(err)
	suite.Equal(pixel, written)

	suite.Equal("recipes/images/a.png", store.Key(url))
	suite.Empty(store.Key("https://elsewhere.example.com/a.png"))

	suite.Require().NoError(store.Delete(ctx, "recipes/images/a.png"))
	_, err = os.Stat(filepath.Join(dir, "recipes", "images", "a.png"))
	suite.True(errors.Is(err, os.ErrNotExist))

	// deleting twice is fine
	suite.NoError(store.Delete(ctx, "recipes/images/a.png"))
}

func (suite *MediaTestSuite) TestLocalStore_RefusesEscapingKeys() {
	store := media.NewLocalStore(suite.T().TempDir(), "/media/", zap.NewNop())

	_, err := store.Save(context.Background(), "../outside.png", "image/png", pixel)
	suite.Error(err)
}

type fakeObjects struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.puts = append(f.puts, params)
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(params.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func (suite *MediaTestSuite) TestS3Store() {
	ctx := context.Background()
	objects := &fakeObjects{}
	store := media.NewS3StoreWithClient(objects, configs.S3{Bucket: "recipes", Region: "eu-west-1"}, zap.NewNop())

	url, err := store.Save(ctx, "recipes/images/a.png", "image/png", pixel)
	suite.Require().NoError(err)
	suite.Equal("https://recipes.s3.eu-west-1.amazonaws.com/recipes/images/a.png", url)
	suite.Require().Len(objects.puts, 1)
	suite.Equal("recipes", aws.ToString(objects.puts[0].Bucket))
	suite.Equal("image/png", aws.ToString(objects.puts[0].ContentType))
	suite.Equal(pixel, objects.body)

	suite.Equal("recipes/images/a.png", store.Key(url))
	suite.Require().NoError(store.Delete(ctx, store.Key(url)))
	suite.Equal([]string{"recipes/images/a.png"}, objects.deletes)
}

func (suite *MediaTestSuite) TestS3Store_CustomEndpoint() {
	store := media.NewS3StoreWithClient(&fakeObjects{}, configs.S3{Bucket: "recipes", Endpoint: "http://minio.local:9000/"}, zap.NewNop())

	url, err := store.Save(context.Background(), "recipes/images/b.png", "image/png", pixel)
	suite.Require().NoError(err)
	suite.Equal("http://minio.local:9000/recipes/recipes/images/b.png", url)
}

func (suite *MediaTestSuite) TestS3Store_UploadFailure() {
	uploadErr := errors.New("access denied")
	store := media.NewS3StoreWithClient(&fakeObjects{err: uploadErr}, configs.S3{Bucket: "recipes"}, zap.NewNop())

	_, err := store.Save(context.Background(), "recipes/images/c.png", "image/png", pixel)
	suite.ErrorIs(err, uploadErr)
}

func (suite *MediaTestSuite) TestOpen_Local() {
	conf := &configs.Config{Media: configs.Media{Backend: configs.MediaBackendLocal, Directory: suite.T().TempDir(), BaseURL: "/media/"}}

	store, err := media.Open(context.Background(), conf, zap.NewNop())
	suite.Require().NoError(err)
	suite.IsType(&media.LocalStore{}, store)
}

func (suite *MediaTestSuite) TestOpen_UnknownBackend() {
	_, err := media.Open(context.Background(), &configs.Config{Media: configs.Media{Backend: "ftp"}}, zap.NewNop())

	suite.ErrorIs(err, configs.ErrConfiguration)
}
