package images

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	putErr      error
	deleteInput *s3.DeleteObjectInput
	deleteErr   error
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = input
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = input
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStore(api s3API) *S3Store {
	return &S3Store{
		api:    api,
		bucket: "images",
		region: "us-east-1",
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

func pngDataURL(payload string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestUploadStoresDecodedImage(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	obj, err := store.Upload(context.Background(), pngDataURL("fake image bytes"))
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}
	if fake.putInput == nil {
		t.Fatal("expected PutObject to be called")
	}
	if got := *fake.putInput.Bucket; got != "images" {
		t.Fatalf("unexpected bucket %q", got)
	}
	if got := *fake.putInput.ContentType; got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.HasPrefix(obj.Key, "products/") || !strings.HasSuffix(obj.Key, ".png") {
		t.Fatalf("unexpected key %q", obj.Key)
	}
	if obj.URL != "https://images.s3.us-east-1.amazonaws.com/"+obj.Key {
		t.Fatalf("unexpected url %q", obj.URL)
	}

	body, err := io.ReadAll(fake.putInput.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != "fake image bytes" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestUploadUsesEndpointURL(t *testing.T) {
	store := newTestStore(&fakeS3{})
	store.endpoint = "http://localhost:9000"

	obj, err := store.Upload(context.Background(), pngDataURL("x"))
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}
	if !strings.HasPrefix(obj.URL, "http://localhost:9000/images/products/") {
		t.Fatalf("unexpected url %q", obj.URL)
	}
}

func TestUploadRejectsBadPayloads(t *testing.T) {
	store := newTestStore(&fakeS3{})

	cases := map[string]string{
		"no prefix":        "image/png;base64,AAAA",
		"no payload":       "data:image/png;base64",
		"not base64 flag":  "data:image/png;quoted,AAAA",
		"unsupported type": "data:application/pdf;base64,AAAA",
		"bad encoding":     "data:image/png;base64,!!!",
		"empty image":      "data:image/png;base64,",
	}
	for name, payload := range cases {
		if _, err := store.Upload(context.Background(), payload); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("%s: expected ErrInvalidImage, got %v", name, err)
		}
	}
}

func TestUploadPropagatesPutError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("denied")}
	store := newTestStore(fake)

	if _, err := store.Upload(context.Background(), pngDataURL("x")); err == nil {
		t.Fatal("expected put error to surface")
	}
}

func TestDelete(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	if err := store.Delete(context.Background(), "products/abc.png"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if fake.deleteInput == nil || *fake.deleteInput.Key != "products/abc.png" {
		t.Fatalf("unexpected delete input %+v", fake.deleteInput)
	}
}

func TestDeleteSkipsEmptyKey(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	if err := store.Delete(context.Background(), ""); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if fake.deleteInput != nil {
		t.Fatal("expected no DeleteObject call for empty key")
	}
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := NewS3Store(context.Background(), Options{}, logger); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}
