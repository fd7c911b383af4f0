package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/util"
	"tower_trivia_backend/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func avatarFileHeader(t *testing.T, filename, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fileHeader, err := req.FormFile("avatar")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return fileHeader
}

func TestUploadAvatarLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()
	svc := NewStorageService(cfg)

	payload := []byte("not really a png")
	url, err := svc.UploadAvatar(context.Background(), avatarFileHeader(t, "me.png", "image/png", payload))
	if err != nil {
		t.Fatalf("upload avatar: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/avatars/") {
		t.Errorf("got url %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url %q should keep the file extension", url)
	}

	stored := filepath.Join(cfg.Storage.LocalPath, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("stored file differs from the upload")
	}
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()
	svc := NewStorageService(cfg)

	_, err := svc.UploadAvatar(context.Background(), avatarFileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	if !errors.Is(err, util.ErrNotImage) {
		t.Fatalf("want ErrNotImage, got %v", err)
	}
}

func TestNewStorageServiceMinioFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageMinio
	cfg.Storage.MinioEndpoint = "not a valid endpoint"
	cfg.Storage.LocalPath = t.TempDir()

	svc := NewStorageService(cfg)
	if _, ok := svc.Provider.(*LocalStorageProvider); !ok {
		t.Fatalf("got provider %T, want the local fallback", svc.Provider)
	}
	if logs.FilterMessage("Minio unavailable, falling back to local storage").Len() != 1 {
		t.Error("fallback warning not logged")
	}
}

func TestUploadAvatarKeysAreUnique(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()
	svc := NewStorageService(cfg)

	first, err := svc.UploadAvatar(context.Background(), avatarFileHeader(t, "me.png", "image/png", []byte("a")))
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := svc.UploadAvatar(context.Background(), avatarFileHeader(t, "me.png", "image/png", []byte("b")))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first == second {
		t.Error("two uploads of the same filename share an object key")
	}
}
