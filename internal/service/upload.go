package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/lib/storage"
	"github.com/deppfellow/grampanchayat/internal/lib/utils"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// ImageMIMETypes are the image types the bucket accepts.
var ImageMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
}

// DocumentMIMETypes are the document types accepted for announcements.
var DocumentMIMETypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Office files are containers; sniffing may stop at the container type, in
// which case the declared Content-Type decides.
var containerMIMETypes = []string{
	"application/zip",
	"application/x-ole-storage",
	"application/octet-stream",
}

type UploadService struct {
	store  storage.ObjectStore
	limits config.UploadConfig
	logger *zerolog.Logger
}

func NewUploadService(s *server.Server) *UploadService {
	limits := config.DefaultUploadConfig()
	if s.Config.Upload != nil {
		limits = s.Config.Upload
	}
	return &UploadService{store: s.Storage, limits: *limits, logger: s.Logger}
}

// UploadImage stores an image under category and returns its path and public URL.
func (s *UploadService) UploadImage(ctx context.Context, fh *multipart.FileHeader, category string) (*model.UploadResult, error) {
	return s.upload(ctx, fh, category, "image", s.limits.MaxImageSize, imageType)
}

// UploadDocument stores a pdf, Word or Excel file under category.
func (s *UploadService) UploadDocument(ctx context.Context, fh *multipart.FileHeader, category string) (*model.UploadResult, error) {
	return s.upload(ctx, fh, category, "document", s.limits.MaxDocumentSize, documentType)
}

// typeCheck returns the content type to store, or "" when the file is rejected.
type typeCheck func(detected *mimetype.MIME, declared string) string

func imageType(detected *mimetype.MIME, _ string) string {
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return ""
}

func documentType(detected *mimetype.MIME, declared string) string {
	for m := detected; m != nil; m = m.Parent() {
		for _, allowed := range DocumentMIMETypes {
			if m.Is(allowed) {
				return allowed
			}
		}
	}

	if isContainer(detected) {
		declared = strings.TrimSpace(strings.Split(declared, ";")[0])
		for _, allowed := range DocumentMIMETypes {
			if strings.EqualFold(declared, allowed) {
				return allowed
			}
		}
	}
	return ""
}

func isContainer(m *mimetype.MIME) bool {
	for _, c := range containerMIMETypes {
		if m.Is(c) {
			return true
		}
	}
	return false
}

func (s *UploadService) upload(
	ctx context.Context,
	fh *multipart.FileHeader,
	category, field string,
	maxSize int64,
	check typeCheck,
) (*model.UploadResult, error) {
	if fh == nil {
		return nil, errs.NewBadRequestError(fmt.Sprintf("No %s file provided", field), true, nil, nil, nil)
	}
	if fh.Size > maxSize {
		return nil, errs.NewPayloadTooLargeError(
			fmt.Sprintf("File too large. Maximum size is %d MB", maxSize/(1024*1024)))
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	contentType := check(detected, fh.Header.Get("Content-Type"))
	if contentType == "" {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Invalid file type %s for %s upload", detected.String(), field), true, nil, nil, nil)
	}

	path := storage.ObjectPath(category, fh.Filename)
	url, err := s.store.Upload(ctx, path, file, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("path", path).
		Str("content_type", contentType).
		Int64("size", fh.Size).
		Msg("file uploaded")

	return &model.UploadResult{
		FilePath: path,
		ImageURL: url,
		FileName: fh.Filename,
		FileType: contentType,
		FileSize: utils.FormatKB(fh.Size),
	}, nil
}

// RemoveUploaded deletes an object stored by this service during a request
// that failed afterwards.
func (s *UploadService) RemoveUploaded(ctx context.Context, path string) {
	if err := s.store.Remove(context.WithoutCancel(ctx), path); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to remove orphaned upload")
	}
}
