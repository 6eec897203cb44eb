package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/utils"
)

const (
	// MaxUploadFiles caps the images accepted by a single content request.
	MaxUploadFiles = 10

	// MaxUploadBytes caps each uploaded file, including the career resume.
	MaxUploadBytes int64 = 5 * 1024 * 1024

	// PublicUploadPrefix is the path uploaded files are served under.
	PublicUploadPrefix = "/uploads"
)

// Intake persists multipart uploads into the flat uploads directory and
// produces the public references stored on records. It is constructed once
// and handed to the controllers that accept files.
type Intake struct {
	dir string
}

func NewIntake(dir string) *Intake {
	return &Intake{dir: dir}
}

// SaveAll enforces the count and per-file size caps before writing anything,
// so a rejected request leaves no files behind, then stores every file and
// returns the ordered public references.
func (i *Intake) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	refs := []string{}

	if len(files) > MaxUploadFiles {
		return nil, &errs.UploadError{Reason: fmt.Sprintf("Too many files: at most %d per request.", MaxUploadFiles)}
	}

	for _, fh := range files {
		if err := checkSize(fh); err != nil {
			return nil, err
		}
	}

	for _, fh := range files {
		ref, err := i.save(fh)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

// SaveOne stores a single file and returns its public reference.
func (i *Intake) SaveOne(fh *multipart.FileHeader) (string, error) {
	if err := checkSize(fh); err != nil {
		return "", err
	}

	return i.save(fh)
}

func (i *Intake) save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", &errs.UploadError{Reason: fmt.Sprintf("Could not read uploaded file '%s'.", fh.Filename)}
	}
	defer src.Close() //nolint:errcheck

	name := utils.StoredFilename(fh.Filename)

	dst, err := os.Create(filepath.Join(i.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not create upload file: %w", err)
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("could not write upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s", PublicUploadPrefix, name), nil
}

func checkSize(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadBytes {
		return &errs.UploadError{Reason: fmt.Sprintf("File '%s' exceeds the %d MiB limit.", fh.Filename, MaxUploadBytes/(1024*1024))}
	}

	return nil
}
