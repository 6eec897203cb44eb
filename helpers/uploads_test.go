package helpers

import (
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/artihcus-web/website-backend/errs"
	"github.com/stretchr/testify/require"
)

func TestIntakeSaveAll_StoresFilesAndReturnsOrderedRefs(t *testing.T) {
	dir := t.TempDir()
	intake := NewIntake(dir)

	files := []*multipart.FileHeader{
		newFileHeader(t, "images", "first image.png", 128),
		newFileHeader(t, "images", "second.png", 256),
	}

	refs, err := intake.SaveAll(files)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	require.True(t, strings.HasPrefix(refs[0], "/uploads/"))
	require.True(t, strings.HasSuffix(refs[0], "-first-image.png"))
	require.True(t, strings.HasSuffix(refs[1], "-second.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestIntakeSaveAll_EmptyInput(t *testing.T) {
	intake := NewIntake(t.TempDir())

	refs, err := intake.SaveAll(nil)
	require.NoError(t, err)
	require.Equal(t, []string{}, refs)
}

func TestIntakeSaveAll_RejectsTooManyFiles(t *testing.T) {
	dir := t.TempDir()
	intake := NewIntake(dir)

	files := make([]*multipart.FileHeader, 0, MaxUploadFiles+1)
	for i := 0; i <= MaxUploadFiles; i++ {
		files = append(files, newFileHeader(t, "images", "img.png", 16))
	}

	_, err := intake.SaveAll(files)

	var uploadErr *errs.UploadError
	require.ErrorAs(t, err, &uploadErr)

	// Nothing may be written on a rejected request.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestIntakeSaveAll_RejectsOversizedFileBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	intake := NewIntake(dir)

	files := []*multipart.FileHeader{
		newFileHeader(t, "images", "ok.png", 64),
		newFileHeader(t, "images", "huge.png", int(MaxUploadBytes)+1),
	}

	_, err := intake.SaveAll(files)

	var uploadErr *errs.UploadError
	require.ErrorAs(t, err, &uploadErr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestIntakeSaveOne(t *testing.T) {
	dir := t.TempDir()
	intake := NewIntake(dir)

	ref, err := intake.SaveOne(newFileHeader(t, "file", "logo file.svg", 32))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "/uploads/"))
	require.NotContains(t, ref, " ")

	_, err = intake.SaveOne(newFileHeader(t, "file", "big.bin", int(MaxUploadBytes)+1))

	var uploadErr *errs.UploadError
	require.ErrorAs(t, err, &uploadErr)
}
