package helpers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newFileHeader builds a real multipart.FileHeader the way an inbound
// request would, with a payload of the given size.
func newFileHeader(t *testing.T, field, name string, size int) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)

	_, err = io.Copy(fw, bytes.NewReader(bytes.Repeat([]byte{'x'}, size)))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, fh, err := req.FormFile(field)
	require.NoError(t, err)

	return fh
}
