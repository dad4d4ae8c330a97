package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestSaveSanitizesAndIndexes(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	stored, err := ls.Save(fileHeader(t, "our first dance!!.JPG", "image/jpeg", "jpeg-bytes"), UploadMeta{
		UploaderName: "  Aunt May\x07 ",
		Caption:      "Dancing",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, "our_first_dance__.JPG", stored.FileName)
	assert.True(t, strings.HasSuffix(stored.StoredName, ".jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/"+stored.StoredName, stored.URL)
	assert.Equal(t, int64(len("jpeg-bytes")), stored.FileSize)
	assert.Equal(t, "image/jpeg", stored.MimeType)
	assert.Equal(t, "Aunt May", stored.UploaderName)

	data, err := os.ReadFile(ls.FullPath(stored))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	got, err := ls.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.StoredName, got.StoredName)
}

func TestSaveRejectsNilHeader(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	_, err = ls.Save(nil, UploadMeta{})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestListPaginatesNewestFirst(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		_, err := ls.Save(fileHeader(t, name, "image/png", "png"), UploadMeta{})
		require.NoError(t, err)
	}

	page, total, err := ls.List(validation.Pagination{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "c.png", page[0].FileName)
	assert.Equal(t, "b.png", page[1].FileName)

	page, _, err = ls.List(validation.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a.png", page[0].FileName)

	page, _, err = ls.List(validation.Pagination{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestDeleteRemovesFileAndIndex(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	stored, err := ls.Save(fileHeader(t, "cake.webp", "image/webp", "webp"), UploadMeta{})
	require.NoError(t, err)
	path := ls.FullPath(stored)

	require.NoError(t, ls.Delete(stored.ID))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	_, err = ls.Get(stored.ID)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	require.ErrorIs(t, ls.Delete(stored.ID), apperrors.ErrResourceNotFound)
}
