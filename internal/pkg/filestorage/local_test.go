package filestorage

import (
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyconnect/backend/internal/pkg/apperrors"
)

func fileHeader(size int64, mimeType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", mimeType)
	return &multipart.FileHeader{
		Filename: "notes.pdf",
		Size:     size,
		Header:   h,
	}
}

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		mimeType string
		wantErr  error
	}{
		{name: "pdf accepted", size: 1 << 20, mimeType: "application/pdf"},
		{name: "png accepted", size: 1 << 20, mimeType: "image/png"},
		{name: "docx accepted", size: 1 << 20, mimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{name: "at the size ceiling", size: MaxFileSize, mimeType: "application/pdf"},
		{name: "over the size ceiling", size: MaxFileSize + 1, mimeType: "application/pdf", wantErr: apperrors.ErrFileTooLarge},
		{name: "executable rejected", size: 1 << 20, mimeType: "application/x-msdownload", wantErr: apperrors.ErrUnsupportedFileType},
		{name: "html rejected", size: 1 << 20, mimeType: "text/html", wantErr: apperrors.ErrUnsupportedFileType},
		{name: "missing mime rejected", size: 1 << 20, mimeType: "", wantErr: apperrors.ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUpload(fileHeader(tt.size, tt.mimeType))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full url with subdirectory", input: "http://localhost:8080/uploads/notes/abc.pdf", want: filepath.FromSlash("notes/abc.pdf")},
		{name: "full url without subdirectory", input: "http://localhost:8080/uploads/abc.pdf", want: "abc.pdf"},
		{name: "bare relative path", input: "notes/abc.pdf", want: filepath.FromSlash("notes/abc.pdf")},
		{name: "traversal rejected", input: "/uploads/../etc/passwd", want: ""},
		{name: "empty rejected", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, relativePath(tt.input))
		})
	}
}

func TestGetFullPath(t *testing.T) {
	t.Parallel()

	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	full := ls.GetFullPath("http://localhost:8080/uploads/notes/abc.pdf")
	assert.Equal(t, filepath.Join(ls.basePath, "notes", "abc.pdf"), full)

	assert.Empty(t, ls.GetFullPath("/uploads/../../secret"))
}

func TestDeleteFileMissingIsNoop(t *testing.T) {
	t.Parallel()

	ls, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, ls.DeleteFile("notes/never-existed.pdf"))
	assert.NoError(t, ls.DeleteFile(""))
}
