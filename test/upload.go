package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Testdata returns the path of a file in the testdata directory of the repository.
func Testdata(filePath string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "testdata", filePath)
}

// LoadTestFile loads a test file from the testdata directory into a multipart body
// with the file in the "file" field and all fields as additional form values.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, filePath string, fields ...map[string]string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(Testdata(filePath))
	require.NoError(t, err)
	defer file.Close()

	return Upload(t, filepath.Base(filePath), file, fields...)
}

// Upload builds a multipart body with the content in the "file" field, sent with the file name.
func Upload(t *testing.T, fileName string, content io.Reader, fields ...map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for _, f := range fields {
		for key, value := range f {
			require.NoError(t, mw.WriteField(key, value))
		}
	}

	w, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)

	_, err = io.Copy(w, content)
	require.NoError(t, err)

	require.NoError(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
