package fileutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"adeyosola/bank-wrapped/internal/fileutils"
	"adeyosola/bank-wrapped/internal/parsererror"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	// Just verify neither call panics
	logger := logrus.New()
	fileutils.SetLogger(logger)
	fileutils.SetLogger(nil)
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))

	// A directory is not a file
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestFileSize(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "sized.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("12345"), 0600))

	size, err := fileutils.FileSize(testFile)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = fileutils.FileSize(filepath.Join(tmpDir, "missing.txt"))
	assert.Error(t, err)
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nope")))

	testFile := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")

	assert.NoError(t, fileutils.EnsureDirectoryExists(nested))
	assert.True(t, fileutils.DirectoryExists(nested))

	// Already existing is fine
	assert.NoError(t, fileutils.EnsureDirectoryExists(nested))
}

func TestReadWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "sub", "out.csv")

	assert.NoError(t, fileutils.WriteFile(target, []byte("a,b,c"), 0600))

	data, err := fileutils.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "a,b,c", string(data))

	_, err = fileutils.ReadFile(filepath.Join(tmpDir, "missing.csv"))
	assert.Error(t, err)
}

func TestValidateUpload(t *testing.T) {
	tmpDir := t.TempDir()

	csvFile := filepath.Join(tmpDir, "statement.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte("Date,Amount\n"), 0600))
	assert.NoError(t, fileutils.ValidateUpload(csvFile))

	xlsxFile := filepath.Join(tmpDir, "statement.xlsx")
	require.NoError(t, os.WriteFile(xlsxFile, []byte("stub"), 0600))
	assert.NoError(t, fileutils.ValidateUpload(xlsxFile))

	t.Run("missing file", func(t *testing.T) {
		err := fileutils.ValidateUpload(filepath.Join(tmpDir, "missing.csv"))
		var validationErr *parsererror.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("pdf is recognized but unsupported", func(t *testing.T) {
		pdfFile := filepath.Join(tmpDir, "statement.pdf")
		require.NoError(t, os.WriteFile(pdfFile, []byte("%PDF-1.4"), 0600))

		err := fileutils.ValidateUpload(pdfFile)
		var unsupportedErr *parsererror.UnsupportedFormatError
		require.True(t, errors.As(err, &unsupportedErr))
		assert.Equal(t, "pdf", unsupportedErr.Format)
		assert.Contains(t, unsupportedErr.Hint, "CSV or Excel")
	})

	t.Run("unknown extension", func(t *testing.T) {
		txtFile := filepath.Join(tmpDir, "statement.txt")
		require.NoError(t, os.WriteFile(txtFile, []byte("hello"), 0600))

		err := fileutils.ValidateUpload(txtFile)
		var unsupportedErr *parsererror.UnsupportedFormatError
		require.True(t, errors.As(err, &unsupportedErr))
		assert.Equal(t, "txt", unsupportedErr.Format)
	})

	t.Run("oversized file", func(t *testing.T) {
		bigFile := filepath.Join(tmpDir, "big.csv")
		require.NoError(t, os.WriteFile(bigFile, make([]byte, fileutils.MaxUploadBytes+1), 0600))

		err := fileutils.ValidateUpload(bigFile)
		var validationErr *parsererror.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Reason, "limit")
	})
}

func TestLoadGridCSV(t *testing.T) {
	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "statement.csv")

	// Ragged rows are normal in statement exports
	content := "OPay Statement\nDate,Description,Debit,Credit,Balance\n01 Sep 2024,Transfer,500,,1500\n"
	require.NoError(t, os.WriteFile(csvFile, []byte(content), 0600))

	grid, err := fileutils.LoadGrid(csvFile)
	assert.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"OPay Statement"}, grid[0])
	assert.Equal(t, 5, len(grid[1]))
	assert.Equal(t, "Transfer", grid[2][1])
}

func TestLoadGridRejectsInvalidUpload(t *testing.T) {
	tmpDir := t.TempDir()
	pdfFile := filepath.Join(tmpDir, "statement.pdf")
	require.NoError(t, os.WriteFile(pdfFile, []byte("%PDF-1.4"), 0600))

	_, err := fileutils.LoadGrid(pdfFile)
	assert.Error(t, err)
}
