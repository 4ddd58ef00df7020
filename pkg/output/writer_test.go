package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/filesystem"
	"github.com/cloudposse/fngen/pkg/schema"
)

func TestWriter_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	writer := NewWriter(nil, &schema.GeneratorSettings{OutputDir: dir})

	code := "def add(a, b):\n    return a + b"
	path, err := writer.Save("adds two numbers", ".py", code)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "adds_two_numbers_complete.py"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, code, string(data))
}

func TestWriter_Defaults(t *testing.T) {
	writer := NewWriter(nil, nil)
	assert.Equal(t, "adds_complete.py", writer.Path("adds", ".py"))

	writer = NewWriter(nil, &schema.GeneratorSettings{FilenameSuffix: "_final", MaxNameLength: 3})
	assert.Equal(t, "add_final.py", writer.Path("adds", ".py"))
}

func TestWriter_SaveWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := filesystem.NewMockFileSystem(ctrl)
	diskErr := errors.New("disk full")

	fs.EXPECT().Stat("out").Return(nil, os.ErrNotExist)
	fs.EXPECT().MkdirAll("out", os.FileMode(dirPerm)).Return(nil)
	fs.EXPECT().WriteFile(filepath.Join("out", "adds_complete.py"), []byte("code"), os.FileMode(filePerm)).Return(diskErr)

	path, err := NewWriter(fs, &schema.GeneratorSettings{OutputDir: "out"}).Save("adds", ".py", "code")
	assert.Empty(t, path)
	assert.ErrorIs(t, err, errUtils.ErrFileWrite)
	assert.ErrorIs(t, err, diskErr)
}

func TestWriter_SaveMkdirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := filesystem.NewMockFileSystem(ctrl)

	fs.EXPECT().Stat("/root-only").Return(nil, os.ErrNotExist)
	fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(os.ErrPermission)

	_, err := NewWriter(fs, &schema.GeneratorSettings{OutputDir: "/root-only"}).Save("adds", ".py", "code")
	assert.ErrorIs(t, err, errUtils.ErrFileWrite)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestWriter_SaveOutputDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	path, err := NewWriter(nil, &schema.GeneratorSettings{OutputDir: file}).Save("adds", ".py", "code")

	assert.Empty(t, path)
	assert.ErrorIs(t, err, errUtils.ErrFileWrite)
	assert.Contains(t, err.Error(), "is not a directory")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
