package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisk(t *testing.T) *localDisk {
	t.Helper()
	return &localDisk{root: t.TempDir(), baseURL: "http://localhost:5000/storage"}
}

func TestLocalDiskPutGetDelete(t *testing.T) {
	d := newTestDisk(t)

	require.NoError(t, d.Put("menu/abc/photo.jpg", []byte("jpeg bytes")))
	assert.True(t, d.Exists("menu/abc/photo.jpg"))

	data, err := d.Get("menu/abc/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	require.NoError(t, d.Delete("menu/abc/photo.jpg"))
	assert.False(t, d.Exists("menu/abc/photo.jpg"))
}

func TestLocalDiskPutStream(t *testing.T) {
	d := newTestDisk(t)

	require.NoError(t, d.PutStream("a/b/c.txt", strings.NewReader("streamed")))

	data, err := d.Get("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "streamed", string(data))
}

func TestLocalDiskDeleteMissingIsNoop(t *testing.T) {
	d := newTestDisk(t)
	assert.NoError(t, d.Delete("never/existed.png"))
}

func TestLocalDiskURL(t *testing.T) {
	d := newTestDisk(t)
	assert.Equal(t, "http://localhost:5000/storage/menu/x.png", d.URL("/menu/x.png"))
}
