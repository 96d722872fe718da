package cas_test

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tscache/internal/adapters/cas"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func key(filePath, content string) domain.CacheParams {
	return domain.CacheParams{
		FilePath:      filePath,
		FileContent:   content,
		FileExtension: ".js",
	}
}

func newCodec(t *testing.T, compress bool) *cas.Codec {
	t.Helper()
	codec, err := cas.NewCodec(compress)
	require.NoError(t, err)
	return codec
}

func TestCodec_Address(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, true)

	a := codec.Address(key("/p/a.ts", "let a = 1;"))
	assert.Equal(t, a, codec.Address(key("/p/a.ts", "let a = 1;")), "address must be stable")
	assert.Regexp(t, `^[0-9a-f]{2}/[0-9a-f]{14}\.json$`, a)

	tests := []struct {
		name string
		key  domain.CacheParams
	}{
		{name: "different path", key: key("/p/b.ts", "let a = 1;")},
		{name: "different content", key: key("/p/a.ts", "let a = 2;")},
		{name: "different extension", key: domain.CacheParams{FilePath: "/p/a.ts", FileContent: "let a = 1;", FileExtension: ".mjs"}},
		{name: "separator shift", key: key("/p/a.tslet", " a = 1;")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NotEqual(t, a, codec.Address(tt.key))
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{true, false} {
		codec := newCodec(t, compress)
		k := key("/p/a.ts", "const a: number = 1;")
		value := strings.Repeat("const a = 1;\n", 64)

		data, err := codec.Encode(k, value)
		require.NoError(t, err)

		got, ok, err := codec.Decode(k, data)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, value, got)
	}
}

func TestCodec_ReadsEitherCompression(t *testing.T) {
	t.Parallel()
	k := key("/p/a.ts", "x")

	compressed, err := newCodec(t, true).Encode(k, "out")
	require.NoError(t, err)
	assert.Contains(t, string(compressed), `"compression":"zstd"`)

	got, ok, err := newCodec(t, false).Decode(k, compressed)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "out", got)
}

func TestCodec_DecodeMismatchIsMiss(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, true)

	data, err := codec.Encode(key("/p/a.ts", "one"), "out")
	require.NoError(t, err)

	_, ok, err := codec.Decode(key("/p/a.ts", "two"), data)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = codec.Decode(key("/p/b.ts", "one"), data)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodec_DecodeCorrupt(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, true)

	_, _, err := codec.Decode(key("/p/a.ts", "x"), []byte("{ invalid json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())

	tests := []struct {
		name string
		data string
	}{
		{name: "unknown compression", data: `{"compression":"lz4"}`},
		{name: "unknown compression with key", data: `{"file_path":"/p/a.ts","file_extension":".js","content_hash":"0","compression":"lz4"}`},
		{name: "missing key fields", data: `{"output":"b3V0"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok, err := codec.Decode(key("/p/a.ts", "x"), []byte(tt.data))
			require.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())
			assert.False(t, ok)
		})
	}
}

func TestDiskStore_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memfs.New()
	store := cas.NewDiskStore(mem)

	_, ok, err := store.Get(ctx, "ab/cdef.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "ab/cdef.json", []byte("blob")))

	got, ok, err := store.Get(ctx, "ab/cdef.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("blob"), got)

	// Entries live below the entries directory and no temp files remain.
	files, err := mem.ReadDir(path.Join("entries", "ab"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cdef.json", files[0].Name())
}

func TestDiskStore_Overwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := cas.NewDiskStore(memfs.New())

	require.NoError(t, store.Put(ctx, "ab/cdef.json", []byte("first")))
	require.NoError(t, store.Put(ctx, "ab/cdef.json", []byte("second")))

	got, ok, err := store.Get(ctx, "ab/cdef.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), got)
}

func TestCache_GetSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := cas.NewCache(newCodec(t, true), cas.NewDiskStore(memfs.New()))

	k := key("/p/a.ts", "let a: number = 1;")
	_, ok, err := c.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, k, "let a = 1;\n"))

	got, ok, err := c.Get(ctx, k)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "let a = 1;\n", got)

	_, ok, err = c.Get(ctx, key("/p/a.ts", "let a: number = 2;"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_CorruptEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memfs.New()
	codec := newCodec(t, true)
	c := cas.NewCache(codec, cas.NewDiskStore(mem))

	k := key("/p/a.ts", "x")
	require.NoError(t, c.Set(ctx, k, "out"))
	require.NoError(t, util.WriteFile(mem, path.Join("entries", codec.Address(k)), []byte("{ invalid json"), 0o600))

	_, _, err := c.Get(ctx, k)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())
}

func TestCache_RemoteHitBackfillsLocal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	codec := newCodec(t, true)
	local := cas.NewDiskStore(memfs.New())
	remote := cas.NewDiskStore(memfs.New())

	k := key("/p/a.ts", "x")
	require.NoError(t, cas.NewCache(codec, remote).Set(ctx, k, "from remote"))

	tiered := cas.NewCache(codec, local, remote)
	got, ok, err := tiered.Get(ctx, k)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from remote", got)

	got, ok, err = cas.NewCache(codec, local).Get(ctx, k)
	require.NoError(t, err)
	assert.True(t, ok, "remote hit should be copied to the local tier")
	assert.Equal(t, "from remote", got)
}

func TestCache_LocalHitSkipsRemote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	codec := newCodec(t, true)
	local := cas.NewDiskStore(memfs.New())
	remote := mocks.NewMockBlobStore(ctrl)

	k := key("/p/a.ts", "x")
	require.NoError(t, cas.NewCache(codec, local).Set(ctx, k, "local"))

	remote.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	got, ok, err := cas.NewCache(codec, local, remote).Get(ctx, k)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "local", got)
}

func TestCache_SetWritesEveryTier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	codec := newCodec(t, false)
	remote := mocks.NewMockBlobStore(ctrl)

	k := key("/p/a.ts", "x")
	remote.EXPECT().Put(gomock.Any(), codec.Address(k), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, cas.NewCache(codec, cas.NewDiskStore(memfs.New()), remote).Set(ctx, k, "out"))
}

func TestCache_RemoteErrorPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockBlobStore(ctrl)
	remote.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("connection reset"))

	_, _, err := cas.NewCache(newCodec(t, true), cas.NewDiskStore(memfs.New()), remote).Get(ctx, key("/p/a.ts", "x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestFactory_Open(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := memfs.New()
	factory := cas.NewFactory(nil).WithFilesystem(func(string) billy.Filesystem { return mem })

	c, err := factory.Open(ctx, "/project/.tscache")
	require.NoError(t, err)

	k := key("/project/a.ts", "x")
	require.NoError(t, c.Set(ctx, k, "out"))

	stats, err := cas.NewInspectorWithFilesystem(func(string) billy.Filesystem { return mem }).Stats("/project/.tscache")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
}

func TestFactory_OpenWithRemote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockRemoteOpener(ctrl)
	remote := mocks.NewMockBlobStore(ctrl)

	cfg := domain.DefaultConfig()
	cfg.Remote = domain.RemoteCacheConfig{Bucket: "builds", Region: "eu-west-1"}

	opener.EXPECT().Open(gomock.Any(), cfg.Remote).Return(remote, nil)
	remote.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	factory := cas.NewFactory(opener).
		WithFilesystem(func(string) billy.Filesystem { return memfs.New() }).
		WithConfig(cfg)

	c, err := factory.Open(ctx, "/project/.tscache")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, key("/project/a.ts", "x"), "out"))
}

func TestFactory_OpenRemoteFails(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockRemoteOpener(ctrl)
	opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, errors.New("no credentials"))

	cfg := domain.DefaultConfig()
	cfg.Remote.Bucket = "builds"

	_, err := cas.NewFactory(opener).
		WithFilesystem(func(string) billy.Filesystem { return memfs.New() }).
		WithConfig(cfg).
		Open(context.Background(), "/project/.tscache")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRemoteCacheFailed.Error())
	assert.ErrorContains(t, err, "no credentials")
}

func TestInspector_StatsAndClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	c, err := cas.NewFactory(nil).Open(ctx, dir)
	require.NoError(t, err)
	for _, content := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, key("/p/x.ts", content), "out "+content))
	}

	inspector := cas.NewInspector()
	stats, err := inspector.Stats(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, stats.Dir)
	assert.Equal(t, 3, stats.Entries)
	assert.Positive(t, stats.Bytes)

	other := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0o600))

	require.NoError(t, inspector.Clear(dir))
	assert.DirExists(t, dir)
	assert.FileExists(t, other)
	assert.NoDirExists(t, filepath.Join(dir, domain.EntriesDirName))

	stats, err = inspector.Stats(dir)
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)

	_, ok, err := c.Get(ctx, key("/p/x.ts", "a"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInspector_MissingFolder(t *testing.T) {
	t.Parallel()
	dir := path.Join(t.TempDir(), "never-created")

	stats, err := cas.NewInspector().Stats(dir)
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)

	require.NoError(t, cas.NewInspector().Clear(dir))
}
