package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_DedupScenario(t *testing.T) {
	l := New()
	require.NoError(t, l.Add("a"))
	require.NoError(t, l.Add("b"))
	require.NoError(t, l.Add("a"))

	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestAdd_EvictsLeastRecent(t *testing.T) {
	l := New()
	for i := 0; i <= MaxItems; i++ {
		require.NoError(t, l.Add(fmt.Sprintf("note-%d", i)))
	}

	require.Equal(t, MaxItems, l.Size())
	assert.False(t, l.Contains("note-0"), "the first location must be evicted")

	for i := 0; i < MaxItems; i++ {
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("note-%d", MaxItems-i), got)
	}
}

func TestAdd_PromoteKeepsRelativeOrder(t *testing.T) {
	l := New()
	for _, s := range []string{"e", "d", "c", "b", "a"} {
		require.NoError(t, l.Add(s))
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, l.Items())

	require.NoError(t, l.Add("d"))
	assert.Equal(t, []string{"d", "a", "b", "c", "e"}, l.Items())
	assert.Equal(t, 5, l.Size())
}

func TestAdd_PromoteAtCapacityDoesNotEvict(t *testing.T) {
	l := New()
	for i := 0; i < MaxItems; i++ {
		require.NoError(t, l.Add(fmt.Sprintf("n%d", i)))
	}

	require.NoError(t, l.Add("n0"))
	assert.Equal(t, MaxItems, l.Size())
	assert.True(t, l.Contains("n1"), "promoting an entry must not evict another")
	got, _ := l.Get(0)
	assert.Equal(t, "n0", got)
}

func TestAdd_PromoteFrontIsNoop(t *testing.T) {
	l := New()
	require.NoError(t, l.Add("b"))
	require.NoError(t, l.Add("a"))
	require.NoError(t, l.Add("a"))
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestAdd_InvalidArgument(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.Add(""), ErrInvalidArgument)
	assert.ErrorIs(t, l.Add("a\nb"), ErrInvalidArgument)
	assert.Zero(t, l.Size())
}

func TestAdd_LongLocationRoundTrip(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.Add(strings.Repeat("x", MaxLocationLength+1)), ErrInvalidArgument)

	longest := "/" + strings.Repeat("n", MaxLocationLength-1)
	require.NoError(t, l.Add(longest))
	require.NoError(t, l.Add("short.note"))

	path := filepath.Join(t.TempDir(), "recent.txt")
	require.NoError(t, l.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"short.note", longest}, loaded.Items())
}

func TestAdd_LiteralEquality(t *testing.T) {
	l := New()
	require.NoError(t, l.Add("/tmp/a.note"))
	require.NoError(t, l.Add("/tmp/./a.note"))
	assert.Equal(t, 2, l.Size(), "different spellings of a path are different entries")
}

func TestZeroValueList(t *testing.T) {
	var l List
	require.NoError(t, l.Add("x"))
	assert.Equal(t, 1, l.Size())
}

func TestGetRemove(t *testing.T) {
	l := New()
	for _, s := range []string{"c", "b", "a"} {
		require.NoError(t, l.Add(s))
	}

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, l.Remove(1))
	assert.Equal(t, []string{"a", "c"}, l.Items())

	_, err = l.Get(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
}

func TestIndexOf(t *testing.T) {
	l := New()
	require.NoError(t, l.Add("b"))
	require.NoError(t, l.Add("a"))
	assert.Equal(t, 0, l.IndexOf("a"))
	assert.Equal(t, 1, l.IndexOf("b"))
	assert.Equal(t, -1, l.IndexOf("c"))
}

func TestItems_ReturnsCopy(t *testing.T) {
	l := New()
	require.NoError(t, l.Add("a"))
	items := l.Items()
	items[0] = "mutated"
	got, _ := l.Get(0)
	assert.Equal(t, "a", got)
}

func TestLoad_MissingFileCreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "recent")

	l, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, l.Size())

	info, err := os.Stat(path)
	require.NoError(t, err, "missing file must be created")
	assert.Zero(t, info.Size())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")

	l := New()
	for _, s := range []string{"/x/3.note", "/x/2.note", "/x/1.note", "relative/4.note"} {
		require.NoError(t, l.Add(s))
	}
	require.NoError(t, l.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, l.Items(), loaded.Items())
}

func TestSave_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	l := New()
	require.NoError(t, l.Add("b"))
	require.NoError(t, l.Add("a"))
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestSave_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old-entry\n", 20)), 0o600))

	l := New()
	require.NoError(t, l.Add("new"))
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestSave_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	require.NoError(t, New().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "recent")
	assert.Error(t, New().Save(path))
}

func TestLoad_HonorsOnlyFirstMaxItemsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	var b strings.Builder
	for i := 0; i < MaxItems+5; i++ {
		fmt.Fprintf(&b, "n%d\n", i)
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, MaxItems, l.Size())
	first, _ := l.Get(0)
	last, _ := l.Get(MaxItems - 1)
	assert.Equal(t, "n0", first)
	assert.Equal(t, fmt.Sprintf("n%d", MaxItems-1), last)
}

func TestLoad_SkipsBlankAndDuplicateLinesAndCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n\nb\na\nc"), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_BlankLinesCountTowardCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.txt")
	content := "\n\n\n" + strings.Join([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, l.Items())
}
