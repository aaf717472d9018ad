package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cardscrape"
	"github.com/fwojciec/cardscrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSetCodes(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON table", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "setcodes.json", `{"Alpha Edition": "ALP", "Beta Edition": "BET"}`)

		codes, err := fs.LoadSetCodes(path)

		require.NoError(t, err)
		assert.Equal(t, cardscrape.SetCodes{"Alpha Edition": "ALP", "Beta Edition": "BET"}, codes)
	})

	t.Run("loads YAML table", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "setcodes.yaml", "Alpha Edition: ALP\n\"Beta Edition\": BET\n")

		codes, err := fs.LoadSetCodes(path)

		require.NoError(t, err)
		assert.Equal(t, cardscrape.SetCodes{"Alpha Edition": "ALP", "Beta Edition": "BET"}, codes)
	})

	t.Run("accepts yml extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "setcodes.YML", "Alpha Edition: ALP\n")

		codes, err := fs.LoadSetCodes(path)

		require.NoError(t, err)
		assert.Equal(t, "ALP", codes["Alpha Edition"])
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadSetCodes(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.Equal(t, cardscrape.EINVALID, cardscrape.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "setcodes.json", `{"Alpha Edition": `)

		_, err := fs.LoadSetCodes(path)

		require.Error(t, err)
		assert.Equal(t, cardscrape.EINVALID, cardscrape.ErrorCode(err))
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "setcodes.csv", "Alpha Edition,ALP\n")

		_, err := fs.LoadSetCodes(path)

		require.Error(t, err)
		assert.Contains(t, cardscrape.ErrorMessage(err), ".csv")
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadSetCodes("")

		assert.Equal(t, cardscrape.EINVALID, cardscrape.ErrorCode(err))
	})
}
