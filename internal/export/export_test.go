package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"kozytweaks/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	ct, err := content.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := Export(dir, ct, time.Date(2029, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "index.html"),
		filepath.Join(dir, "terms", "index.html"),
		filepath.Join(dir, "privacy", "index.html"),
		filepath.Join(dir, "refund", "index.html"),
		filepath.Join(dir, "404.html"),
	}, written)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "https://lemonstand.com/buy/pro")
	assert.Contains(t, string(index), "© 2029 KozyTweaks")

	for slug, heading := range map[string]string{
		"terms":   "Terms of Service",
		"privacy": "Privacy Policy",
		"refund":  "Refund Policy",
	} {
		b, err := os.ReadFile(filepath.Join(dir, slug, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(b), heading)
	}
}

func TestExportMissingLegalPage(t *testing.T) {
	ct, err := content.Default()
	require.NoError(t, err)

	broken := *ct
	broken.Legal = ct.Legal[:1]

	_, err = Export(t.TempDir(), &broken, time.Now())
	assert.ErrorContains(t, err, `legal page "privacy" not found`)
}

func TestExportUnwritableDir(t *testing.T) {
	ct, err := content.Default()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err = Export(file, ct, time.Now())
	assert.Error(t, err)
}
