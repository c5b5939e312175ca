package yamlcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gveselov/morfa"
	"github.com/stretchr/testify/assert"
)

func writeCatalog(t *testing.T, content string) string {
	filePath := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	return filePath
}

func TestOpen(t *testing.T) {
	catalog, err := Open(writeCatalog(t, `
language: ukrainian
constructs:
  - id: vocative
    anchor:
      pos: [NOUN, PROPN]
      case: vocative
case_aliases:
  voc: vocative
  vocative: vocative
`))

	if assert.NoError(t, err) {
		assert.Equal(t, "ukrainian", catalog.Language)
		assert.Equal(t, []string{"vocative"}, catalog.Features())
		assert.Equal(t, "vocative", catalog.CanonicalCase("Voc"))
	}
}

func TestOpenRejectsInvalidCatalog(t *testing.T) {
	_, err := Open(writeCatalog(t, `
language: ukrainian
constructs:
  - id: vocative
    anchor:
      feats:
        Crease: Voc
`))

	var configErr *morfa.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
