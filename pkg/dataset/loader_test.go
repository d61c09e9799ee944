package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"islamic-quotes-be/internal/pkg/apperror"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, message)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {}

const smallJSON = `[
  {"id": 2, "text": "Second", "original": "ب", "source": "HR. B", "category": "Adab", "explanation": "e2"},
  {"id": 1, "text": "First", "original": "ا", "source": "HR. A", "category": "Akhlak", "explanation": "e1", "status": "Shahih"}
]`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestLoader_Embedded(t *testing.T) {
	quotes, err := NewLoader(Embedded(), nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 20)

	for i, q := range quotes {
		assert.Equal(t, i+1, q.Id, "catalog order is preserved")
		assert.NotEmpty(t, q.Original)
	}
	assert.Equal(t, "HR. Ibnu Majah no. 224", quotes[0].Source)
	require.NotNil(t, quotes[0].Status)
	assert.Equal(t, "Shahih", *quotes[0].Status)
}

func TestLoader_FileKeepsOrder(t *testing.T) {
	p := writeFile(t, "quotes.json", []byte(smallJSON))

	quotes, err := NewLoader(File(p), nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, 2, quotes[0].Id)
	assert.Equal(t, 1, quotes[1].Id)
	assert.Nil(t, quotes[0].Status)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(File(filepath.Join(t.TempDir(), "absent.json")), nil).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrDataUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_MalformedJSON(t *testing.T) {
	p := writeFile(t, "quotes.json", []byte(`[{"id": 1,`))

	_, err := NewLoader(File(p), nil).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindDataUnavailable, apperror.KindOf(err))
}

func TestLoader_TrailingData(t *testing.T) {
	tests := []struct {
		name string
		file string
		doc  string
	}{
		{"json garbage after array", "quotes.json", `[{"id": 1, "text": "t"}] }}} not json`},
		{"json second value", "quotes.json", `[{"id": 1}] [{"id": 2}]`},
		{"yaml second document", "quotes.yaml", "- id: 1\n  text: t\n---\n- id: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, tt.file, []byte(tt.doc))

			quotes, err := NewLoader(File(p), nil).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, quotes)
			assert.Equal(t, apperror.KindDataUnavailable, apperror.KindOf(err))
			assert.Contains(t, err.Error(), "trailing data")
		})
	}
}

func TestLoader_TrailingWhitespaceIsFine(t *testing.T) {
	p := writeFile(t, "quotes.json", []byte(smallJSON+"\n\n  "))

	quotes, err := NewLoader(File(p), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
}

func TestLoader_GzipAndZstd(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(smallJSON))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll([]byte(smallJSON), nil)
	require.NoError(t, enc.Close())

	for name, data := range map[string][]byte{
		"quotes.json.gz":  gz.Bytes(),
		"quotes.json.zst": zst,
	} {
		t.Run(name, func(t *testing.T) {
			quotes, err := NewLoader(File(writeFile(t, name, data)), nil).Load(context.Background())
			require.NoError(t, err)
			require.Len(t, quotes, 2)
			assert.Equal(t, "Second", quotes[0].Text)
		})
	}
}

func TestLoader_YAMLWithLegacyArabicKey(t *testing.T) {
	doc := `
- id: 7
  text: Seventh
  arabic: "ز"
  source: HR. Z
  category: Mengajar
  explanation: e7
`
	quotes, err := NewLoader(File(writeFile(t, "quotes.yaml", []byte(doc))), nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 7, quotes[0].Id)
	assert.Equal(t, "ز", quotes[0].Original)
}

func TestLoader_KeepsMalformedAndDuplicateEntries(t *testing.T) {
	doc := `[
	  {"id": 1, "text": "", "original": "ا", "source": "HR. A", "category": "Adab", "explanation": "e"},
	  {"id": 1, "text": "Again", "original": "ا", "source": "HR. A", "category": "Adab", "explanation": "e"}
	]`
	log := &recordingLogger{}

	quotes, err := NewLoader(File(writeFile(t, "quotes.json", []byte(doc))), log).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	assert.Equal(t, "", quotes[0].Text)
	assert.Equal(t, []string{"Malformed quote entry", "Duplicate quote id"}, log.warns)
}

func TestLoader_SourceName(t *testing.T) {
	assert.Equal(t, "quotes.json", NewLoader(Embedded(), nil).SourceName())
	assert.Equal(t, "data.yaml", NewLoader(File("/tmp/x/data.yaml"), nil).SourceName())
}
