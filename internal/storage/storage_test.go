package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorviz/internal/model"
)

func newTestStore(t *testing.T, limit int) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "state.json")
	s, err := NewStore(path, limit)
	require.NoError(t, err)
	return s, path
}

func TestNewStoreCreatesFile(t *testing.T) {
	s, path := newTestStore(t, 0)
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, model.VariantNormal, s.Mode())
	assert.Nil(t, s.LastResult())
	assert.Empty(t, s.History())
}

func TestRecordResultBoundsHistory(t *testing.T) {
	s, _ := newTestStore(t, 2)
	for i, name := range []string{"preto", "cinza", "branco"} {
		require.NoError(t, s.RecordResult(model.StoredResult{ID: name, Name: name, CreatedAt: int64(i)}))
	}
	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "cinza", h[0].Name)
	assert.Equal(t, "branco", h[1].Name)
	assert.Equal(t, "branco", s.LastResult().Name)
}

func TestStateSurvivesReopen(t *testing.T) {
	s, path := newTestStore(t, 10)
	require.NoError(t, s.SetMode(model.VariantTritanopia))
	require.NoError(t, s.RecordResult(model.StoredResult{
		ID:      "x",
		Name:    "verde",
		Color:   model.RGB{R: 65, G: 245, B: 135},
		Variant: model.VariantTritanopia,
	}))

	reopened, err := NewStore(path, 10)
	require.NoError(t, err)
	assert.Equal(t, model.VariantTritanopia, reopened.Mode())
	last := reopened.LastResult()
	require.NotNil(t, last)
	assert.Equal(t, model.RGB{R: 65, G: 245, B: 135}, last.Color)
	assert.Equal(t, model.VariantTritanopia, last.Variant)
	assert.Equal(t, "verde", last.Result().Name.String())
}

func TestReopenTrimsHistoryToLimit(t *testing.T) {
	s, path := newTestStore(t, 5)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordResult(model.StoredResult{CreatedAt: int64(i)}))
	}
	reopened, err := NewStore(path, 3)
	require.NoError(t, err)
	h := reopened.History()
	require.Len(t, h, 3)
	assert.Equal(t, int64(2), h[0].CreatedAt)
}

func TestReadersGetCopies(t *testing.T) {
	s, _ := newTestStore(t, 5)
	require.NoError(t, s.RecordResult(model.StoredResult{Name: "roxo"}))
	h := s.History()
	h[0].Name = "mutated"
	last := s.LastResult()
	last.Name = "mutated"
	assert.Equal(t, "roxo", s.History()[0].Name)
	assert.Equal(t, "roxo", s.LastResult().Name)
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewStore("", 1)
	assert.Error(t, err)
}
