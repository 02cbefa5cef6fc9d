package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"streetwear/pkg/localstore"

	"github.com/stretchr/testify/assert"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	assert.NoError(t, err)

	type prefs struct {
		Theme    string `json:"theme"`
		Language string `json:"language"`
	}

	in := prefs{Theme: "dark", Language: "tr"}
	assert.NoError(t, store.Put(localstore.KeyTheme, in))

	var out prefs
	assert.NoError(t, store.Get(localstore.KeyTheme, &out))
	assert.Equal(t, in, out)
}

func TestStore_MissingKey(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	assert.NoError(t, err)

	var v map[string]string
	err = store.Get("never_written", &v)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestStore_CorruptValue(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, localstore.KeyCart+".json"), []byte("{not json"), 0o644))

	var v []string
	err = store.Get(localstore.KeyCart, &v)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, localstore.ErrNotFound)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Put(localstore.KeyLanguage, "en"))
	assert.NoError(t, store.Delete(localstore.KeyLanguage))
	assert.NoError(t, store.Delete(localstore.KeyLanguage))

	var v string
	assert.ErrorIs(t, store.Get(localstore.KeyLanguage, &v), localstore.ErrNotFound)
}
