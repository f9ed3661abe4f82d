package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestDebugHandler(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	defer db.Close()

	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("room:1:status"), []byte("abc")); err != nil {
			return err
		}
		return txn.Set([]byte("other:key"), []byte("x"))
	}))

	handler := NewDebugHandler(db, nil, "room:")

	t.Run("should list keys under the default prefix", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect", nil))

		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "room:1:status")
		req.Contains(rec.Body.String(), "Size: 3 bytes")
		req.NotContains(rec.Body.String(), "other:key")
	})

	t.Run("should honour the prefix parameter", func(t *testing.T) {
		req := require.New(t)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect?prefix=other:", nil))

		req.Contains(rec.Body.String(), "other:key")
		req.NotContains(rec.Body.String(), "room:1:status")
	})
}
