package numdb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aerth/str2num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "num.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStoreAndFetch(t *testing.T) {
	db := openDB(t)
	require.NoError(t, StoreText(db, "limits", "small", "127"))
	require.NoError(t, StoreText(db, "limits", "big", "9999999999"))
	require.NoError(t, StoreText(db, "limits", "neg", "-1"))
	require.NoError(t, StoreText(db, "limits", []byte("pi"), "3.14159"))

	r, err := FetchNumber[int8](db, "limits", "small")
	require.NoError(t, err)
	assert.Equal(t, str2num.Success, r.Status)
	assert.EqualValues(t, 127, r.Value)

	r32, err := FetchNumber[int32](db, "limits", "big")
	require.NoError(t, err)
	assert.Equal(t, str2num.Overflow, r32.Status)

	r64, err := FetchNumber[int64](db, "limits", "big")
	require.NoError(t, err)
	assert.EqualValues(t, 9999999999, r64.Value)

	ru, err := FetchNumber[uint](db, "limits", "neg")
	require.NoError(t, err)
	assert.Equal(t, str2num.Underflow, ru.Status)

	f, err := FetchValue[float64](db, "limits", "pi")
	require.NoError(t, err)
	assert.Equal(t, 3.14159, f)

	_, err = FetchValue[int32](db, "limits", "big")
	assert.ErrorIs(t, err, str2num.ErrOverflow)
}

func TestFetchErrors(t *testing.T) {
	db := openDB(t)
	_, err := FetchNumber[int](db, "missing", "k")
	assert.ErrorIs(t, err, bbolt.ErrBucketNotFound)

	require.NoError(t, StoreText(db, "b", "k", "1"))
	_, err = FetchNumber[int](db, "b", "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FetchNumber[int, string](db, "b")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = FetchNumber[int](db, "b", "")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = FetchNumber[int](db, "b", "sub", "k")
	assert.ErrorIs(t, err, bbolt.ErrBucketNotFound)

	assert.ErrorIs(t, StoreText(db, "b", "", "1"), ErrEmptyKey)
}

func TestNested(t *testing.T) {
	db := openDB(t)
	require.NoError(t, StoreTextNested(db, "hosts", []string{"web1", "port"}, "8080"))
	require.NoError(t, StoreTextNested(db, "hosts", []string{"web1", "mask"}, "0xff"))

	port, err := FetchValue[uint16](db, "hosts", "web1", "port")
	require.NoError(t, err)
	assert.EqualValues(t, 8080, port)

	// stored text is parsed in base 10, the hex marker stops it
	r, err := FetchNumber[int](db, "hosts", "web1", "mask")
	require.NoError(t, err)
	assert.Equal(t, str2num.Inconvertible, r.Status)

	err = db.View(func(tx *bbolt.Tx) error {
		r, err := FetchNumber_Tx[uint8](tx, "hosts", "web1", "port")
		if err != nil {
			return err
		}
		assert.Equal(t, str2num.Overflow, r.Status)
		return nil
	})
	require.NoError(t, err)
}

func TestForEachNumber(t *testing.T) {
	db := openDB(t)
	require.NoError(t, StoreText(db, "b", "a", "1"))
	require.NoError(t, StoreText(db, "b", "b", "x"))
	require.NoError(t, StoreText(db, "b", "c", "300"))
	require.NoError(t, StoreTextNested(db, "b", []string{"sub", "d"}, "4"))

	got := map[string]str2num.Status{}
	err := ForEachNumber(db, "b", func(k []byte, r str2num.Result[uint8]) error {
		got[string(k)] = r.Status
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]str2num.Status{
		"a": str2num.Success,
		"b": str2num.Inconvertible,
		"c": str2num.Overflow,
	}, got)

	stop := errors.New("stop")
	err = ForEachNumber(db, "b", func(k []byte, r str2num.Result[uint8]) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)

	err = ForEachNumber(db, "none", func([]byte, str2num.Result[int]) error { return nil })
	assert.ErrorIs(t, err, bbolt.ErrBucketNotFound)
}
