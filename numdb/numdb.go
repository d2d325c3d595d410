// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package numdb stores numeric text in bbolt and parses it on the way out.
//
// Values are kept exactly as written (decimal, hex, "1e3", ...) and parsed
// into whatever type the reader asks for, so a value that does not fit is
// reported as Overflow or Underflow instead of being truncated.
package numdb

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aerth/str2num"
	"github.com/aerth/str2num/stackerr"
	"go.etcd.io/bbolt"
)

var (
	ErrNotFound = errors.New("numdb: key not found")
	ErrEmptyKey = errors.New("numdb: empty key")
)

// Debug logs every read with its call site.
var Debug = false

type byteslike interface {
	~string | ~[]byte
}

// FetchNumber parses the text stored at key (a path of nested bucket names
// ending with the value key) as T. The whole value must be numeric.
func FetchNumber[T str2num.Number, K byteslike](db *bbolt.DB, bucket string, key ...K) (str2num.Result[T], error) {
	var r str2num.Result[T]
	err := db.View(func(tx *bbolt.Tx) error {
		var err error
		r, err = FetchNumber_Tx[T](tx, bucket, key...)
		return err
	})
	return r, err
}

// FetchNumber_Tx is FetchNumber inside an open transaction.
func FetchNumber_Tx[T str2num.Number, K byteslike](tx *bbolt.Tx, bucket string, key ...K) (str2num.Result[T], error) {
	var r str2num.Result[T]
	text, err := fetchText(tx, bucket, key)
	if err != nil {
		return r, err
	}
	return str2num.Parse[T](text), nil
}

// FetchValue is FetchNumber returning an error for any status but Success.
func FetchValue[T str2num.Number, K byteslike](db *bbolt.DB, bucket string, key ...K) (T, error) {
	r, err := FetchNumber[T](db, bucket, key...)
	if err != nil {
		return r.Value, err
	}
	if !r.OK() {
		return r.Value, stackerr.Errorf("numdb: %s/%s: %w", bucket, keypath(key), r.Err())
	}
	return r.Value, nil
}

func fetchText[K byteslike](tx *bbolt.Tx, bucket string, key []K) ([]byte, error) {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return nil, bbolt.ErrBucketNotFound
	}
	l := len(key)
	if l == 0 || len(key[l-1]) == 0 {
		return nil, stackerr.Wrap(ErrEmptyKey, 1)
	}
	if Debug {
		log.Println(callers(), "numdb: read", bucket, keypath(key))
	}
	for i := 0; i < l-1; i++ {
		bu = bu.Bucket([]byte(key[i]))
		if bu == nil {
			return nil, stackerr.Errorf("numdb: nested bucket %q: %w", string(key[i]), bbolt.ErrBucketNotFound)
		}
	}
	v := bu.Get([]byte(key[l-1]))
	if v == nil {
		return nil, stackerr.Errorf("numdb: %s/%s: %w", bucket, keypath(key), ErrNotFound)
	}
	return v, nil
}

// ForEachNumber parses every value of a bucket as T and calls fn in key
// order. Nested buckets are skipped. fn returning an error stops the walk.
func ForEachNumber[T str2num.Number](db *bbolt.DB, bucket string, fn func(key []byte, r str2num.Result[T]) error) error {
	return db.View(func(tx *bbolt.Tx) error {
		bu := tx.Bucket([]byte(bucket))
		if bu == nil {
			return bbolt.ErrBucketNotFound
		}
		return bu.ForEach(func(k, v []byte) error {
			if v == nil {
				return nil
			}
			return fn(k, str2num.Parse[T](v))
		})
	})
}

// StoreText puts text under key, creating the bucket if needed. The text is
// stored as given; it is not validated.
func StoreText[K byteslike](db *bbolt.DB, bucket string, key K, text string) error {
	return StoreTextNested(db, bucket, []K{key}, text)
}

// StoreTextNested is StoreText with nested buckets, created as needed.
func StoreTextNested[K byteslike](db *bbolt.DB, bucket string, key []K, text string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return StoreTextNested_Tx(tx, bucket, key, text)
	})
}

func StoreTextNested_Tx[K byteslike](tx *bbolt.Tx, bucket string, key []K, text string) error {
	l := len(key)
	if l == 0 || len(key[l-1]) == 0 {
		return stackerr.Wrap(ErrEmptyKey)
	}
	bu, err := tx.CreateBucketIfNotExists([]byte(bucket))
	if err != nil {
		return stackerr.Errorf("numdb: bucket %q: %w", bucket, err)
	}
	for i := 0; i < l-1; i++ {
		bu, err = bu.CreateBucketIfNotExists([]byte(key[i]))
		if err != nil {
			return stackerr.Errorf("numdb: nested bucket %q: %w", string(key[i]), err)
		}
	}
	return bu.Put([]byte(key[l-1]), []byte(text))
}

func keypath[K byteslike](key []K) string {
	parts := make([]string, len(key))
	for i := range key {
		parts[i] = string(key[i])
	}
	return strings.Join(parts, "/")
}

func callers() string {
	var caller string
	for i := 2; i <= 6; i++ {
		_, file, num, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fname := filepath.Base(file)
		if strings.HasPrefix(fname, "asm_") {
			break
		}
		caller += fmt.Sprintf("%s:%d ", fname, num)
	}
	return caller
}
