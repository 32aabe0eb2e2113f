package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs the same checks against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.CreateBucket("test"); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		// Idempotent
		if err := backend.CreateBucket("test"); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.Put("missing", []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put into missing bucket: got %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get("missing", []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get from missing bucket: got %v, want ErrBucketNotFound", err)
		}
		err = backend.ForEach("missing", func(k, v []byte) error { return nil })
		if !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEach over missing bucket: got %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket("test")

		key := []byte("key1")
		value := []byte("value1")
		if err := backend.Put("test", key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get("test", key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key
		got, err = backend.Get("test", []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket("test")
		key := []byte("key1")
		backend.Put("test", key, []byte("value1"))

		if err := backend.Delete("test", key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := backend.Get("test", key)
		if got != nil {
			t.Error("Key should not exist after deletion")
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket("test")

		for _, k := range []string{"key3", "key1", "key2"} {
			backend.Put("test", []byte(k), []byte("v-"+k))
		}

		var keys []string
		err = backend.ForEach("test", func(k, v []byte) error {
			if string(v) != "v-"+string(k) {
				t.Errorf("ForEach: key %s = %s, want v-%s", k, v, k)
			}
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		want := []string{"key1", "key2", "key3"}
		if len(keys) != len(want) {
			t.Fatalf("ForEach collected %d items, want %d", len(keys), len(want))
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("ForEach key[%d] = %s, want %s", i, keys[i], want[i])
			}
		}
	})

	t.Run("JSON", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		type testStruct struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}

		backend.CreateBucket("test")

		original := testStruct{Name: "test", Value: 42}
		if err := PutJSON(backend, "test", []byte("key1"), original); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}

		var got testStruct
		found, err := GetJSON(backend, "test", []byte("key1"), &got)
		if err != nil {
			t.Fatalf("GetJSON failed: %v", err)
		}
		if !found || got != original {
			t.Errorf("Got %+v (found=%v), want %+v", got, found, original)
		}

		found, err = GetJSON(backend, "test", []byte("nonexistent"), &got)
		if err != nil || found {
			t.Errorf("GetJSON for missing key: found=%v err=%v, want false, nil", found, err)
		}
	})
}
