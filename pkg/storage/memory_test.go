package storage

import "testing"

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, func() (Backend, func(), error) {
		return NewMemoryBackend(), func() {}, nil
	})
}
