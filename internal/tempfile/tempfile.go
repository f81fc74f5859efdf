// Package tempfile manages per-request scratch files for audio payload
// handoff. Every file is uniquely named, owned by a single request, and
// removed through the returned cleanup on every exit path.
package tempfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Write stores data in a uniquely named file under the OS temp directory and
// returns its path together with a cleanup that removes it. Callers must
// defer the cleanup immediately so the file cannot leak on error paths.
func Write(ext string, data []byte) (string, func(), error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("vaani-%s%s", uuid.NewString(), ext))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	cleanup := func() {
		os.Remove(path)
	}
	return path, cleanup, nil
}
