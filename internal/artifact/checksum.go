package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrChecksum indicates an artifact whose digest does not match the manifest.
var ErrChecksum = errors.New("checksum verification failed")

// Manifest maps artifact file names to hex-encoded sha256 digests.
type Manifest map[string]string

// ReadManifest loads a checksums file in `sha256sum` output format.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseChecksums(data), nil
}

// Verify checks data against the entry for name.
func (m Manifest) Verify(name string, data []byte) error {
	expected, ok := m[name]
	if !ok {
		return fmt.Errorf("%w: no checksum for %s", ErrChecksum, name)
	}
	return verifyChecksum(data, expected)
}

func parseChecksums(data []byte) Manifest {
	result := make(Manifest)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		// sha256sum marks binary-mode entries with a leading '*'.
		result[strings.TrimPrefix(parts[1], "*")] = strings.ToLower(parts[0])
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	actual := digest(data)
	if actual != expectedHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

func digest(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
