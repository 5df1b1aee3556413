// Package fixture stores raw block hex files keyed by height.
package fixture

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-testblocks/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Cache is a directory of block_<height>.hex files. Block data at a height is
// treated as immutable, so an existing file is never rewritten.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the file path for height.
func (c *Cache) Path(height uint64) string {
	return filepath.Join(c.dir, fmt.Sprintf("block_%d.hex", height))
}

// Exists reports whether the fixture for height is already present.
func (c *Cache) Exists(height uint64) (bool, error) {
	_, err := os.Stat(c.Path(height))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %s: %w", model.ErrFilesystem, c.Path(height), err)
	}
}

// Write stores rawHex for height. The file appears under its final name only
// once fully written.
func (c *Cache) Write(height uint64, rawHex string) error {
	if err := os.MkdirAll(c.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create dir %s: %w", model.ErrFilesystem, c.dir, err)
	}

	tmp, err := os.CreateTemp(c.dir, fmt.Sprintf(".block_%d.*.tmp", height))
	if err != nil {
		return fmt.Errorf("%w: create temp file for height %d: %w", model.ErrFilesystem, height, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(rawHex); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write height %d: %w", model.ErrFilesystem, height, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: chmod height %d: %w", model.ErrFilesystem, height, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close height %d: %w", model.ErrFilesystem, height, err)
	}
	if err := os.Rename(tmpName, c.Path(height)); err != nil {
		return fmt.Errorf("%w: rename %s: %w", model.ErrFilesystem, c.Path(height), err)
	}
	return nil
}

// ReadHex returns the stored hex for height.
func (c *Cache) ReadHex(height uint64) (string, error) {
	data, err := os.ReadFile(c.Path(height))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", model.ErrFilesystem, c.Path(height), err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Load decodes the fixture for height into a block.
func (c *Cache) Load(height uint64) (*btcutil.Block, error) {
	rawHex, err := c.ReadHex(height)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("decode hex %s: %w", c.Path(height), err)
	}
	block, err := btcutil.NewBlockFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parse block %s: %w", c.Path(height), err)
	}
	if height <= math.MaxInt32 {
		block.SetHeight(int32(height))
	}
	return block, nil
}
