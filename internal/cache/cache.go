// Package cache persists encoded wasm modules keyed by the digest of the
// source that produced them, so a rebuild with unchanged inputs can skip
// straight to disk. Grounded on the teacher's internal/driver/dcache.go:
// same XDG_CACHE_HOME layout, the same msgpack-encode-to-tempfile-then-
// rename write path, the same schema-version guard on read.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"wasmc/internal/project"
)

// schemaVersion guards against decoding a payload written by an
// incompatible earlier build of wasmc.
const schemaVersion uint16 = 1

// Disk stores one wasm module blob per source digest under
// $XDG_CACHE_HOME/wasmc/mods (or ~/.cache/wasmc/mods).
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Payload is what gets serialized to disk for one compilation.
type Payload struct {
	Schema      uint16
	WordSize    uint8
	MemoryPages uint32
	Wasm        []byte
	Broken      bool
}

// Open initializes the disk cache at its standard location, creating the
// directory tree if necessary.
func Open(app string) (*Disk, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

func (c *Disk) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "mods", hexKey+".mp")
}

// Key derives the cache key from the entry file's digest, every
// declarations file's digest (in the order they were passed to the
// driver), and the options that affect codegen but never touch the AST
// (word size, memory pages) — two builds that differ only in those must
// not collide.
func Key(entryDigest project.Digest, wordSize uint8, memoryPages uint32, declDigests ...project.Digest) project.Digest {
	h := sha256.New()
	_, _ = h.Write(entryDigest[:])
	_, _ = h.Write([]byte{wordSize})
	var pagesBuf [4]byte
	pagesBuf[0] = byte(memoryPages)
	pagesBuf[1] = byte(memoryPages >> 8)
	pagesBuf[2] = byte(memoryPages >> 16)
	pagesBuf[3] = byte(memoryPages >> 24)
	_, _ = h.Write(pagesBuf[:])
	for _, d := range declDigests {
		_, _ = h.Write(d[:])
	}
	var out project.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Put writes payload to disk, replacing any existing entry for key
// atomically via a tempfile rename.
func (c *Disk) Put(key project.Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload stored under key, reporting false (with no error)
// if there is no entry or the entry was written by an incompatible schema.
func (c *Disk) Get(key project.Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll invalidates every cached entry, used after a format change or
// via an explicit CLI flag.
func (c *Disk) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
