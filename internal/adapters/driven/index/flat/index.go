// Package flat provides a persisted brute-force vector index.
//
// The corpus is a few hundred chunks, so exact inner-product search
// over a flat array is both simpler and faster than an approximate
// structure. Vectors are unit-normalised by the embedding adapter, so
// the dot product is the cosine similarity. The on-disk artifact
// records the embedding model fingerprint so an index built with one
// model is never served with another.
package flat

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// File format constants. Layout after the magic and version: a
// length-prefixed fingerprint string, dimensions, vector count, then
// per vector a length-prefixed chunk ID and dims*4 bytes of float32s,
// all little-endian.
const (
	fileMagic   = "KVLIDX"
	fileVersion = uint32(1)
)

// Index is a read-only flat vector index loaded from disk. It is
// never mutated after Load, so concurrent Search calls need no
// locking.
type Index struct {
	fingerprint string
	dims        int
	ids         []string
	vectors     [][]float32
}

// Load reads the index artifact from path.
// Returns domain.ErrIndexMissing if the artifact does not exist; this
// signals a missing offline build step and must not be retried.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexMissing, path)
		}
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != fileMagic {
		return nil, fmt.Errorf("not an index file: %s", path)
	}

	var version uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != fileVersion {
		return nil, fmt.Errorf("unsupported index version %d", version)
	}

	fingerprint, err := readString(f)
	if err != nil {
		return nil, fmt.Errorf("read fingerprint: %w", err)
	}

	var dims, count uint32
	if err := binary.Read(f, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("read dimensions: %w", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}

	ix := &Index{
		fingerprint: fingerprint,
		dims:        int(dims),
		ids:         make([]string, 0, count),
		vectors:     make([][]float32, 0, count),
	}

	buf := make([]byte, ix.dims*4)
	for i := uint32(0); i < count; i++ {
		id, err := readString(f)
		if err != nil {
			return nil, fmt.Errorf("read id %d: %w", i, err)
		}
		if _, err := io.ReadFull(f, buf); err != nil {
			return nil, fmt.Errorf("read vector %d: %w", i, err)
		}
		vec := make([]float32, ix.dims)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf[j*4 : (j+1)*4]))
		}
		ix.ids = append(ix.ids, id)
		ix.vectors = append(ix.vectors, vec)
	}

	return ix, nil
}

// CheckCompatibility verifies the artifact was built with the same
// embedding configuration the process is running with.
// Returns domain.ErrIndexIncompatible on any mismatch.
func (ix *Index) CheckCompatibility(model string, dims int) error {
	if ix.fingerprint != model {
		return fmt.Errorf("%w: index built with %q, runtime uses %q",
			domain.ErrIndexIncompatible, ix.fingerprint, model)
	}
	if ix.dims != dims {
		return fmt.Errorf("%w: index has %d dimensions, runtime produces %d",
			domain.ErrIndexIncompatible, ix.dims, dims)
	}
	return nil
}

// Search returns the k nearest vectors by inner product, descending.
func (ix *Index) Search(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	if len(query) != ix.dims {
		return nil, fmt.Errorf("query dimension mismatch: got %d, expected %d", len(query), ix.dims)
	}
	if k <= 0 || len(ix.ids) == 0 {
		return nil, nil
	}

	hits := make([]driven.VectorHit, len(ix.ids))
	for i, vec := range ix.vectors {
		var dot float64
		for j := 0; j < ix.dims; j++ {
			dot += float64(query[j] * vec[j])
		}
		hits[i] = driven.VectorHit{ChunkID: ix.ids[i], Similarity: math.Max(0, dot)}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Similarity > hits[j].Similarity })

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Size returns the number of vectors in the index.
func (ix *Index) Size() int {
	return len(ix.ids)
}

// Fingerprint returns the embedding model recorded at build time.
func (ix *Index) Fingerprint() string {
	return ix.fingerprint
}

// Close is a no-op; the index is fully in memory.
func (ix *Index) Close() error {
	return nil
}

// Builder accumulates vectors during the offline index build and
// writes the artifact.
type Builder struct {
	fingerprint string
	dims        int
	ids         []string
	vectors     [][]float32
}

// NewBuilder creates a builder for the given embedding model and
// dimensionality. The model name becomes the artifact fingerprint.
func NewBuilder(fingerprint string, dims int) (*Builder, error) {
	if fingerprint == "" {
		return nil, fmt.Errorf("fingerprint is required")
	}
	if dims <= 0 {
		return nil, fmt.Errorf("dimensions must be positive")
	}
	return &Builder{fingerprint: fingerprint, dims: dims}, nil
}

// Add appends a vector for the given chunk ID.
func (b *Builder) Add(chunkID string, vec []float32) error {
	if len(vec) != b.dims {
		return fmt.Errorf("vector dimension mismatch: got %d, expected %d", len(vec), b.dims)
	}
	cp := make([]float32, b.dims)
	copy(cp, vec)
	b.ids = append(b.ids, chunkID)
	b.vectors = append(b.vectors, cp)
	return nil
}

// Len returns the number of vectors added so far.
func (b *Builder) Len() int {
	return len(b.ids)
}

// Save writes the artifact to path. The write goes through a temp
// file and a rename so a crashing build never leaves a partial
// artifact where a serving process could load it.
func (b *Builder) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}

	if err := b.write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close index file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename index file: %w", err)
	}
	return nil
}

func (b *Builder) write(w io.Writer) error {
	if _, err := w.Write([]byte(fileMagic)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, fileVersion); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if err := writeString(w, b.fingerprint); err != nil {
		return fmt.Errorf("write fingerprint: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(b.dims)); err != nil {
		return fmt.Errorf("write dimensions: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b.ids))); err != nil {
		return fmt.Errorf("write count: %w", err)
	}

	buf := make([]byte, b.dims*4)
	for i, id := range b.ids {
		if err := writeString(w, id); err != nil {
			return fmt.Errorf("write id %d: %w", i, err)
		}
		for j, v := range b.vectors[i] {
			binary.LittleEndian.PutUint32(buf[j*4:(j+1)*4], math.Float32bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write vector %d: %w", i, err)
		}
	}
	return nil
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}
