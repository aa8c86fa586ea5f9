// Package archive stores named regions in a single zstd-compressed file.
//
// The decompressed payload is the magic "RPK1" followed by a uvarint entry
// count and, per entry, uvarint-prefixed name bytes, uvarint width and
// height, a uvarint run count and the runs as uvarints.
package archive

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"regionpack/pkg/region"

	"github.com/klauspost/compress/zstd"
)

const magic = "RPK1"

// ErrCorrupt reports a payload that does not hold a valid archive.
var ErrCorrupt = errors.New("archive: corrupt data")

// Entry is one named region together with the grid it was encoded for.
type Entry struct {
	Name   string
	Width  int
	Height int
	Region region.Region
}

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil)
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	},
}

func compressZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	enc.Reset(&buf)
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZstd(data []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)
	if err := dec.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(dec); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Marshal encodes entries into a compressed archive.
func Marshal(entries []Entry) ([]byte, error) {
	raw := []byte(magic)
	raw = binary.AppendUvarint(raw, uint64(len(entries)))
	for _, e := range entries {
		if e.Width <= 0 || e.Height <= 0 || e.Width > region.MaxSide || e.Height > region.MaxSide {
			return nil, fmt.Errorf("archive: entry %q is %dx%d: %w", e.Name, e.Width, e.Height, region.ErrUnsupportedSize)
		}
		raw = binary.AppendUvarint(raw, uint64(len(e.Name)))
		raw = append(raw, e.Name...)
		raw = binary.AppendUvarint(raw, uint64(e.Width))
		raw = binary.AppendUvarint(raw, uint64(e.Height))
		raw = binary.AppendUvarint(raw, uint64(len(e.Region)))
		for _, run := range e.Region {
			raw = binary.AppendUvarint(raw, uint64(run))
		}
	}
	comp, err := compressZstd(raw)
	if err != nil {
		return nil, fmt.Errorf("zstd encode: %w", err)
	}
	return comp, nil
}

// Unmarshal decodes a compressed archive.
func Unmarshal(data []byte) ([]Entry, error) {
	raw, err := decompressZstd(data)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w: %w", ErrCorrupt, err)
	}
	if !bytes.HasPrefix(raw, []byte(magic)) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	r := bytes.NewReader(raw[len(magic):])
	uv := func(what string, limit uint64) (uint64, error) {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return 0, fmt.Errorf("%w: reading %s: %w", ErrCorrupt, what, err)
		}
		if v > limit {
			return 0, fmt.Errorf("%w: %s %d exceeds %d", ErrCorrupt, what, v, limit)
		}
		return v, nil
	}
	count, err := uv("entry count", uint64(r.Len()))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		n, err := uv("name length", uint64(r.Len()))
		if err != nil {
			return nil, err
		}
		name := make([]byte, n)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("%w: reading name: %w", ErrCorrupt, err)
		}
		w, err := uv("width", region.MaxSide)
		if err != nil {
			return nil, err
		}
		h, err := uv("height", region.MaxSide)
		if err != nil {
			return nil, err
		}
		if w == 0 || h == 0 {
			return nil, fmt.Errorf("%w: entry %q has an empty grid", ErrCorrupt, name)
		}
		runs, err := uv("run count", uint64(r.Len()))
		if err != nil {
			return nil, err
		}
		reg := make(region.Region, runs)
		total := 0
		for j := range reg {
			v, err := uv("run", 0xffff)
			if err != nil {
				return nil, err
			}
			reg[j] = uint16(v)
			total += int(v)
		}
		if total > region.MaxSide*region.MaxSide {
			return nil, fmt.Errorf("%w: entry %q spans %d cells", ErrCorrupt, name, total)
		}
		if runs == 0 {
			reg = region.Empty
		}
		entries = append(entries, Entry{Name: string(name), Width: int(w), Height: int(h), Region: reg})
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Len())
	}
	return entries, nil
}

// Write stores entries at path.
func Write(path string, entries []Entry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	bw := bufio.NewWriter(f)
	if _, err := bw.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("archive: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("archive: %w", err)
	}
	return f.Close()
}

// Read loads the entries stored at path.
func Read(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return Unmarshal(data)
}
