package opc

import (
	"archive/zip"
	"io"
	"os"
	"sort"
	"strings"
)

// Container is the raw ZIP view of a package: entry listing and on-demand
// byte access. It knows nothing about content types or relationships.
type Container struct {
	zr     *zip.Reader
	closer io.Closer        // underlying file, nil for in-memory containers
	byName map[string]*zip.File
}

// OpenContainer opens a package container from a file. The file handle is
// released by Close, including when a later parsing stage fails.
func OpenContainer(filename string) (*Container, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &ContainerError{Err: err}
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &ContainerError{Err: err}
	}

	zr, err := zip.NewReader(f, st.Size())
	if err != nil {
		f.Close()
		return nil, &ContainerError{Err: err}
	}

	return newContainer(zr, f), nil
}

// NewContainer opens a package container from an in-memory or caller-managed
// byte source. Close is a no-op for containers created this way; the caller
// owns the underlying reader.
func NewContainer(r io.ReaderAt, size int64) (*Container, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &ContainerError{Err: err}
	}
	return newContainer(zr, nil), nil
}

func newContainer(zr *zip.Reader, closer io.Closer) *Container {
	c := &Container{
		zr:     zr,
		closer: closer,
		byName: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		c.byName[f.Name] = f
	}
	return c
}

// Close releases the underlying file handle, if any.
func (c *Container) Close() error {
	if c.closer != nil {
		err := c.closer.Close()
		c.closer = nil
		return err
	}
	return nil
}

// Parts lists the entry names exactly as stored, sorted for deterministic
// iteration.
func (c *Container) Parts() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		if strings.HasSuffix(name, "/") {
			continue // directory entries are not parts
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the named entry exists. The match is case-sensitive,
// as entry names are stored.
func (c *Container) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// ReadPart returns the raw bytes of the named entry, or PartNotFoundError.
func (c *Container) ReadPart(name string) ([]byte, error) {
	f, ok := c.byName[name]
	if !ok {
		return nil, &PartNotFoundError{PartName: name}
	}

	rc, err := f.Open()
	if err != nil {
		return nil, &ContainerError{Err: err}
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// readWellKnown reads a reserved package file such as [Content_Types].xml or
// _rels/.rels. Listing is case-sensitive, but lookups for well-known files
// fall back to a case-insensitive match per convention.
func (c *Container) readWellKnown(name string) ([]byte, error) {
	if c.Has(name) {
		return c.ReadPart(name)
	}
	for stored := range c.byName {
		if strings.EqualFold(stored, name) {
			return c.ReadPart(stored)
		}
	}
	return nil, &PartNotFoundError{PartName: name}
}
