package io

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/haijima/dsu/cache"
	"github.com/haijima/dsu/internal/graph"
)

// EdgeListFile is a parsed edge-list input.
type EdgeListFile struct {
	Path     string
	Vertices int
	Edges    []graph.Edge
}

func (f *EdgeListFile) CacheKey() string { return f.Path }

// GridFile is a parsed island-grid input.
type GridFile struct {
	Path string
	Grid [][]byte
}

func (f *GridFile) CacheKey() string { return f.Path }

// EquationsFile is a parsed ratio-equation input.
type EquationsFile struct {
	Path      string
	Equations []graph.Equation
}

func (f *EquationsFile) CacheKey() string { return f.Path }

// Loader reads and parses input files through afero, memoizing by cleaned
// path so commands that consume the same input several times parse it once.
type Loader struct {
	edgeLists *cache.Cache[string, *EdgeListFile]
	grids     *cache.Cache[string, *GridFile]
	equations *cache.Cache[string, *EquationsFile]
}

// NewLoader creates a Loader on top of fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{
		edgeLists: cache.NewCache(func(path string) (*EdgeListFile, error) {
			f, err := fs.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "open %s", path)
			}
			defer f.Close()
			vertices, edges, err := ParseEdgeList(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
			return &EdgeListFile{Path: path, Vertices: vertices, Edges: edges}, nil
		}),
		grids: cache.NewCache(func(path string) (*GridFile, error) {
			f, err := fs.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "open %s", path)
			}
			defer f.Close()
			grid, err := ParseGrid(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
			return &GridFile{Path: path, Grid: grid}, nil
		}),
		equations: cache.NewCache(func(path string) (*EquationsFile, error) {
			f, err := fs.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "open %s", path)
			}
			defer f.Close()
			eqs, err := ParseEquations(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
			return &EquationsFile{Path: path, Equations: eqs}, nil
		}),
	}
}

func (l *Loader) LoadEdgeList(path string) (*EdgeListFile, error) {
	return l.edgeLists.Get(filepath.Clean(path))
}

func (l *Loader) LoadGrid(path string) (*GridFile, error) {
	return l.grids.Get(filepath.Clean(path))
}

func (l *Loader) LoadEquations(path string) (*EquationsFile, error) {
	return l.equations.Get(filepath.Clean(path))
}
