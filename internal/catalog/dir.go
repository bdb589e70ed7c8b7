package catalog

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alexanderramin/cursada/internal/domain"
)

// DirLoader reads {Root}/{term}/{file} from the local filesystem. It is the
// layout the data server serves from.
type DirLoader struct {
	root     string
	observer Observer
}

// NewDirLoader creates a Loader over a local data root.
func NewDirLoader(root string, observer Observer) *DirLoader {
	return &DirLoader{root: root, observer: observerOrNoop(observer)}
}

func (l *DirLoader) Load(ctx context.Context, term string) (*domain.Catalog, error) {
	return loadAll(ctx, "dir", term, l.fetch, l.observer)
}

// Path returns the filesystem path of one data file of a term.
func (l *DirLoader) Path(term, file string) string {
	return filepath.Join(l.root, term, file)
}

func (l *DirLoader) fetch(ctx context.Context, term, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(l.Path(term, file))
}
