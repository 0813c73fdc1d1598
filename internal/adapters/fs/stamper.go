// Package fs provides the filesystem timestamp adapter.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Timestamper = (*Stamper)(nil)

// Stamper implements ports.Timestamper using os.Stat.
type Stamper struct{}

// NewStamper creates a new Stamper.
func NewStamper() *Stamper {
	return &Stamper{}
}

// Stamp returns the path's last-modified stamp. A missing path is an absent
// stamp, not an error; any other stat failure is fatal.
func (s *Stamper) Stamp(_ context.Context, path string) (domain.Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.AbsentStamp(), nil
		}
		return domain.Stamp{}, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return domain.StampAt(info.ModTime()), nil
}
