//go:build !ebiten

package window

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-grid/model"
	"github.com/sheikhrachel/conway-grid/utils"
)

// Run always reports that the window sink is not compiled in.
func Run(*model.Grid, utils.Config, *model.ChangePool) error {
	return errors.WithStack(ErrWindowUnavailable)
}
