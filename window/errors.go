package window

import "github.com/pkg/errors"

// ErrWindowUnavailable is returned by Run in builds without the ebiten tag.
var ErrWindowUnavailable = errors.New("window sink requires building with the 'ebiten' tag")
