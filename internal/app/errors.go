package app

import "errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("window front-end requires the ebiten build tag")
