package server

import "errors"

// ErrNoHTTPHandler is returned by NewServer when it is given nothing to
// serve or no address to listen on.
var ErrNoHTTPHandler = errors.New("no http handler to serve")
