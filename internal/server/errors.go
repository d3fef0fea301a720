package server

import "errors"

// errNothingToServe is returned by NewServer when there is no HTTP handler or
// no address to listen on.
var errNothingToServe = errors.New("nothing to serve: no http handler or address")
