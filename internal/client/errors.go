package client

import "errors"

var ErrNilDependency = errors.New("client: nil dependency")
