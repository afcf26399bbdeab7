package server

import "errors"

var errNoServersAreCreated = errors.New("no servers are created: http address is empty")
