package output

import "errors"

var errUnbalancedScope = errors.New("output: Close called with an open object or array scope")
