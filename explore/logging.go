package explore

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvminor/explore", "exploration tree and undo history")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
