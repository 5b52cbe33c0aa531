package layout

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvminor/layout", "force layout and tick scheduling")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
