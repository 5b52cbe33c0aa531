package main

import (
	"fmt"
	"io"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.DefineRealm("lvminor", "graph minor explorer")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// setupLogging installs a human-readable logrus base logger writing to out
// and enables level for every lvminor realm.
func setupLogging(level string, out io.Writer) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	logcfg := logrusl.Human(true)
	lg := logcfg.NewLogrus()
	lg.SetOutput(out)

	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(lg))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("lvminor")))

	return nil
}
