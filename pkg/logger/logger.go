package logger

import (
	"go.uber.org/zap"
)

// Init builds the process-wide logger and installs it as the zap global,
// so call sites can use zap.L() directly.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
}
