// Package debug holds developer tooling that stays off unless configured.
package debug

import (
	"errors"
	"net"
	"net/http"
	_ "net/http/pprof"

	"avatar-filter/internal/logger"
)

// StartProfiling serves net/http/pprof on addr in the background. It returns
// the bound address so ":0" can be used.
func StartProfiling(addr string, log logger.Logger) (string, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}

	go func() {
		err := http.Serve(listener, http.DefaultServeMux)
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("Profiling", err, nil)
		}
	}()

	log.Info("Profiling", "pprof server started", map[string]interface{}{
		"addr": listener.Addr().String(),
	})
	return listener.Addr().String(), nil
}
