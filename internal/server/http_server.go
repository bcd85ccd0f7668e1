// Package server constructs and starts the orchestrator HTTP service with
// helpers that apply sensible production defaults.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"
)

// StartupOutput receives the startup announcement written by StartServer.
var StartupOutput io.Writer = os.Stdout

// CreateServer creates and configures an HTTP server with the address and
// timeouts from config.
func CreateServer(config *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         config.Port,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
}

// Listen binds the TCP socket for server.Addr. Any failure is wrapped with
// ErrBindFailure.
func Listen(server *http.Server) (net.Listener, error) {
	addr := server.Addr
	if addr == "" {
		addr = defaultPort
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBindFailure, addr, err)
	}
	return listener, nil
}

// ListeningURL returns the local URL announced for the bound address.
func ListeningURL(addr net.Addr) string {
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d", tcpAddr.Port)
	}
	return "http://" + addr.String()
}

// Announce writes the startup line for a bound listener.
func Announce(w io.Writer, listener net.Listener) {
	_, _ = fmt.Fprintf(w, "Server is running at %s\n", ListeningURL(listener.Addr()))
}

// Serve accepts connections on listener until the server is shut down.
// A graceful shutdown is not reported as an error.
func Serve(server *http.Server, listener net.Listener) error {
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartServer binds the listener, announces it on StartupOutput and blocks
// serving requests. If binding fails nothing is announced or served.
func StartServer(server *http.Server) error {
	listener, err := Listen(server)
	if err != nil {
		return err
	}

	Announce(StartupOutput, listener)
	return Serve(server, listener)
}

// ShutdownServer stops the orchestrator listener and waits up to timeout for
// in-flight requests to finish.
func ShutdownServer(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Orchestrator listener on %s did not stop cleanly: %v", server.Addr, err)
		return err
	}

	log.Printf("Orchestrator listener on %s stopped", server.Addr)
	return nil
}
