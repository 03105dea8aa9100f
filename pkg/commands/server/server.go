// Package server defines the command serving the builder over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/cmdhelper"
	"github.com/wuxler/rxkit/pkg/commands/internal/options"
	"github.com/wuxler/rxkit/pkg/matcher"
	"github.com/wuxler/rxkit/pkg/xlog"
)

// New returns a command with default values.
func New() *Command {
	return &Command{
		ServerOptions: options.NewServerOptions(),
	}
}

// Command is a command to start the server.
type Command struct {
	ServerOptions *options.ServerOptions
}

// ToCLI transforms to a *cli.Command.
func (c *Command) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"server"},
		Usage:   "Serve build and match operations over HTTP",
		UsageText: `rxkit serve [OPTIONS]

# Start the server with default port 8080
$ rxkit serve

# Build a pattern from a json recipe
$ curl -d '{"steps":[{"op":"literal","text":"a.b"}]}' http://127.0.0.1:8080/v1/build
`,
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *Command) Flags() []cli.Flag {
	return c.ServerOptions.Flags()
}

// Run is the main function for the current command
func (c *Command) Run(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := c.ServerOptions.NewPatternCache()
	if err != nil {
		return err
	}
	address := c.ServerOptions.Address()
	xlog.C(ctx).Infof("Starting server %s", address)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              address,
		Handler:           NewRouter(matcher.New(cache)),
		ReadHeaderTimeout: 10 * time.Second, //nolint:mnd // disable magic number lint error
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	cmdhelper.Fprintf(cmd.Writer, "Server started at http://%s", address)
	cmdhelper.Fprintf(cmd.Writer, "Press Ctrl+C to stop the server")

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:mnd // disable magic number lint error
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		xlog.C(ctx).Error("Server shutdown failed", "error", err)
		return err
	}
	xlog.C(ctx).Info("Server stopped")
	return nil
}
