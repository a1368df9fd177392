package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stellarnotes/internal/handler"
	"github.com/stellarnotes/internal/router"
	"github.com/stellarnotes/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, out)
		},
	}
}

func runServe(cmd *cobra.Command, out io.Writer) error {
	rt, err := newRuntime(out)
	if err != nil {
		return err
	}
	defer rt.Close()

	gin.SetMode(rt.Config.GinMode)

	created, err := service.NewUserService(rt.DB).Ensure(rt.Config.SuperRootUserName, rt.Config.SuperRootPassword)
	if err != nil {
		return err
	}
	if created {
		rt.Log.Info().Str("username", rt.Config.SuperRootUserName).Msg("bootstrap user created")
	}

	engine := router.SetupRouter(handler.NewAPI(rt.DB), rt.Log)
	srv := &http.Server{
		Addr:    rt.Config.ListenAddr,
		Handler: engine,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	errCh := make(chan error, 1)
	go func() {
		rt.Log.Info().Str("addr", srv.Addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	rt.Log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
