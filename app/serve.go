package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/identity"
	"github.com/ayoisaiah/zenfocus/server"
)

// serveAction runs the aggregator service until interrupted.
func serveAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	issuer, err := identity.NewIssuer(e.cfg.Server.JWTSecret, e.cfg.Server.TokenTTL)
	if err != nil {
		return err
	}

	dbPath := firstNonEmptyString(e.cfg.Server.DBPath, e.paths.ServerDB)

	db, err := activity.OpenSQLite(dbPath)
	if err != nil {
		return err
	}

	defer db.Close()

	if !e.cfg.CLI.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.New(server.Options{
		Repo:        activity.NewRepository(db),
		Verifier:    issuer,
		Log:         e.log,
		CORSOrigins: e.cfg.Server.CORSOrigins,
	})

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(config.Stdout, "aggregator listening on %s (database %s)\n", e.cfg.Server.Addr, dbPath)

	return server.Serve(sigCtx, e.cfg.Server.Addr, router, e.log)
}

// tokenAction issues an identity token signed with the server secret.
func tokenAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	issuer, err := identity.NewIssuer(e.cfg.Server.JWTSecret, e.cfg.Server.TokenTTL)
	if err != nil {
		return err
	}

	token, err := issuer.Issue(ctx.String("user"), ctx.String("name"))
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, token)

	return nil
}

func writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, string(b))

	return nil
}
