package app

import (
	"errors"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/identity"
	"github.com/ayoisaiah/zenfocus/internal/pathutil"
	"github.com/ayoisaiah/zenfocus/session"
	"github.com/ayoisaiah/zenfocus/sound"
	"github.com/ayoisaiah/zenfocus/store"
)

const envKey = "env"

var (
	errNotSignedIn = &apperr.Error{
		Message: "no identity token configured: issue one with `zenfocus token` and set identity.token in the config file",
	}

	errNoEnv = &apperr.Error{
		Message: "application was not initialised",
	}
)

// env holds the resources shared by every command. Expensive or exclusive
// resources are opened on first use and released in afterAction.
type env struct {
	cfg      *config.Config
	paths    *pathutil.Paths
	log      *slog.Logger
	ids      *identity.Static
	db       store.DB
	recorder *session.Recorder
	player   *sound.Player
	closeLog func() error
}

func getEnv(ctx *cli.Context) (*env, error) {
	e, ok := ctx.App.Metadata[envKey].(*env)
	if !ok {
		return nil, errNoEnv
	}

	return e, nil
}

// localDB opens the bbolt store. Only one process may hold it at a time.
func (e *env) localDB() (store.DB, error) {
	if e.db != nil {
		return e.db, nil
	}

	db, err := store.NewClient(e.paths.LocalDB)
	if err != nil {
		return nil, err
	}

	e.db = db

	return db, nil
}

func (e *env) identity() *identity.Static {
	if e.ids == nil {
		e.ids = identity.NewStatic(
			e.cfg.Identity.Token,
			e.cfg.Identity.Name,
			e.cfg.Identity.AvatarURL,
		)
	}

	return e.ids
}

// aggregator returns a client for the configured service. It fails when the
// user is not signed in.
func (e *env) aggregator() (*session.Client, identity.User, error) {
	ids := e.identity()

	user, ok := ids.Current()
	if !ok {
		return nil, identity.User{}, errNotSignedIn
	}

	c, err := session.NewClient(e.cfg.Aggregator.URL, e.cfg.Aggregator.Timeout, ids, ids)
	if err != nil {
		return nil, identity.User{}, err
	}

	return c, user, nil
}

// sessionRecorder reports completed work sessions in the background. It
// degrades to a no-op when no aggregator is configured.
func (e *env) sessionRecorder() *session.Recorder {
	if e.recorder != nil {
		return e.recorder
	}

	var agg session.Aggregator

	ids := e.identity()

	c, err := session.NewClient(e.cfg.Aggregator.URL, e.cfg.Aggregator.Timeout, ids, ids)
	if err == nil {
		agg = c
	} else {
		e.log.Info("session reporting disabled", slog.Any("reason", err))
	}

	e.recorder = session.NewRecorder(agg, ids, e.cfg.Aggregator.Timeout, e.log)

	return e.recorder
}

func (e *env) soundPlayer() (*sound.Player, error) {
	if e.player != nil {
		return e.player, nil
	}

	catalogue, err := sound.NewCatalogue(e.paths.SoundsDir, e.cfg.Sound.Tracks)
	if err != nil {
		return nil, err
	}

	e.player = sound.NewPlayer(
		catalogue,
		sound.WithCacheDir(e.paths.CacheDir),
		sound.WithLogger(e.log),
	)

	e.player.SetMuted(e.cfg.Sound.Muted)

	return e.player, nil
}

// close releases everything in reverse order of dependency.
func (e *env) close() error {
	var errs []error

	if e.recorder != nil {
		e.recorder.Close()
	}

	if e.player != nil {
		e.player.Close()
	}

	if e.db != nil {
		errs = append(errs, e.db.Close())
	}

	if e.closeLog != nil {
		errs = append(errs, e.closeLog())
	}

	return errors.Join(errs...)
}
