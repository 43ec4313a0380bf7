// Package alarm signals the end of an interval with a sound, a desktop
// notification and an optional user command
package alarm

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/zenfocus/internal/pathutil"
	"github.com/ayoisaiah/zenfocus/timer"
)

const alertTimeout = 30 * time.Second

var messages = map[timer.Mode]string{
	timer.Work:       "Focus on your task",
	timer.ShortBreak: "Take a breather",
	timer.LongBreak:  "Take a long break",
}

// AlertPlayer plays a sound once.
type AlertPlayer interface {
	Alert(ctx context.Context, name string) error
}

// Options configures a Notifier.
type Options struct {
	Player     AlertPlayer
	Log        *slog.Logger
	Sound      string
	SessionCmd string
	Notify     bool
}

// Notifier implements timer.Alarm. Every effect runs on its own goroutine so
// the timer is never held up; failures are logged.
type Notifier struct {
	player     AlertPlayer
	log        *slog.Logger
	notify     func(title, message, icon string) error
	run        func(name string, args ...string) error
	sound      string
	sessionCmd string
	icon       string
	wg         sync.WaitGroup
	enabled    bool
}

func New(opts Options) *Notifier {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	// empty when the icon is not installed
	icon, _ := xdg.SearchDataFile(filepath.Join(pathutil.Dir(), "icon.png"))

	return &Notifier{
		player:     opts.Player,
		log:        opts.Log,
		sound:      opts.Sound,
		sessionCmd: opts.SessionCmd,
		enabled:    opts.Notify,
		icon:       icon,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Ring announces that finished is over and next is about to begin.
func (n *Notifier) Ring(finished, next timer.Mode) {
	if n.player != nil && n.sound != "" {
		n.goLog("alert sound", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
			defer cancel()

			return n.player.Alert(ctx, n.sound)
		})
	}

	if n.enabled {
		title := finished.Label() + " is finished"
		msg := messages[next]

		n.goLog("desktop notification", func() error {
			return n.notify(title, msg, n.icon)
		})
	}

	if n.sessionCmd != "" {
		n.goLog("session command", n.runSessionCmd)
	}
}

// Wait blocks until every effect started by Ring has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) goLog(what string, fn func() error) {
	n.wg.Add(1)

	go func() {
		defer n.wg.Done()

		if err := fn(); err != nil {
			n.log.Warn(what+" failed", slog.Any("error", err))
		}
	}()
}

func (n *Notifier) runSessionCmd() error {
	cmdSlice, err := shellquote.Split(n.sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return n.run(cmdSlice[0], cmdSlice[1:]...)
}
