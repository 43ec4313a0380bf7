package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zenfocus/alarm"
	"github.com/ayoisaiah/zenfocus/internal/config"
	"github.com/ayoisaiah/zenfocus/internal/logging"
	"github.com/ayoisaiah/zenfocus/internal/pathutil"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
	"github.com/ayoisaiah/zenfocus/internal/ui"
	"github.com/ayoisaiah/zenfocus/settings"
	"github.com/ayoisaiah/zenfocus/sound"
	"github.com/ayoisaiah/zenfocus/store"
	"github.com/ayoisaiah/zenfocus/timer"
	"github.com/ayoisaiah/zenfocus/tui"
)

const (
	envNoColor         = "NO_COLOR"
	envZenfocusNoColor = "ZENFOCUS_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, e.cfg.CLI.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// timerDeps wires the machine to its persistence, alarm and recorder.
type timerDeps struct {
	machine  *timer.Machine
	settings *settings.Store
	player   *sound.Player
	ambience *sound.Ambience
}

func newTimerDeps(e *env) (*timerDeps, error) {
	db, err := e.localDB()
	if err != nil {
		return nil, err
	}

	settingsStore := settings.NewStore(db, e.log)

	player, err := e.soundPlayer()
	if err != nil {
		return nil, err
	}

	notifier := alarm.New(alarm.Options{
		Player:     player,
		Log:        e.log,
		Sound:      e.cfg.Sound.Alert,
		SessionCmd: e.cfg.Timer.SessionCmd,
		Notify:     e.cfg.Notifications.Enabled,
	})

	machine := timer.New(
		settingsStore.Load(),
		timer.WithStateStore(timer.NewDBState(db, e.log)),
		timer.WithAlarm(notifier),
		timer.WithRecorder(e.sessionRecorder()),
		timer.WithLogger(e.log),
		timer.WithSettleDelay(e.cfg.Timer.SettleDelay),
		timer.WithAutoStart(e.cfg.Timer.AutoStartBreak, e.cfg.Timer.AutoStartWork),
	)

	// Save runs on the goroutine that owns the machine
	settingsStore.OnChange(machine.ApplySettings)

	return &timerDeps{
		machine:  machine,
		settings: settingsStore,
		player:   player,
		ambience: sound.NewAmbience(player, e.cfg.Sound.Ambient, e.cfg.Sound.AmbientOnBreak, e.log),
	}, nil
}

// defaultAction runs the timer, interactively unless --headless is set.
func defaultAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	deps, err := newTimerDeps(e)
	if err != nil {
		return err
	}

	defer func() {
		deps.player.StopAmbient()
		_ = os.Remove(e.paths.StatusFile)
	}()

	if e.cfg.CLI.Headless {
		return runHeadless(ctx.Context, e, deps)
	}

	model := tui.New(tui.Options{
		Machine:      deps.machine,
		Settings:     deps.settings,
		Ambience:     deps.ambience,
		Tracks:       deps.player.Catalogue(),
		Player:       deps.player,
		Log:          e.log,
		StatusFile:   e.paths.StatusFile,
		TickInterval: e.cfg.Timer.TickInterval,
		DarkTheme:    e.cfg.Display.DarkTheme,
		TwentyFourHr: e.cfg.Display.TwentyFourHour,
		Debug:        e.cfg.CLI.Debug,
	})

	_, err = tea.NewProgram(model, tea.WithContext(ctx.Context)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Context.Err() != nil {
		return nil
	}

	return err
}

// runHeadless starts a work session and prints every transition until
// interrupted.
func runHeadless(parent context.Context, e *env, deps *timerDeps) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := timer.NewRunner(
		deps.machine,
		e.cfg.Timer.TickInterval,
		func(prev, cur timer.State) {
			printTransition(prev, cur)
			deps.ambience.Sync(cur.Mode.IsBreak(), cur.IsRunning)

			interval := deps.machine.Settings().LongBreakInterval

			status := timer.NewStatus(cur, interval, time.Now())
			if err := timer.WriteStatusFile(e.paths.StatusFile, status); err != nil {
				e.log.Warn("writing status file failed", slog.Any("error", err))
			}
		},
	)

	errCh := make(chan error, 1)

	go func() {
		errCh <- runner.Run(ctx)
	}()

	if state, err := runner.State(ctx); err == nil && !state.IsRunning {
		_ = runner.Toggle(ctx)
	}

	pterm.Info.Printfln("%s started, press Ctrl-C to stop", deps.machine.State().Mode.Label())

	return <-errCh
}

func printTransition(prev, cur timer.State) {
	switch {
	case cur.Finished() && !prev.Finished():
		pterm.Success.Printfln(
			"%s finished (%d completed), next: %s",
			cur.Mode.Label(),
			cur.CompletedWorkSessions,
			cur.NextMode.Label(),
		)
	case cur.Mode != prev.Mode:
		state := "paused"
		if cur.IsRunning {
			state = "running"
		}

		pterm.Info.Printfln(
			"%s %s: %s",
			cur.Mode.Label(),
			state,
			timeutil.FormatClock(cur.RemainingSeconds),
		)
	}
}

// statusAction prints the state of the timer. While another process holds
// the database the status file it maintains is used instead.
func statusAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	db, err := e.localDB()
	if errors.Is(err, store.ErrAlreadyRunning) {
		status, found, err := timer.ReadStatusFile(e.paths.StatusFile)
		if err != nil {
			return err
		}

		if found {
			printStatus(status, now)
		}

		return nil
	}

	if err != nil {
		return err
	}

	s := settings.NewStore(db, e.log).Load()
	m := timer.New(s, timer.WithStateStore(timer.NewDBState(db, e.log)), timer.WithLogger(e.log))

	printStatus(timer.NewStatus(m.State(), s.LongBreakInterval, now), now)

	return nil
}

func printStatus(s timer.Status, now time.Time) {
	state := "paused"
	if s.IsRunning {
		state = "running"
	}

	cycle := ""
	if s.Mode == timer.Work && s.LongBreakInterval > 0 {
		cycle = fmt.Sprintf(" [%d/%d]", s.Completed%s.LongBreakInterval+1, s.LongBreakInterval)
	}

	fmt.Fprintf(
		config.Stdout,
		"%s: %s %s%s, %d completed\n",
		s.Mode.Label(),
		ui.Highlight(timeutil.FormatClock(s.Remaining(now))),
		state,
		cycle,
		s.Completed,
	)
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR or ZENFOCUS_NO_COLOR is set
	for _, name := range []string{envNoColor, envZenfocusNoColor} {
		if _, exists := os.LookupEnv(name); exists {
			disableStyling()
		}
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	paths, err := pathutil.New()
	if err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	closeLog, err := logging.Setup(logging.Options{
		Path:       paths.LogFile,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		// the interactive interface owns the terminal
		Mirror: cfg.CLI.Debug && (cfg.CLI.Headless || ctx.Args().Present()),
	})
	if err != nil {
		return err
	}

	ctx.App.Metadata[envKey] = &env{
		cfg:      cfg,
		paths:    paths,
		log:      slog.Default(),
		closeLog: closeLog,
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	e, err := getEnv(ctx)
	if err != nil {
		// Before failed; nothing was opened
		return nil
	}

	e.log.InfoContext(ctx.Context, "exiting zenfocus")

	return e.close()
}
