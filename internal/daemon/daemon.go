// Package daemon owns the long-running process: backend connection, engine,
// hotkey grabs, IPC server, pid file and signal handling.
package daemon

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/engine"
	"github.com/MisterMaroki/swipey-sub000/internal/hotkeys"
	"github.com/MisterMaroki/swipey-sub000/internal/ipc"
	"github.com/MisterMaroki/swipey-sub000/internal/runtimepath"
	"github.com/MisterMaroki/swipey-sub000/internal/x11"
)

// Daemon bundles the components of a running swipey instance.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	backend    *x11.Backend
	engine     *engine.Engine
	ipcServer  *ipc.Server
	reloadChan chan struct{}
	pidPath    string
}

// New connects to the display and wires up all components. The daemon is
// not running until Run is called.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := x11.NewBackend()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	eng := engine.New(backend, cfg, logger)

	handler, err := hotkeys.NewHandler(backend, eng, cfg, logger)
	if err != nil {
		backend.Close()
		return nil, err
	}
	if err := handler.Register(); err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to register hotkeys: %w", err)
	}

	reloadChan := make(chan struct{}, 1)
	ipcServer, err := ipc.NewServer(eng, reloadChan, logger)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		logger:     logger,
		backend:    backend,
		engine:     eng,
		ipcServer:  ipcServer,
		reloadChan: reloadChan,
	}, nil
}

// Run starts the IPC server and blocks in the X event loop until a
// termination signal arrives.
func (d *Daemon) Run() error {
	if err := d.ipcServer.Start(); err != nil {
		return err
	}
	defer d.ipcServer.Stop()

	if err := d.writePidFile(); err != nil {
		d.logger.Warn("failed to write pid file", "error", err)
	}
	defer d.removePidFile()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for {
			select {
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					d.reloadConfig()
				case os.Interrupt, syscall.SIGTERM:
					d.logger.Info("shutting down")
					d.engine.StopGridSession()
					d.backend.Quit()
					return
				}
			case <-d.reloadChan:
				d.reloadConfig()
			}
		}
	}()

	d.logger.Info("daemon started", "pid", os.Getpid())
	d.backend.EventLoop()
	return nil
}

func (d *Daemon) reloadConfig() {
	newCfg, err := config.Load()
	if err != nil {
		d.logger.Warn("config reload failed", "error", err)
		return
	}
	d.cfg = newCfg
	d.engine.UpdateConfig(newCfg)
	d.logger.Info("config reloaded")
}

func (d *Daemon) writePidFile() error {
	path, err := runtimepath.PidPath()
	if err != nil {
		return err
	}
	d.pidPath = path
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600)
}

func (d *Daemon) removePidFile() {
	if d.pidPath != "" {
		os.Remove(d.pidPath)
	}
}
