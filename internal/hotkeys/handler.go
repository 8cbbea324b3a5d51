// Package hotkeys registers the global keyboard bindings: arrow chords for
// keyboard tiling and raw modifier press/release tracking for the zoom
// double-tap detector.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/MisterMaroki/swipey-sub000/internal/config"
	"github.com/MisterMaroki/swipey-sub000/internal/doubletap"
	"github.com/MisterMaroki/swipey-sub000/internal/engine"
	"github.com/MisterMaroki/swipey-sub000/internal/platform"
	"github.com/MisterMaroki/swipey-sub000/internal/tile"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	Root() xproto.Window
}

// Handler owns the global grabs for one X connection.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	engine *engine.Engine
	cfg    *config.Config
	logger *slog.Logger
}

var ignoreModsOnce sync.Once

// NewHandler wires a handler over an X11-capable backend.
func NewHandler(backend platform.Backend, eng *engine.Engine, cfg *config.Config, logger *slog.Logger) (*Handler, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok {
		return nil, fmt.Errorf("backend does not expose an X11 connection")
	}
	xu := accessor.XUtil()

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		xu:     xu,
		root:   accessor.Root(),
		engine: eng,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Register sets up all global bindings.
func (h *Handler) Register() error {
	if err := h.registerArrows(); err != nil {
		return err
	}
	return h.registerModifierTaps()
}

// registerArrows binds the tiling chords, e.g. mod4-Up.
func (h *Handler) registerArrows() error {
	bindings := map[string]tile.Direction{
		"Up":    tile.DirUp,
		"Down":  tile.DirDown,
		"Left":  tile.DirLeft,
		"Right": tile.DirRight,
	}
	for key, dir := range bindings {
		dir := dir
		seq := h.cfg.TileChordModifier + "-" + key
		err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
			h.engine.HandleArrow(dir)
		}).Connect(h.xu, h.root, seq, true)
		if err != nil {
			return fmt.Errorf("failed to bind %s: %w", seq, err)
		}
	}
	return nil
}

// registerModifierTaps grabs the left and right keys of the configured zoom
// modifier and feeds their press/release events to the double-tap machine.
func (h *Handler) registerModifierTaps() error {
	left, right := modifierKeysyms(h.cfg.Modifier)

	type binding struct {
		keysym string
		side   doubletap.Side
	}
	for _, b := range []binding{{left, doubletap.SideLeft}, {right, doubletap.SideRight}} {
		side := b.side
		err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
			h.engine.ModifierDown(side, time.Now())
		}).Connect(h.xu, h.root, b.keysym, true)
		if err != nil {
			return fmt.Errorf("failed to bind %s press: %w", b.keysym, err)
		}
		err = keybind.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
			h.engine.ModifierUp(side, time.Now())
		}).Connect(h.xu, h.root, b.keysym, true)
		if err != nil {
			return fmt.Errorf("failed to bind %s release: %w", b.keysym, err)
		}
	}
	return nil
}

// modifierKeysyms maps the configured modifier to its left/right keysyms.
func modifierKeysyms(mod config.ModifierKey) (left, right string) {
	switch mod {
	case config.ModifierCtrl:
		return "Control_L", "Control_R"
	case config.ModifierAlt:
		return "Alt_L", "Alt_R"
	default:
		return "Super_L", "Super_R"
	}
}

// configureIgnoreMods tells xevent to deliver grabbed keys regardless of
// lock-key state.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	locks := []uint16{uint16(xproto.ModMaskLock)}
	if mask := modMaskForKeysym(xu, "Num_Lock"); mask != 0 && mask != locks[0] {
		locks = append(locks, mask)
	}

	ignore := []uint16{0}
	for subset := 1; subset < (1 << len(locks)); subset++ {
		var mask uint16
		for bit := range locks {
			if subset&(1<<bit) != 0 {
				mask |= locks[bit]
			}
		}
		ignore = append(ignore, mask)
	}
	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
