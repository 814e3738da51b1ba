package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// ErrNoMouse is returned when tmux has no mouse position for the target,
// which happens outside of a mouse key binding.
var ErrNoMouse = errors.New("tmux reported no mouse position")

type tmuxClient interface {
	DisplayMessage(target, format string) (string, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// ResolveSocketPath picks the tmux socket: explicit flag, CMENU_SOCKET, the
// TMUX variable of the enclosing session, then the default socket location.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("CMENU_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// MousePosition returns the last mouse position tmux recorded for the pane
// in TMUX_PANE, in cells relative to that pane.
func MousePosition(socketPath string) (int, int, error) {
	x, y, err := displayPair(socketPath, "#{mouse_x} #{mouse_y}")
	if errors.Is(err, errEmptyPair) {
		return 0, 0, ErrNoMouse
	}
	return x, y, err
}

// ClientSize returns the width and height of the client attached to the
// current pane.
func ClientSize(socketPath string) (int, int, error) {
	return displayPair(socketPath, "#{client_width} #{client_height}")
}

var errEmptyPair = errors.New("empty tmux format result")

func displayPair(socketPath, format string) (int, int, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return 0, 0, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	out, err := client.DisplayMessage(target, format)
	if err != nil {
		return 0, 0, fmt.Errorf("display-message %q: %w", format, err)
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, errEmptyPair
	}
	first, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", out, err)
	}
	second, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", out, err)
	}
	return first, second, nil
}
