package menu

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const tmuxPrefix = "tmux:"

// parseTmuxItem splits a "tmux: <command> [args...]" run string into tmux
// arguments. Single or double quotes group words, so
// `tmux: display-message "hello there"` yields two arguments. ok is false when
// run is not a tmux item.
func parseTmuxItem(run string) (args []string, ok bool, err error) {
	if !strings.HasPrefix(run, tmuxPrefix) {
		return nil, false, nil
	}
	args, err = splitWords(strings.TrimPrefix(run, tmuxPrefix))
	return args, true, err
}

func splitWords(s string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		quote   rune
		inWord  bool
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

// tmuxInvocation returns the argv for running args against socket, plus the
// extra environment tmux needs to find a socket outside its default directory.
func tmuxInvocation(socket string, args []string) (argv []string, env []string) {
	argv = make([]string, 0, len(args)+2)
	if trimmed := strings.TrimSpace(socket); trimmed != "" {
		argv = append(argv, "-S", trimmed)
		env = []string{"TMUX_TMPDIR=" + filepath.Dir(trimmed)}
	}
	return append(argv, args...), env
}

// runTmuxFn runs one tmux command and returns its combined output.
var runTmuxFn = func(socket string, args ...string) ([]byte, error) {
	argv, env := tmuxInvocation(socket, args)
	cmd := exec.Command("tmux", argv...)
	if env != nil {
		cmd.Env = append(os.Environ(), env...)
	}
	return cmd.CombinedOutput()
}
