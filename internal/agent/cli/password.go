package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotLoggedIn = errors.New("not logged in or token expired; run fleetctl login")

// readPassword читает пароль.
//
// Режимы:
//   - fromStdin=true: первая строка STDIN (для скриптов/CI);
//   - fromStdin=false: интерактивно из терминала со скрытым вводом.
//
// Пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, prompt string, fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := strings.TrimRight(line, "\r\n")
		if pw == "" {
			return "", errors.New("empty password on stdin")
		}
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(b))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
