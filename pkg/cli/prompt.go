package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// lineReader is the part of readline the prompt loop consumes.
type lineReader interface {
	Readline() (string, error)
}

// ConfirmYesNo asks the user a yes/no question and keeps asking until the
// answer is one of yes, no, y or n, in any case. The prompt blocks until
// an accepted answer arrives: no timeout, no cancellation. A closed input
// stream is reported as an error.
func ConfirmYesNo(question string) (bool, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: fmt.Sprintf("%s [yes/no] ", question),
	})
	if err != nil {
		return false, fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	return confirmYesNo(rl)
}

func confirmYesNo(rl lineReader) (bool, error) {
	for {
		line, err := rl.Readline()
		if err != nil {
			return false, fmt.Errorf("readline error: %w", err)
		}

		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
	}
}

// ReadPassword prompts for a password without echoing the input.
func ReadPassword(prompt string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{})
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	password, err := rl.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("readline error: %w", err)
	}
	return string(password), nil
}
