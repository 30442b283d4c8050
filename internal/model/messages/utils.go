package messages

import "strings"

const commandParts = 2

// parseCommand splits "/cmd rest" into its parts. Text that does not start
// with a slash is not a command.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return split[0], split[1]
	}
	return text, ""
}
