package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InputUtils reads interactive answers from In and writes prompts to Out.
type InputUtils struct {
	In  io.Reader
	Out io.Writer
}

// AskConfirmation asks user for yes/no confirmation. Anything other than
// y/yes, including EOF, counts as no.
func (i *InputUtils) AskConfirmation(message string, force bool) bool {
	if force {
		return true
	}
	fmt.Fprintf(i.Out, "%s (y/N): ", message)

	reader := bufio.NewReader(i.In)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
