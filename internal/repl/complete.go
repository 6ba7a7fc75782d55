package repl

import (
	"context"
	"strings"
)

// Completer returns full-line candidates for a partial command line.
type Completer interface {
	Complete(ctx context.Context, line string) []string
}

// autoCompleter adapts a Completer to readline.AutoCompleter.
type autoCompleter struct {
	ctx       context.Context
	completer Completer
}

// Do returns the suffixes that complete the text before pos, and the length
// of the word being completed.
func (a autoCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	word := prefix
	if i := strings.LastIndex(prefix, " "); i >= 0 {
		word = prefix[i+1:]
	}

	var out [][]rune
	for _, candidate := range a.completer.Complete(a.ctx, prefix) {
		if !strings.HasPrefix(candidate, prefix) {
			continue
		}
		out = append(out, []rune(candidate[len(prefix):]+" "))
	}
	return out, len([]rune(word))
}
