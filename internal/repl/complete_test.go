package repl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticCompleter []string

func (c staticCompleter) Complete(context.Context, string) []string { return c }

func TestAutoCompleter(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		candidates []string
		want       []string
		wantLen    int
	}{
		{"single", "/cl", []string{"/clear"}, []string{"ear "}, 3},
		{"many", "/c", []string{"/chat", "/clear"}, []string{"hat ", "lear "}, 2},
		{"subcommand", "/chat l", []string{"/chat list"}, []string{"ist "}, 1},
		{"foreign candidates skipped", "/x", []string{"/chat"}, nil, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autoCompleter{ctx: context.Background(), completer: staticCompleter(tt.candidates)}
			line := []rune(tt.line)

			got, n := a.Do(line, len(line))

			var gotStrings []string
			for _, g := range got {
				gotStrings = append(gotStrings, string(g))
			}
			assert.Equal(t, tt.want, gotStrings)
			assert.Equal(t, tt.wantLen, n)
		})
	}
}
