package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtInNames = []string{
	"about", "auth", "chat", "clear", "compress", "editor", "memory",
	"quit", "stats", "theme", "tools", "get-to-know-my-project", "start-project",
}

func TestCommandsEmptyBeforeLoad(t *testing.T) {
	svc := NewCommandService(commands.StaticConfig{Root: t.TempDir()}, nil)

	assert.Empty(t, svc.Commands())
}

func TestLoadBuiltInCommands(t *testing.T) {
	svc := NewCommandService(commands.StaticConfig{Root: t.TempDir()}, nil)

	require.NoError(t, svc.LoadCommands(context.Background()))

	assert.Equal(t, builtInNames, commands.Names(svc.Commands()))
}

func TestLoadBuiltInCommandsWithValidationRules(t *testing.T) {
	root := t.TempDir()
	settingsDir := filepath.Join(root, "settings")
	require.NoError(t, os.MkdirAll(settingsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(settingsDir, "GP_validation.json"), []byte(`{}`), 0644))
	svc := NewCommandService(commands.StaticConfig{Root: root}, nil)

	require.NoError(t, svc.LoadCommands(context.Background()))

	names := commands.Names(svc.Commands())
	assert.Equal(t, append(append([]string{}, builtInNames...), "screen-tasks"), names)
}

func TestLoadCommandsIsIdempotent(t *testing.T) {
	svc := NewCommandService(commands.StaticConfig{Root: t.TempDir()}, nil)
	ctx := context.Background()

	require.NoError(t, svc.LoadCommands(ctx))
	first := commands.Names(svc.Commands())
	require.NoError(t, svc.LoadCommands(ctx))

	assert.Equal(t, first, commands.Names(svc.Commands()))
}

func TestInjectedLoaderIsExclusive(t *testing.T) {
	custom := []*commands.Command{{Name: "a"}, {Name: "b"}}
	calls := 0
	loader := func(context.Context, commands.Config) ([]*commands.Command, error) {
		calls++
		return custom, nil
	}
	svc := NewCommandService(commands.StaticConfig{}, loader)

	require.NoError(t, svc.LoadCommands(context.Background()))
	require.NoError(t, svc.LoadCommands(context.Background()))

	assert.Equal(t, 2, calls)
	got := svc.Commands()
	assert.Equal(t, []string{"a", "b"}, commands.Names(got))
	assert.Same(t, custom[0], got[0])

	// callers cannot mutate the stored list
	got[0] = nil
	assert.NotNil(t, svc.Commands()[0])
}

func TestLoaderErrorKeepsPreviousList(t *testing.T) {
	fail := false
	loader := func(context.Context, commands.Config) ([]*commands.Command, error) {
		if fail {
			return nil, errors.New("broken")
		}
		return []*commands.Command{{Name: "a"}}, nil
	}
	svc := NewCommandService(commands.StaticConfig{}, loader)
	require.NoError(t, svc.LoadCommands(context.Background()))

	fail = true
	err := svc.LoadCommands(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"a"}, commands.Names(svc.Commands()))
}

func TestHasValidationFiles(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, HasValidationFiles(filepath.Join(dir, "missing"), "_validation.json"))
	assert.False(t, HasValidationFiles(dir, "_validation.json"), "empty directory")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "X_validation.json"), 0755))
	assert.False(t, HasValidationFiles(dir, "_validation.json"), "directories do not count")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "GP_validation.json"), nil, 0644))
	assert.True(t, HasValidationFiles(dir, "_validation.json"))
}

func TestHasValidationFilesUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := filepath.Join(t.TempDir(), "settings")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GP_validation.json"), nil, 0644))
	require.NoError(t, os.Chmod(dir, 0000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	assert.False(t, HasValidationFiles(dir, "_validation.json"))
}

func TestHasValidationFilesOnRegularFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.False(t, HasValidationFiles(file, "_validation.json"))
}
