package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/TonnyWong1052/picker/internal/config"
	apperrors "github.com/TonnyWong1052/picker/internal/errors"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, apperrors.ExitSuccess},
		{"canceled", apperrors.ErrUserCancelled(), apperrors.ExitUserCancel},
		{"empty list", apperrors.ErrEmptyItemList(), apperrors.ExitGenericError},
		{"io failure", apperrors.ErrTerminalIO("read", errors.New("eof")), apperrors.ExitGenericError},
		{"plain error", errors.New("boom"), apperrors.ExitGenericError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExpandURL(t *testing.T) {
	testCases := []struct {
		template, value, want string
	}{
		{"https://pkg.go.dev/{}", "fmt", "https://pkg.go.dev/fmt"},
		{"https://example.com/search?q={}", "a b&c", "https://example.com/search?q=a+b%26c"},
		{"https://example.com/?q=", "x", "https://example.com/?q=x"},
		{"{}/{}", "v", "v/v"},
	}
	for _, tc := range testCases {
		if got := expandURL(tc.template, tc.value); got != tc.want {
			t.Errorf("expandURL(%q, %q) = %q, want %q", tc.template, tc.value, got, tc.want)
		}
	}
}

func TestOpenURLs(t *testing.T) {
	var opened []string
	orig := startCommand
	startCommand = func(name string, args ...string) error {
		opened = append(opened, args[len(args)-1])
		if strings.HasSuffix(args[len(args)-1], "bad") {
			return errors.New("no browser")
		}
		return nil
	}
	t.Cleanup(func() { startCommand = orig })

	openURLs("https://x.test/{}", []string{"a", "bad", "b"})

	want := []string{"https://x.test/a", "https://x.test/bad", "https://x.test/b"}
	if diff := cmp.Diff(want, opened); diff != "" {
		t.Errorf("opened URLs mismatch (-want +got):\n%s", diff)
	}
}

func TestStartDetachedReapsChild(t *testing.T) {
	done, err := startDetached(exec.Command(os.Args[0], "-test.run=^$"))
	if err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("child exited with %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("child was not waited for")
	}

	if _, err := startDetached(exec.Command(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Error("startDetached() of a missing binary should fail")
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("alpha\r\n\n  \nbeta gamma\ndelta"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "beta gamma", "delta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadItems(t *testing.T) {
	items, err := loadItems([]string{"a", "b"}, "")
	if err != nil || len(items) != 2 || items[1].Label() != "b" {
		t.Fatalf("loadItems(args) = %v, %v", items, err)
	}

	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	items, err = loadItems(nil, path)
	if err != nil || len(items) != 2 || items[0].Value() != "one" {
		t.Fatalf("loadItems(file) = %v, %v", items, err)
	}

	if _, err := loadItems([]string{"a"}, path); err == nil {
		t.Error("args and --from-file together should fail")
	}
	if _, err := loadItems(nil, filepath.Join(t.TempDir(), "missing")); !apperrors.HasCode(err, apperrors.ErrIOFailure) {
		t.Errorf("missing file error = %v", err)
	}
}

// runCLI executes the root command against an isolated config file.
func runCLI(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPickerConfig, path)
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	c := config.Default()
	c.Logging.Output = config.LogOutputNone
	if err := c.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigPathCommand(t *testing.T) {
	path := quietConfig(t)
	out, err := runCLI(t, path, "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path printed %q, want %q", out, path)
	}
}

func TestConfigBindAndUnbind(t *testing.T) {
	path := quietConfig(t)

	if _, err := runCLI(t, path, "config", "bind", "one", "n", "down"); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if _, err := runCLI(t, path, "config", "bind", "many", "space", "none"); err != nil {
		t.Fatalf("bind: %v", err)
	}
	saved, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.SingleKeys["n"] != "down" || saved.MultiKeys["space"] != config.ActionNone {
		t.Errorf("bindings not saved: %v %v", saved.SingleKeys, saved.MultiKeys)
	}

	out, err := runCLI(t, path, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Key Bindings", "down", "finish"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, path, "config", "unbind", "one", "n"); err != nil {
		t.Fatalf("unbind: %v", err)
	}
	saved, err = config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := saved.SingleKeys["n"]; ok {
		t.Error("unbind did not remove the binding")
	}
}

func TestConfigBindRejectsInvalid(t *testing.T) {
	path := quietConfig(t)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, path, "config", "bind", "one", "x", "toggle"); err == nil {
		t.Fatal("bind accepted a multi-only action for one")
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("invalid bind modified the config file")
	}
}

func TestConfigCommandsRepairInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"single_keys": {"j": "jump"}, "logging": {"output": "none"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, path, "one", "a", "b"); !apperrors.HasCode(err, apperrors.ErrConfigValidation) {
		t.Fatalf("one with invalid config: err = %v", err)
	}

	out, err := runCLI(t, path, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("config path output %q does not name %q", out, path)
	}

	out, err = runCLI(t, path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "jump") {
		t.Errorf("config show hides the broken binding:\n%s", out)
	}

	if _, err := runCLI(t, path, "config", "unbind", "one", "j"); err != nil {
		t.Fatalf("config unbind: %v", err)
	}
	if _, err := config.LoadFrom(path); err != nil {
		t.Errorf("config still invalid after unbind: %v", err)
	}
}

func TestConfiguredRows(t *testing.T) {
	c := config.Default()
	c.SingleKeys = map[string]string{"k": "up", "j": "jump"}
	c.MultiKeys = map[string]string{"x": "toggle"}

	want := [][]string{
		{"Mode", "Key", "Action"},
		{config.ModeOne, "j", "jump"},
		{config.ModeOne, "k", "up"},
		{config.ModeMany, "x", "toggle"},
	}
	if diff := cmp.Diff(want, configuredRows(c)); diff != "" {
		t.Errorf("configuredRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingRows(t *testing.T) {
	c := config.Default()
	c.SingleKeys = map[string]string{"j": config.ActionNone}

	rows, err := bindingRows(c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Mode", "Key", "Action"}, rows[0]); diff != "" {
		t.Errorf("header mismatch:\n%s", diff)
	}
	// 6 single defaults minus j, 7 multi defaults, plus the header
	if len(rows) != 1+5+7 {
		t.Errorf("got %d rows", len(rows))
	}
	for _, r := range rows[1:] {
		if r[0] == config.ModeOne && r[1] == "j" {
			t.Error("removed binding listed")
		}
	}
}
