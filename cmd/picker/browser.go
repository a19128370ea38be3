package main

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/TonnyWong1052/picker/internal/logging"
)

// expandURL substitutes the query-escaped value for every {} in template. A
// template without {} gets the value appended.
func expandURL(template, value string) string {
	escaped := url.QueryEscape(value)
	if !strings.Contains(template, "{}") {
		return template + escaped
	}
	return strings.ReplaceAll(template, "{}", escaped)
}

// openURLs opens one browser tab per value. Failures are logged; the list
// is on screen, so nothing is printed.
func openURLs(template string, values []string) {
	log := logging.WithComponent("browser")
	for _, v := range values {
		u := expandURL(template, v)
		if err := openBrowser(u); err != nil {
			log.WithError(err).WithField("url", u).Warn("failed to open browser")
			continue
		}
		log.WithField("url", u).Debug("opened browser")
	}
}

var startCommand = func(name string, args ...string) error {
	_, err := startDetached(exec.Command(name, args...))
	return err
}

// startDetached starts c and waits for it in the background so it does not
// linger as a zombie. The channel receives the result of Wait.
func startDetached(c *exec.Cmd) (<-chan error, error) {
	if err := c.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	return done, nil
}

func openBrowser(u string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	args = append(args, u)
	return startCommand(cmd, args...)
}
