package scraper

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/rs/zerolog/log"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// launchBrowser starts a headless Chrome configured for both local and
// container environments and connects to it.
func launchBrowser(chromeBin string) (*rod.Browser, error) {
	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-gpu").
		Set("disable-extensions").
		Set("window-size", "1920,1080").
		Set("user-agent", userAgent)

	if path := findChromiumPath(chromeBin); path != "" {
		log.Debug().Str("path", path).Msg("using chromium binary")
		l = l.Bin(path)
	}

	if isDockerEnvironment() {
		log.Debug().Msg("container environment detected, applying container browser flags")
		l = l.Set("disable-setuid-sandbox").
			Set("no-first-run").
			Set("disable-default-apps")
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return browser, nil
}

// findChromiumPath returns the configured binary if it exists, else the first
// Chrome/Chromium found in common locations. Empty lets rod download one.
func findChromiumPath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		log.Warn().Str("path", configured).Msg("configured chrome binary not found, searching defaults")
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/opt/google/chrome/chrome",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// isDockerEnvironment checks if running inside a container
func isDockerEnvironment() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		return strings.Contains(string(data), "docker") || strings.Contains(string(data), "containerd")
	}

	return false
}
