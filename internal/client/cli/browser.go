package cli

import (
	"os/exec"
	"runtime"
)

// openBrowser is a test seam for the billing hand-off. The default
// implementation launches the platform browser for the given URL; tests
// replace it to record the URL instead.
var openBrowser = func(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
