package chromecapture

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveChromePath picks the browser executable: the explicit path, then
// $CHROME_PATH, then the first installed candidate for the platform.
// It returns "" when nothing is found.
func ResolveChromePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("CHROME_PATH"); env != "" {
		return env
	}
	for _, c := range candidates(goos, os.Getenv) {
		if p := lookExecutable(c); p != "" {
			return p
		}
	}
	return ""
}

// candidates lists Chromium builds before Chrome for each platform.
func candidates(platform string, getenv func(string) string) []string {
	switch platform {
	case "darwin":
		return []string{
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
		}
	case "windows":
		var out []string
		for _, root := range []string{getenv("PROGRAMFILES"), getenv("PROGRAMFILES(X86)"), getenv("LOCALAPPDATA")} {
			if root == "" {
				continue
			}
			out = append(out,
				root+`\Chromium\Application\chrome.exe`,
				root+`\Google\Chrome\Application\chrome.exe`,
			)
		}
		return out
	default:
		return []string{"chromium", "chromium-browser", "google-chrome-stable", "google-chrome"}
	}
}

// lookExecutable stats absolute paths and searches $PATH for bare names.
func lookExecutable(nameOrPath string) string {
	if filepath.IsAbs(nameOrPath) || (len(nameOrPath) > 1 && nameOrPath[1] == ':') {
		if _, err := os.Stat(nameOrPath); err == nil {
			return nameOrPath
		}
		return ""
	}
	if p, err := exec.LookPath(nameOrPath); err == nil {
		return p
	}
	return ""
}
