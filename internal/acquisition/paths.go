package acquisition

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Rorical/ContentAnalyzer/internal/models"
)

// ExpandBrowse resolves a typed path or glob into selectable files. Only
// accepted extensions are offered, in lexical order.
func ExpandBrowse(input string) ([]models.SelectedFile, error) {
	pattern := expandHome(strings.TrimSpace(unquote(strings.TrimSpace(input))))
	if pattern == "" {
		return nil, nil
	}

	// An existing file is taken literally even if its name has glob metacharacters.
	if info, err := os.Stat(pattern); err == nil && info.Mode().IsRegular() {
		if !Accepts(pattern) {
			return nil, nil
		}
		return FilesFromPaths([]string{pattern}), nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var accepted []string
	for _, m := range matches {
		if Accepts(m) {
			accepted = append(accepted, m)
		}
	}
	return FilesFromPaths(accepted), nil
}

// FilesFromPaths stats each path and keeps the ones that are regular files.
func FilesFromPaths(paths []string) []models.SelectedFile {
	files := make([]models.SelectedFile, 0, len(paths))
	for _, p := range paths {
		f, err := models.FileFromPath(p)
		if err != nil {
			slog.Debug("acquisition.skip_path", "path", p, "error", err)
			continue
		}
		files = append(files, f)
	}
	return files
}

var windowsDrivePath = regexp.MustCompile(`(?:^|[\s'"])[A-Za-z]:\\`)

// ParseDropped splits the text a terminal pastes when files are dropped on it.
// Paths may be separated by whitespace or newlines, quoted, backslash-escaped
// or given as file:// URIs. On Windows, and for payloads carrying drive-letter
// paths, a backslash is a path separator rather than an escape.
func ParseDropped(payload string) []string {
	escapes := filepath.Separator != '\\' && !windowsDrivePath.MatchString(payload)
	return parseDropped(payload, escapes)
}

func parseDropped(payload string, backslashEscapes bool) []string {
	var (
		paths   []string
		current strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		paths = append(paths, normalizeDropped(current.String()))
		current.Reset()
		started = false
	}

	for _, r := range payload {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case backslashEscapes && r == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			started = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	out := paths[:0]
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeDropped(p string) string {
	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			return u.Path
		}
	}
	return expandHome(p)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
