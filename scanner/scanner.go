package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes a formula file found by a scan.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree looking for formula files.
type Scanner struct {
	rootDir    string
	extensions []string
	ignored    []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Ignore excludes the given paths, and everything below them, from the scan.
// Relative paths are resolved against the scan root.
func (s *Scanner) Ignore(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(s.rootDir, p)
		}
		s.ignored = append(s.ignored, filepath.Clean(p))
	}
}

// Scan returns the matching files sorted by path. Hidden directories are
// skipped.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if s.isIgnored(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != s.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isIgnored(path string) bool {
	clean := filepath.Clean(path)
	for _, ig := range s.ignored {
		if clean == ig || strings.HasPrefix(clean, ig+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
