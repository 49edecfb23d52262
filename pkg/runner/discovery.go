package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds SWON files matching opts and returns their absolute paths,
// sorted and deduplicated. An explicitly named file is kept whatever its
// extension, unless an exclude glob matches it.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}
		if !matchAny(d.rel(absPath), opts.ExcludeGlobs) {
			d.add(absPath)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	ctx        context.Context
	workDir    string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	files      []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walk adds matching files under root. Hidden entries below root are skipped.
func (d *discoverer) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")
		rels := d.relPaths(root, path)

		if entry.IsDir() {
			if hidden || matchAnyPath(rels, d.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			if target.IsDir() {
				if !d.opts.FollowSymlinks {
					return nil
				}
				realPath, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // unresolvable targets are skipped
				}
				return d.walk(realPath)
			}
		}

		if d.matches(path, rels...) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// relPaths returns path relative to the working directory and, when it
// differs, relative to the walked root. Globs may match either form.
func (d *discoverer) relPaths(root, path string) []string {
	rels := []string{d.rel(path)}
	if fromRoot, err := filepath.Rel(root, path); err == nil && fromRoot != "." && fromRoot != rels[0] {
		rels = append(rels, fromRoot)
	}
	return rels
}

// matches reports whether path has a SWON extension and its relative forms
// pass the include and exclude globs.
func (d *discoverer) matches(path string, rels ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.ContainsFunc(d.extensions, func(e string) bool { return strings.ToLower(e) == ext }) {
		return false
	}
	if matchAnyPath(rels, d.opts.ExcludeGlobs) {
		return false
	}
	return len(d.opts.IncludeGlobs) == 0 || matchAnyPath(rels, d.opts.IncludeGlobs)
}

func matchAnyPath(rels, patterns []string) bool {
	return slices.ContainsFunc(rels, func(rel string) bool { return matchAny(rel, patterns) })
}

func matchAny(rel string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool { return matchGlob(rel, p) })
}

// matchGlob matches a relative path against a glob. A pattern without a
// slash also matches the base name. "**" matches any number of segments.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
	}
	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := filepath.Match(pattern, filepath.Base(path))
		return ok
	}
	return false
}

// matchSegments matches path segments against pattern segments, where a
// "**" segment consumes zero or more path segments. A trailing "**" also
// matches the directory itself, so "vendor/**" excludes "vendor".
func matchSegments(path, pattern []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(path); i++ {
			if matchSegments(path[i:], pattern[1:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	if ok, _ := filepath.Match(pattern[0], path[0]); !ok {
		return false
	}
	return matchSegments(path[1:], pattern[1:])
}
