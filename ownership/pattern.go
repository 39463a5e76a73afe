package ownership

import "strings"

// patternKind tags the matching rule a pattern was classified into.
// Classification happens once at parse time, so repeated coverage checks
// never re-derive it.
type patternKind uint8

const (
	// kindExact is the fallback: the pattern only matches a path that is
	// byte-for-byte identical to it. Any syntax outside the four glob
	// forms below lands here, which makes unrecognized syntax
	// non-matching rather than an error.
	kindExact patternKind = iota
	// kindChildGlob is 'dir/*': immediate children of dir only.
	kindChildGlob
	// kindDescendant is 'dir/': anything under dir, at any depth.
	kindDescendant
	// kindExtension is '*.ext': any path with that extension, anywhere.
	kindExtension
	// kindPrefixExtension is 'prefix*.ext': paths with that extension
	// that are immediate children of prefix.
	kindPrefixExtension
)

// classifyPattern determines which matching rule applies to pattern and
// precomputes the directory/extension pieces the rule needs. The forms
// are checked in priority order and are mutually exclusive.
func classifyPattern(pattern string) (kind patternKind, dir string, ext string) {
	if strings.HasSuffix(pattern, "/*") {
		// Keep the trailing slash: 'foo/bar/*' covers children of 'foo/bar/'.
		return kindChildGlob, pattern[:len(pattern)-1], ""
	}
	if strings.HasSuffix(pattern, "/") {
		return kindDescendant, pattern, ""
	}
	if ext, ok := extensionGlob(pattern); ok {
		return kindExtension, "", ext
	}
	if dir, ext, ok := prefixExtensionGlob(pattern); ok {
		return kindPrefixExtension, dir, ext
	}
	return kindExact, "", ""
}

// extensionGlob reports whether pattern has the form '*.ext' with nothing
// else in it, returning '.ext'.
func extensionGlob(pattern string) (string, bool) {
	if !strings.HasPrefix(pattern, "*.") {
		return "", false
	}
	if !isWord(pattern[2:]) {
		return "", false
	}
	return pattern[1:], true
}

// prefixExtensionGlob reports whether pattern has the form 'prefix*.ext'
// with a non-empty prefix, returning the prefix (trailing slash stripped)
// and '.ext'.
func prefixExtensionGlob(pattern string) (string, string, bool) {
	star := strings.LastIndex(pattern, "*")
	if star <= 0 {
		return "", "", false
	}
	ext := pattern[star+1:]
	if len(ext) < 2 || ext[0] != '.' || !isWord(ext[1:]) {
		return "", "", false
	}
	prefix := strings.TrimSuffix(pattern[:star], "/")
	return prefix, ext, true
}

// isWord reports whether s is non-empty and made of letters, digits and
// underscores only, the same token class the extension forms accept.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// parentDir returns everything before the last slash of path, or "" when
// path has no directory part.
func parentDir(path string) string {
	slash := strings.LastIndex(path, "/")
	if slash < 0 {
		return ""
	}
	return path[:slash]
}

// Matches reports whether this entry's pattern covers path. Matching is
// case-sensitive and does no path normalization: a pattern with a leading
// slash will not cover the same path without one, so callers must supply
// paths in the same convention the manifest uses.
func (e Entry) Matches(path string) bool {
	// An identical path always matches, whatever form the pattern has.
	if e.Pattern == path {
		return true
	}
	switch e.kind {
	case kindChildGlob:
		// Exactly one path segment below the directory: 'foo/bar/*'
		// covers 'foo/bar/baz' but not 'foo/bar/baz/qux' or 'foo/bar'.
		rest, ok := strings.CutPrefix(path, e.dir)
		return ok && rest != "" && !strings.Contains(rest, "/")
	case kindDescendant:
		// Any strict descendant: 'foo/bar/' covers 'foo/bar/baz/qux'
		// but not 'foo/bar' itself.
		return len(path) > len(e.dir) && strings.HasPrefix(path, e.dir)
	case kindExtension:
		return strings.HasSuffix(path, e.ext)
	case kindPrefixExtension:
		// Same immediate-child restriction as 'dir/*', plus the
		// extension check.
		return strings.HasSuffix(path, e.ext) && parentDir(path) == e.dir
	}
	return false
}
