package vfs

import "strings"

// Normalize collapses a path string into its canonical absolute form:
// segments are split on "/", empty segments and "." are dropped, and ".."
// pops the previously accepted segment. Popping past the root is a no-op,
// matching the leniency of a typical shell. The result always starts with
// "/"; degenerate input ("", ".", "../..") normalizes to "/".
//
// Normalize is pure and total, and idempotent:
// Normalize(Normalize(p)) == Normalize(p).
func Normalize(p string) string {
	var segs []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
			// skip
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}
	return "/" + strings.Join(segs, "/")
}

// Resolve turns a target path into an absolute normalized path. An absolute
// target is normalized directly; a relative target is joined onto cur.
// Resolution is purely syntactic and never fails; existence is a Lookup
// concern.
func Resolve(cur, target string) string {
	if strings.HasPrefix(target, "/") {
		return Normalize(target)
	}
	if cur == "/" {
		return Normalize("/" + target)
	}
	return Normalize(cur + "/" + target)
}

// segments splits a normalized absolute path into its name components.
// The root path yields nil.
func segments(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// splitParent returns the normalized parent path and the final name of a
// normalized absolute path. The root has no parent; callers must not pass "/".
func splitParent(p string) (parent, name string) {
	i := strings.LastIndexByte(p, '/')
	name = p[i+1:]
	if i == 0 {
		return "/", name
	}
	return p[:i], name
}

// Base returns the final name component of a normalized absolute path,
// or "/" for the root.
func Base(p string) string {
	if p == "/" {
		return "/"
	}
	_, name := splitParent(p)
	return name
}
