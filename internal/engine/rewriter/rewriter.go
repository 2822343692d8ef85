// Package rewriter retargets recorded compiler invocations at a sysroot.
package rewriter

import (
	"regexp"
	"strings"

	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	usrLocal        = "/usr/local/"
	usrLocalInclude = "/usr/local/include"
)

// includeFlag matches an -I or -isystem flag that starts an argument, the optional
// whitespace after it and the path. The leading boundary is captured and written back.
var includeFlag = regexp.MustCompile(`(^|\s)(-I|-isystem)(\s*)([\w/.|+-]+)`)

// Rewriter rewrites include flags of compile commands so they resolve inside a sysroot.
type Rewriter struct {
	rules domain.RewriteRules
}

// New creates a Rewriter that applies rules.
func New(rules domain.RewriteRules) *Rewriter {
	return &Rewriter{rules: rules}
}

// Rewrite returns command with every include flag redirected into sysroot and the
// --sysroot and --gcc-toolchain flags appended. The rest of the command is left as is.
//
// Rewrite is not idempotent: feeding its output back prefixes the sysroot again.
func (r *Rewriter) Rewrite(command, sysroot string) (string, error) {
	var b strings.Builder
	b.Grow(len(command) + 2*len(sysroot) + 32)

	last := 0
	for _, m := range includeFlag.FindAllStringSubmatchIndex(command, -1) {
		boundary := command[m[2]:m[3]]
		flag := command[m[4]:m[5]]
		sep := command[m[6]:m[7]]
		path := command[m[8]:m[9]]

		replaced, err := r.rewriteFlag(flag, sep, path, sysroot)
		if err != nil {
			return "", err
		}

		b.WriteString(command[last:m[0]])
		b.WriteString(boundary)
		b.WriteString(replaced)
		last = m[1]
	}
	b.WriteString(command[last:])

	b.WriteString(" --sysroot ")
	b.WriteString(sysroot)
	b.WriteString(" --gcc-toolchain=")
	b.WriteString(underSysroot(sysroot, "usr"))

	return b.String(), nil
}

// FixAll rewrites the command of every entry in db, in order.
func (r *Rewriter) FixAll(db *domain.Database, sysroot string) error {
	for i := range db.Entries {
		entry := &db.Entries[i]
		command, err := r.Rewrite(entry.Command, sysroot)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrRewriteFailed.Error())
			err = zerr.With(err, "entry", i)
			return zerr.With(err, "file", entry.File)
		}
		entry.Command = command
	}
	return nil
}

func (r *Rewriter) rewriteFlag(flag, sep, path, sysroot string) (string, error) {
	if r.keep(path) {
		return flag + sep + path, nil
	}

	if !strings.HasPrefix(path, usrLocal) || path == usrLocalInclude {
		return flag + sep + underSysroot(sysroot, path), nil
	}

	name := libraryName(path)
	replacements, ok := r.rules.Table.Lookup(name)
	if !ok {
		err := zerr.With(domain.ErrUnknownLibrary, "library", name)
		return "", zerr.With(err, "path", path)
	}

	flags := make([]string, 0, len(replacements))
	for _, repl := range replacements {
		target := repl.Path
		if repl.IsUnderSysroot() {
			target = underSysroot(sysroot, path)
		}
		flags = append(flags, flag+sep+target)
	}
	return strings.Join(flags, " "), nil
}

func (r *Rewriter) keep(path string) bool {
	for _, prefix := range r.rules.Keep {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// libraryName returns the first segment after /usr/local/, cut at its first '-'.
// "/usr/local/foo-1.0/include" yields "foo".
func libraryName(path string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, usrLocal), "/")
	name, _, _ := strings.Cut(segment, "-")
	return name
}

// underSysroot joins sysroot and path with exactly one slash, without cleaning either.
func underSysroot(sysroot, path string) string {
	return strings.TrimSuffix(sysroot, "/") + "/" + strings.TrimPrefix(path, "/")
}
