// Package digest computes the checksums and commit hashes stored alongside
// snapshots and commits.
package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/zeebo/xxh3"
)

// Checksum returns the xxh3-128 hex digest of content.
func Checksum(content string) string {
	return fmt.Sprintf("%x", xxh3.HashString128(content).Bytes())
}

// Entry is one path of a tree together with its content checksum.
type Entry struct {
	Path     string
	Checksum string
}

// TreeHash returns a stable hash of a file set. Entry order does not matter.
func TreeHash(entries []Entry) string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var b strings.Builder
	for _, e := range sorted {
		b.WriteString(e.Path)
		b.WriteByte(0)
		b.WriteString(e.Checksum)
		b.WriteByte('\n')
	}
	return fmt.Sprintf("%x", xxh3.HashString128(b.String()).Bytes())
}

// CommitInput is the information folded into a commit hash.
type CommitInput struct {
	TreeHash    string
	ParentSHA   string
	AuthorName  string
	AuthorEmail string
	Message     string
	When        time.Time
}

// CommitSHA hashes a git-style commit payload as a git commit object.
// The result only identifies the commit; it is not readable by git.
func CommitSHA(in CommitInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tree %s\n", in.TreeHash)
	if in.ParentSHA != "" {
		fmt.Fprintf(&b, "parent %s\n", in.ParentSHA)
	}
	sig := fmt.Sprintf("%s <%s> %d.%09d +0000", in.AuthorName, in.AuthorEmail, in.When.Unix(), in.When.Nanosecond())
	fmt.Fprintf(&b, "author %s\n", sig)
	fmt.Fprintf(&b, "committer %s\n", sig)
	b.WriteString("\n")
	b.WriteString(in.Message)

	return plumbing.ComputeHash(plumbing.CommitObject, []byte(b.String())).String()
}
