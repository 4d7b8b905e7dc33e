package domain

// FileState describes how a working file differs from the branch head.
type FileState string

const (
	FileAdded    FileState = "added"
	FileModified FileState = "modified"
	FileDeleted  FileState = "deleted"
)

type StatusEntry struct {
	Path  string
	State FileState
}

// FileDiff is a line-oriented comparison of one path between head and working tree.
type FileDiff struct {
	Path    string
	Head    string
	Working string
	Hunks   []DiffHunk
}

// DiffOp is one of "equal", "insert" or "delete".
type DiffOp string

const (
	DiffEqual  DiffOp = "equal"
	DiffInsert DiffOp = "insert"
	DiffDelete DiffOp = "delete"
)

type DiffHunk struct {
	Op   DiffOp
	Text string
}
