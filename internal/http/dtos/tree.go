package dtos

type WriteFileInput struct {
	Content string `json:"content"`
}

type File struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

type TreeEntry struct {
	Path string `json:"path"`
}

type TreeResponse struct {
	Tree []TreeEntry `json:"tree"`
}

type CreateBranchInput struct {
	Name string `json:"name" validate:"required,branchname"`
	From string `json:"from" validate:"omitempty,branchname"`
}

type Branch struct {
	Name string  `json:"name"`
	Head *string `json:"head"`
}

type BranchesResponse struct {
	Branches []string `json:"branches"`
	Items    []Branch `json:"items"`
}

type CheckoutInput struct {
	Branch string `json:"branch" validate:"required,branchname"`
}

type CheckoutResponse struct {
	Branch string  `json:"branch"`
	Head   *string `json:"head"`
	Files  int     `json:"files"`
}

type StatusEntry struct {
	Path  string `json:"path"`
	State string `json:"state"`
}

type StatusResponse struct {
	Branch  string        `json:"branch"`
	Head    *string       `json:"head"`
	Entries []StatusEntry `json:"entries"`
}

type DiffHunk struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

type DiffResponse struct {
	Path  string     `json:"path"`
	Hunks []DiffHunk `json:"hunks"`
}
