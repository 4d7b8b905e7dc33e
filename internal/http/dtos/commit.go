package dtos

import "time"

// CommitInput is the body of a commit request. ExpectedHead, when set, must
// equal the branch head at commit time ("" expects a branch without commits).
type CommitInput struct {
	Branch       string  `json:"branch" validate:"omitempty,branchname"`
	Message      string  `json:"message" validate:"required"`
	AuthorName   string  `json:"author_name" validate:"max=255"`
	AuthorEmail  string  `json:"author_email" validate:"omitempty,email,max=255"`
	ExpectedHead *string `json:"expected_head,omitempty"`
}

type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Commit is one history entry as returned by commit, show and log.
type Commit struct {
	CommitID  string    `json:"commit_id"`
	SHA       string    `json:"sha"`
	ShortSHA  string    `json:"short_sha"`
	Parent    *string   `json:"parent"`
	Message   string    `json:"message"`
	Author    Author    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type CommitDetailResponse struct {
	Commit Commit   `json:"commit"`
	Files  []string `json:"files"`
}

type LogResponse struct {
	Branch  string   `json:"branch"`
	Entries []Commit `json:"entries"`
}

type TopAuthor struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CommitCount int64  `json:"commit_count"`
}
