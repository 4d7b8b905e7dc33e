package dtos

import "time"

type RepositoryInput struct {
	Owner string `json:"owner" validate:"max=255"`
	Name  string `json:"name" validate:"required,max=255,excludes=/"`
}

type Repository struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
}

type InitRepositoryResponse struct {
	Initialized bool       `json:"initialized"`
	Repository  Repository `json:"repository"`
}

type MultiRepositoriesResponse struct {
	Repositories []Repository `json:"repositories"`
	PageInfo     PagingInfo   `json:"page_info"`
}

type APIPagingDto struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type PagingInfo struct {
	TotalCount  int64 `json:"total_count"`
	HasNextPage bool  `json:"has_next_page"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Count       int   `json:"count"`
}
