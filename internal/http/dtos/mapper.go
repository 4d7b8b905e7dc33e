package dtos

import "github.com/just-nibble/snapvcs/internal/domain"

func FromCommit(c domain.Commit) Commit {
	return Commit{
		CommitID:  c.ID,
		SHA:       c.SHA,
		ShortSHA:  c.ShortSHA(),
		Parent:    c.ParentID,
		Message:   c.Message,
		Author:    Author{Name: c.Author.Name, Email: c.Author.Email},
		Timestamp: c.CreatedAt,
	}
}

func FromRepository(r domain.Repository) Repository {
	return Repository{
		ID:            r.ID,
		Owner:         r.OwnerName,
		Name:          r.Name,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
	}
}

func FromBranches(branches []domain.Branch) BranchesResponse {
	resp := BranchesResponse{
		Branches: make([]string, 0, len(branches)),
		Items:    make([]Branch, 0, len(branches)),
	}
	for _, b := range branches {
		resp.Branches = append(resp.Branches, b.Name)
		resp.Items = append(resp.Items, Branch{Name: b.Name, Head: b.HeadCommitID})
	}
	return resp
}

func FromPageInfo(p domain.PageInfo) PagingInfo {
	return PagingInfo{
		TotalCount:  p.TotalCount,
		HasNextPage: p.HasNextPage,
		Page:        p.Page,
		Limit:       p.Limit,
		Count:       p.Count,
	}
}
