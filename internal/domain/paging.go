package domain

// PageQuery selects one page of a listing. Zero values fall back to defaults.
type PageQuery struct {
	Page  int
	Limit int
}

type PageInfo struct {
	TotalCount  int64
	HasNextPage bool
	Page        int
	Limit       int
	Count       int
}

type RepositoryPage struct {
	Repositories []Repository
	PageInfo     PageInfo
}
