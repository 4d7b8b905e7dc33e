package repository

import "github.com/just-nibble/snapvcs/internal/domain"

const (
	DEFAULTPAGE  = 1
	DEFAULTLIMIT = 20
	MAXLIMIT     = 100
)

func getPaginationInfo(query domain.PageQuery) (domain.PageQuery, int) {
	var offset int
	// load defaults
	if query.Page <= 0 {
		query.Page = DEFAULTPAGE
	}
	if query.Limit <= 0 {
		query.Limit = DEFAULTLIMIT
	}
	if query.Limit > MAXLIMIT {
		query.Limit = MAXLIMIT
	}

	if query.Page > 1 {
		offset = query.Limit * (query.Page - 1)
	}
	return query, offset
}

func getPagingInfo(query domain.PageQuery, total int64, count int) domain.PageInfo {
	return domain.PageInfo{
		TotalCount:  total,
		HasNextPage: int64(query.Page*query.Limit) < total,
		Page:        query.Page,
		Limit:       query.Limit,
		Count:       count,
	}
}
