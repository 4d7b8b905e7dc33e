package handlers

import (
	"net/http"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/response"
)

type RepositoryHandler struct {
	gitRepositoryUsecase usecases.GitRepositoryUsecase
	authorUseCase        usecases.AuthorUseCase
}

func NewRepositoryHandler(gitRepositoryUsecase usecases.GitRepositoryUsecase, authorUseCase usecases.AuthorUseCase) *RepositoryHandler {
	return &RepositoryHandler{
		gitRepositoryUsecase: gitRepositoryUsecase,
		authorUseCase:        authorUseCase,
	}
}

// InitRepository godoc
// @Summary  Initialize a repository
// @Tags     repositories
// @Param    X-Owner-ID header string true "Owner id"
// @Param    body body dtos.RepositoryInput true "Repository"
// @Success  201 {object} dtos.InitRepositoryResponse
// @Success  200 {object} dtos.InitRepositoryResponse
// @Router   /repositories [post]
func (rh RepositoryHandler) InitRepository(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dtos.RepositoryInput
	if !decode(w, r, &req) {
		return
	}

	created, repo, err := rh.gitRepositoryUsecase.Init(r.Context(), owner, req)
	if err != nil {
		writeError(w, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	response.SuccessResponse(w, code, dtos.InitRepositoryResponse{
		Initialized: created,
		Repository:  dtos.FromRepository(*repo),
	})
}

func (rh RepositoryHandler) FetchAllRepositories(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	paging := getPagingInfo(r)
	page, err := rh.gitRepositoryUsecase.GetAll(r.Context(), owner, domain.PageQuery{Page: paging.Page, Limit: paging.Limit})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dtos.MultiRepositoriesResponse{
		Repositories: make([]dtos.Repository, 0, len(page.Repositories)),
		PageInfo:     dtos.FromPageInfo(page.PageInfo),
	}
	for _, repo := range page.Repositories {
		resp.Repositories = append(resp.Repositories, dtos.FromRepository(repo))
	}
	response.SuccessResponse(w, http.StatusOK, resp)
}

func (rh RepositoryHandler) FetchRepository(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	repo, err := rh.gitRepositoryUsecase.GetByName(r.Context(), owner, r.PathValue("repo"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromRepository(*repo))
}

// GetTopAuthors ranks commit authors by number of commits.
func (rh RepositoryHandler) GetTopAuthors(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	authors, err := rh.authorUseCase.GetTopAuthors(r.Context(), owner, r.PathValue("repo"), getPagingInfo(r).Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, authors)
}
