package handlers

import (
	"net/http"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/response"
)

type BranchHandler struct {
	branchUsecase usecases.BranchUsecase
}

func NewBranchHandler(branchUsecase usecases.BranchUsecase) *BranchHandler {
	return &BranchHandler{branchUsecase: branchUsecase}
}

// CreateBranch godoc
// @Summary  Create a branch from another branch's current head
// @Tags     branches
// @Param    X-Owner-ID header string true "Owner id"
// @Param    repo path string true "Repository name"
// @Param    body body dtos.CreateBranchInput true "Branch"
// @Success  201 {object} dtos.Branch
// @Failure  409 {object} response.Response
// @Router   /repositories/{repo}/branches [post]
func (h *BranchHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateBranchInput
	if !decode(w, r, &req) {
		return
	}

	branch, err := h.branchUsecase.Create(r.Context(), owner, r.PathValue("repo"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.Branch{Name: branch.Name, Head: branch.HeadCommitID})
}

func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	branches, err := h.branchUsecase.List(r.Context(), owner, r.PathValue("repo"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromBranches(branches))
}
