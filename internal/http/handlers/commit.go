package handlers

import (
	"net/http"
	"strconv"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/response"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

type CommitHandler struct {
	snapshotUsecase usecases.SnapshotUsecase
	historyUsecase  usecases.HistoryUsecase
}

func NewCommitHandler(snapshotUsecase usecases.SnapshotUsecase, historyUsecase usecases.HistoryUsecase) *CommitHandler {
	return &CommitHandler{snapshotUsecase: snapshotUsecase, historyUsecase: historyUsecase}
}

// Commit godoc
// @Summary  Commit the working tree to a branch
// @Tags     commits
// @Param    X-Owner-ID header string true "Owner id"
// @Param    repo path string true "Repository name"
// @Param    body body dtos.CommitInput true "Commit"
// @Success  201 {object} dtos.Commit
// @Failure  409 {object} response.Response
// @Router   /repositories/{repo}/commits [post]
func (h *CommitHandler) Commit(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dtos.CommitInput
	if !decode(w, r, &req) {
		return
	}

	commit, err := h.snapshotUsecase.Commit(r.Context(), owner, r.PathValue("repo"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.FromCommit(*commit))
}

func (h *CommitHandler) ShowCommit(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	detail, err := h.snapshotUsecase.Show(r.Context(), owner, r.PathValue("repo"), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.CommitDetailResponse{
		Commit: dtos.FromCommit(detail.Commit),
		Files:  detail.Paths,
	})
}

// Checkout godoc
// @Summary  Replace the working tree with a branch head
// @Tags     branches
// @Param    X-Owner-ID header string true "Owner id"
// @Param    repo path string true "Repository name"
// @Param    body body dtos.CheckoutInput true "Branch"
// @Success  200 {object} dtos.CheckoutResponse
// @Router   /repositories/{repo}/checkout [post]
func (h *CommitHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dtos.CheckoutInput
	if !decode(w, r, &req) {
		return
	}
	if err := validator.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.snapshotUsecase.Checkout(r.Context(), owner, r.PathValue("repo"), req.Branch)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.CheckoutResponse{
		Branch: result.Branch,
		Head:   result.HeadCommitID,
		Files:  result.Files,
	})
}

// Log godoc
// @Summary  Walk a branch's history, newest first
// @Tags     branches
// @Param    X-Owner-ID header string true "Owner id"
// @Param    repo path string true "Repository name"
// @Param    branch path string true "Branch name"
// @Param    limit query int false "Maximum entries"
// @Success  200 {object} dtos.LogResponse
// @Router   /repositories/{repo}/branches/{branch}/log [get]
func (h *CommitHandler) Log(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errcodes.ErrInvalidRequest)
			return
		}
		limit = n
	}

	branch := r.PathValue("branch")
	commits, err := h.historyUsecase.Log(r.Context(), owner, r.PathValue("repo"), branch, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dtos.LogResponse{Branch: branch, Entries: make([]dtos.Commit, 0, len(commits))}
	for _, c := range commits {
		resp.Entries = append(resp.Entries, dtos.FromCommit(c))
	}
	response.SuccessResponse(w, http.StatusOK, resp)
}
