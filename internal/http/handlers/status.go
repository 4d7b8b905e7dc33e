package handlers

import (
	"net/http"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/response"
)

type StatusHandler struct {
	statusUsecase usecases.StatusUsecase
}

func NewStatusHandler(statusUsecase usecases.StatusUsecase) *StatusHandler {
	return &StatusHandler{statusUsecase: statusUsecase}
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	branch, entries, err := h.statusUsecase.Status(r.Context(), owner, r.PathValue("repo"), r.PathValue("branch"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dtos.StatusResponse{Branch: branch.Name, Head: branch.HeadCommitID, Entries: make([]dtos.StatusEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dtos.StatusEntry{Path: e.Path, State: string(e.State)})
	}
	response.SuccessResponse(w, http.StatusOK, resp)
}

func (h *StatusHandler) Diff(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	diff, err := h.statusUsecase.Diff(r.Context(), owner, r.PathValue("repo"), r.PathValue("branch"), r.PathValue("path"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dtos.DiffResponse{Path: diff.Path, Hunks: make([]dtos.DiffHunk, 0, len(diff.Hunks))}
	for _, hunk := range diff.Hunks {
		resp.Hunks = append(resp.Hunks, dtos.DiffHunk{Op: string(hunk.Op), Text: hunk.Text})
	}
	response.SuccessResponse(w, http.StatusOK, resp)
}
