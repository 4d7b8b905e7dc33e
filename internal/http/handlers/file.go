package handlers

import (
	"net/http"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/response"
)

type FileHandler struct {
	workTreeUsecase usecases.WorkTreeUsecase
}

func NewFileHandler(workTreeUsecase usecases.WorkTreeUsecase) *FileHandler {
	return &FileHandler{workTreeUsecase: workTreeUsecase}
}

// WriteFile godoc
// @Summary  Write a file in the working tree
// @Tags     files
// @Param    X-Owner-ID header string true "Owner id"
// @Param    repo path string true "Repository name"
// @Param    path path string true "File path"
// @Param    body body dtos.WriteFileInput true "Content"
// @Success  200 {object} dtos.File
// @Router   /repositories/{repo}/files/{path} [put]
func (h *FileHandler) WriteFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dtos.WriteFileInput
	if !decode(w, r, &req) {
		return
	}

	path, err := h.workTreeUsecase.WriteFile(r.Context(), owner, r.PathValue("repo"), r.PathValue("path"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.File{Path: path})
}

func (h *FileHandler) ReadFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	file, err := h.workTreeUsecase.ReadFile(r.Context(), owner, r.PathValue("repo"), r.PathValue("path"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.File{Path: file.Path, Content: file.Content})
}

func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := h.workTreeUsecase.DeleteFile(r.Context(), owner, r.PathValue("repo"), r.PathValue("path")); err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *FileHandler) ListTree(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	paths, err := h.workTreeUsecase.Tree(r.Context(), owner, r.PathValue("repo"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dtos.TreeResponse{Tree: make([]dtos.TreeEntry, 0, len(paths))}
	for _, p := range paths {
		resp.Tree = append(resp.Tree, dtos.TreeEntry{Path: p})
	}
	response.SuccessResponse(w, http.StatusOK, resp)
}
