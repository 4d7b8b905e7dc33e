package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/response"
)

// OwnerHeader carries the caller's opaque owner id. It is trusted as given.
const OwnerHeader = "X-Owner-ID"

func statusFor(kind errcodes.Kind) int {
	switch kind {
	case errcodes.KindNotFound:
		return http.StatusNotFound
	case errcodes.KindConflict:
		return http.StatusConflict
	case errcodes.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := errcodes.KindOf(err)
	response.KindErrorResponse(w, statusFor(kind), string(kind), err.Error())
}

func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := strings.TrimSpace(r.Header.Get(OwnerHeader))
	if owner == "" {
		writeError(w, errcodes.ErrOwnerRequired)
		return "", false
	}
	return owner, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		response.KindErrorResponse(w, http.StatusBadRequest, string(errcodes.KindValidation), "Invalid request body")
		return false
	}
	return true
}

func getPagingInfo(r *http.Request) dtos.APIPagingDto {
	var paging dtos.APIPagingDto

	paging.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	paging.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))

	return paging
}
