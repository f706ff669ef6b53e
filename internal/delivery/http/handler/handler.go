package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// IdempotencyKeyHeader lets clients retry creating requests safely.
const IdempotencyKeyHeader = "Idempotency-Key"

func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// writeError renders a usecase error. Errors without a known kind are
// reported with the fallback message only.
func writeError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, context.DeadlineExceeded) {
		response.Fail(w, http.StatusGatewayTimeout, "Request timed out", "TIMEOUT")
		return
	}

	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(w, fallback)
		return
	}
	response.Fail(w, status, err.Error(), apperror.Kind(err))
}
