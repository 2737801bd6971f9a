// internal/httpapi/context.go
package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Tenancy headers. An upstream gateway authenticates the caller and
// injects these; the API itself never resolves an entity without the
// account id.
const (
	headerAccountID = "X-Account-Id"
	headerUserID    = "X-User-Id"
)

var errMissingAccount = errors.New("account id header is required")
var errMissingUser = errors.New("user id header is required")

func accountIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(headerAccountID)
	if raw == "" {
		return uuid.Nil, errMissingAccount
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("account id header is not a valid uuid")
	}
	return id, nil
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(headerUserID)
	if raw == "" {
		return uuid.Nil, errMissingUser
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("user id header is not a valid uuid")
	}
	return id, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name + " in path")
	}
	return id, nil
}
