package handlers

import (
	"net/http"

	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/utils/response"
	"github.com/google/uuid"
)

// parseID pulls the {id} path value and rejects anything that is not a UUID.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, errors.BadRequestError("Invalid id").WithError(err))
		return uuid.Nil, false
	}

	return id, true
}
