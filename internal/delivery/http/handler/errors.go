package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/policy"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/response"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

// writeDenied writes a policy denial with the status it carries.
// It reports false when err is not a denial.
func writeDenied(w http.ResponseWriter, err error) bool {
	var denied *policy.DeniedError
	if !errors.As(err, &denied) {
		return false
	}

	response.JSON(w, denied.Code, response.Response{
		Success: denied.Code < http.StatusBadRequest,
		Message: denied.Reason,
	})
	return true
}

// writeUnexpected hides the raw error unless expose is set.
func writeUnexpected(w http.ResponseWriter, statusCode int, message string, err error, expose bool) {
	var detail interface{}
	if expose && err != nil {
		detail = err.Error()
	}
	response.Error(w, statusCode, message, detail)
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
