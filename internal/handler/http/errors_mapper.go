package http

import (
	"errors"
	"net/http"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/service"
	"github.com/civibridge/mattersync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownDirection: http.StatusBadRequest,
	service.ErrTickInProgress:   http.StatusConflict,
	service.ErrNoRunInProgress:  http.StatusNotFound,
	service.ErrGroupNotLinked:   http.StatusNotFound,
	service.ErrMissingEmail:     http.StatusUnprocessableEntity,

	adapter.ErrNotFound:     http.StatusNotFound,
	adapter.ErrUnauthorized: http.StatusBadGateway,
	adapter.ErrForbidden:    http.StatusBadGateway,
	adapter.ErrConflict:     http.StatusConflict,

	store.ErrLinkNotFound:         http.StatusNotFound,
	store.ErrAmbiguousLink:        http.StatusConflict,
	store.ErrChannelAlreadyLinked: http.StatusConflict,
	store.ErrCursorNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
