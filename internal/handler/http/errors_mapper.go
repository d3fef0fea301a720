package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-item-sync/internal/service"
)

// errorStatusMap is consulted after timeouts are ruled out, since a timed
// out operation may also wrap a transport error.
var errorStatusMap = map[error]int{
	service.ErrConfiguration:     http.StatusServiceUnavailable,
	service.ErrNoSyncRecord:      http.StatusNotFound,
	service.ErrBackup:            http.StatusInternalServerError,
	service.ErrRestore:           http.StatusUnprocessableEntity,
	service.ErrTransport:         http.StatusBadGateway,
	service.ErrInvalidResolution: http.StatusBadRequest,
}

func statusFromError(err error) int {
	if errors.Is(err, service.ErrTimeout) {
		return http.StatusGatewayTimeout
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
