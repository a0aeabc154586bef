package http

import (
	"net/http"
	"time"

	apperrors "roomly/pkg/errors"
)

const dateLayout = "2006-01-02"

// ExtractDate reads an optional ?date=YYYY-MM-DD query parameter. A missing
// parameter yields the zero time; services treat that as "today".
func ExtractDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput("invalid date parameter, expected YYYY-MM-DD: " + raw)
	}
	return date, nil
}
