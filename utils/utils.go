package utils

import (
	"net/http"
	"strconv"
	"strings"

	"provender/globals"

	"github.com/google/uuid"
)

// GenerateID returns a short unique id with the given entity prefix,
// e.g. "r" + 12 hex chars for recipes.
func GenerateID(prefix string, n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return prefix + id[:n]
}

// GetUserIDFromRequest returns the authenticated user id stored in the
// request context, or "" for anonymous callers.
func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

type PageOptions struct {
	Page  int
	Limit int
}

func (p PageOptions) Skip() int64 { return int64((p.Page - 1) * p.Limit) }

// ParsePageOptions reads page/limit query parameters with sane defaults.
func ParsePageOptions(r *http.Request) PageOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 6
	}

	return PageOptions{Page: page, Limit: limit}
}

// ParseBoolParam treats "1" and "true" as true, everything else as false.
func ParseBoolParam(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	return v == "1" || strings.EqualFold(v, "true")
}
