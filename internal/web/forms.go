package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"rental-console/internal/domain"
)

// pathID pulls the numeric {id} route variable. The route patterns only
// match digits, so a parse failure means a broken route table.
func pathID(r *http.Request) int32 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id)
}

func formStr(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func formInt32(r *http.Request, key string) int32 {
	v, _ := strconv.ParseInt(formStr(r, key), 10, 32)
	return int32(v)
}

func formInt32Ptr(r *http.Request, key string) *int32 {
	raw := formStr(r, key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	out := int32(v)
	return &out
}

func formFloatPtr(r *http.Request, key string) *float64 {
	raw := formStr(r, key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formCents parses a dollar amount typed by the operator, like "75" or
// "75.50". Unparseable input comes back as zero and gets caught by the
// amount validators.
func formCents(r *http.Request, key string) domain.Cents {
	raw := formStr(r, key)
	if raw == "" {
		return 0
	}
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return domain.CentsFromDollars(v)
}

func formCentsPtr(r *http.Request, key string) *domain.Cents {
	if formStr(r, key) == "" {
		return nil
	}
	c := formCents(r, key)
	return &c
}

// formDate parses the yyyy-mm-dd or datetime-local value of a date input.
// A zero Timestamp falls through to the required-field validators.
func formDate(r *http.Request, key string) domain.Timestamp {
	ts, err := domain.ParseTimestamp(formStr(r, key))
	if err != nil {
		return domain.Timestamp{}
	}
	return ts
}

// formDateOnly is formDate for fields bound to backend DATE columns,
// which take the bare yyyy-mm-dd wire form.
func formDateOnly(r *http.Request, key string) domain.Date {
	return domain.Date{Timestamp: formDate(r, key)}
}

func formBool(r *http.Request, key string) bool {
	v := formStr(r, key)
	return v == "true" || v == "on" || v == "1"
}

// formPage reads the ?page query parameter, defaulting to the first page.
func formPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
