package httpadapter

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
)

func scopeOf(r *http.Request) port.Scope {
	return port.Scope{
		Dataset: chi.URLParam(r, "dataset"),
		Period:  chi.URLParam(r, "period"),
	}
}

// countriesParam accepts both countries=TR,AZ and repeated parameters.
func countriesParam(q url.Values) []string {
	var out []string
	for _, v := range q["countries"] {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// modeParam parses the filter mode. Without a mode a country list means
// include and no list means no filtering at all.
func modeParam(q url.Values, countries []string) (domain.FilterMode, error) {
	s := q.Get("mode")
	if s == "" {
		if len(countries) > 0 {
			return domain.Include, nil
		}
		return domain.Exclude, nil
	}
	return domain.ParseFilterMode(s)
}

// topParam returns 0 when top is absent so the configured default applies.
func topParam(q url.Values) (int, error) {
	s := q.Get("top")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, domain.InvalidArgument("top must be a positive integer, got %q", s)
	}
	return n, nil
}

func thresholdParam(q url.Values) (*float64, error) {
	s := q.Get("threshold")
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, domain.InvalidArgument("threshold must be a number, got %q", s)
	}
	return &v, nil
}
