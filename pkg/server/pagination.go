package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.openly.dev/pointy"
)

// page is the window requested through the page and limit query parameters.
type page struct {
	number int
	size   int
}

func (s *Server) requestedPage(r *http.Request) (page, error) {
	requested := page{number: 1, size: s.conf.Server.PageSize}

	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number < 1 {
			return requested, fmt.Errorf("%w: invalid page %q", ErrInvalidInput, raw)
		}

		requested.number = number
	}

	if raw := query.Get("limit"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return requested, fmt.Errorf("%w: invalid limit %q", ErrInvalidInput, raw)
		}

		requested.size = min(size, s.conf.Server.MaxPageSize)
	}

	return requested, nil
}

func (p page) offset() int {
	return (p.number - 1) * p.size
}

// paginate wraps results of the current page with links to its neighbours.
func paginate[T any](r *http.Request, current page, total int64, results []T) pageResponse[T] {
	response := pageResponse[T]{Count: total, Results: results}

	if int64(current.offset()+current.size) < total {
		response.Next = pointy.String(pageURL(r, current.number+1))
	}

	if current.number > 1 {
		response.Previous = pointy.String(pageURL(r, current.number-1))
	}

	return response
}

func pageURL(r *http.Request, number int) string {
	link := url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		link.Scheme = "https"
	}

	query := r.URL.Query()
	if number == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(number))
	}

	link.RawQuery = query.Encode()

	return link.String()
}
