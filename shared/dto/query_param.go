package dto

import (
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// NewOffsetParams translates a from/size pair into one-based page params.
// The page index is from/size (integer division) when from > 0, otherwise the
// first page, so a from that is not a multiple of size is rounded down to the
// start of its page.
func NewOffsetParams(from, size int) (QueryParams, error) {
	if from < 0 {
		return QueryParams{}, failure.InvalidFromParam
	}

	if size <= 0 {
		return QueryParams{}, failure.InvalidSizeParam
	}

	page := 0
	if from > 0 {
		page = from / size
	}

	return QueryParams{
		Page:  page + constant.DefaultValuePage,
		Limit: size,
	}, nil
}

// FromOffsetRequest reads the from and size query parameters of the request.
// Missing values fall back to from=0 and the given default size.
func (q *QueryParams) FromOffsetRequest(r *http.Request, defaultSize int) error {
	queryParams := r.URL.Query()

	from := constant.DefaultValueFrom
	size := defaultSize

	if size <= 0 {
		size = constant.DefaultValueSize
	}

	if value := queryParams.Get(constant.RequestParamFrom); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return failure.InvalidFromParam
		}

		from = parsed
	}

	if value := queryParams.Get(constant.RequestParamSize); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return failure.InvalidSizeParam
		}

		size = parsed
	}

	params, err := NewOffsetParams(from, size)
	if err != nil {
		return err
	}

	q.Page = params.Page
	q.Limit = params.Limit

	return nil
}
