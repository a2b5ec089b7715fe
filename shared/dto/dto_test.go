package dto_test

import (
	"net/http"
	"net/url"
	"shareit/shared/constant"
	"shareit/shared/dto"
	"shareit/shared/failure"
	"testing"
	"time"
)

func TestNewOffsetParams(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		size     int
		expected dto.QueryParams
		wantErr  error
	}{
		{
			name:     "first page",
			from:     0,
			size:     10,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "exact multiple of size",
			from:     20,
			size:     10,
			expected: dto.QueryParams{Page: 3, Limit: 10},
		},
		{
			name:     "from smaller than size is rounded down to the first page",
			from:     5,
			size:     10,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "from not a multiple of size is rounded down",
			from:     15,
			size:     10,
			expected: dto.QueryParams{Page: 2, Limit: 10},
		},
		{
			name:    "negative from",
			from:    -1,
			size:    10,
			wantErr: failure.InvalidFromParam,
		},
		{
			name:    "zero size",
			from:    0,
			size:    0,
			wantErr: failure.InvalidSizeParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := dto.NewOffsetParams(tt.from, tt.size)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestQueryParams_FromOffsetRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
		wantCode    int
	}{
		{
			name:        "defaults",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{Page: constant.DefaultValuePage, Limit: 20},
		},
		{
			name:        "from and size",
			queryParams: map[string]string{"from": "4", "size": "2"},
			expected:    dto.QueryParams{Page: 3, Limit: 2},
		},
		{
			name:        "invalid from",
			queryParams: map[string]string{"from": "abc"},
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "negative size",
			queryParams: map[string]string{"size": "-5"},
			wantCode:    http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/bookings")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			params := dto.QueryParams{}
			err = params.FromOffsetRequest(req, 20)

			if tt.wantCode != 0 {
				if failure.GetCode(err) != tt.wantCode {
					t.Errorf("expected code %d, got %d", tt.wantCode, failure.GetCode(err))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		argName  string
	}{
		{
			name:     "equal with table",
			filter:   dto.Filter{Field: "status", Value: "WAITING", Operator: dto.FilterOperatorEq, Table: "bookings"},
			expected: "bookings.status = :status",
			argName:  "status",
		},
		{
			name:     "strictly less",
			filter:   dto.Filter{Field: "end_date", Value: now, Operator: dto.FilterOperatorLess, Table: "bookings"},
			expected: "bookings.end_date < :end_date",
			argName:  "end_date",
		},
		{
			name:     "strictly greater with arg name",
			filter:   dto.Filter{ArgName: "now", Field: "start_date", Value: now, Operator: dto.FilterOperatorGreater},
			expected: "start_date > :now",
			argName:  "now",
		},
		{
			name:     "less or equal",
			filter:   dto.Filter{Field: "start_date", Value: now, Operator: dto.FilterOperatorLessEq},
			expected: "start_date <= :start_date",
			argName:  "start_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, where)
			}

			if _, ok := args[tt.argName]; !ok {
				t.Errorf("expected argument %s to be set", tt.argName)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "item_id", Value: "7", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: []string{"WAITING", "APPROVED"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(item_id = :item_id AND status IN (:status_0, :status_1))"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
