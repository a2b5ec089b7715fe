package repository

import (
	"shareit/internal/domains/booking/model"
	gDto "shareit/shared/dto"
	"time"
)

const (
	argNow      = "now"
	argNowStart = "now_start"
	argNowEnd   = "now_end"
)

func statusFilter(status model.Status) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldStatus,
		Value:    status,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}
}

// stateFilter translates a list state into a where clause evaluated at now.
// ALL yields no filters.
func stateFilter(state model.State, now time.Time) []any {
	switch state {
	case model.StateCurrent:
		return []any{
			gDto.Filter{ArgName: argNowStart, Field: model.FieldStartDate, Value: now, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{ArgName: argNowEnd, Field: model.FieldEndDate, Value: now, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		}
	case model.StatePast:
		return []any{
			statusFilter(model.StatusApproved),
			gDto.Filter{ArgName: argNow, Field: model.FieldEndDate, Value: now, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		}
	case model.StateFuture:
		return []any{
			statusFilter(model.StatusApproved),
			gDto.Filter{ArgName: argNow, Field: model.FieldEndDate, Value: now, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		}
	case model.StateWaiting:
		return []any{statusFilter(model.StatusWaiting)}
	case model.StateRejected:
		return []any{statusFilter(model.StatusRejected)}
	default:
		return nil
	}
}

func bookerFilter(bookerID string, state model.State, now time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldBookerID, Value: bookerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	return gDto.FilterGroup{
		Filters:  append(filters, stateFilter(state, now)...),
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func ownerFilter(ownerID string, state model.State, now time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldItemOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName},
	}

	return gDto.FilterGroup{
		Filters:  append(filters, stateFilter(state, now)...),
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// intersectingFilter matches bookings of the item in one of the blocking
// statuses whose closed interval shares an instant with the candidate.
func intersectingFilter(itemID string, interval model.Interval, blocking []model.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Value: itemID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "candidate_end", Field: model.FieldStartDate, Value: interval.End, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{ArgName: "candidate_start", Field: model.FieldEndDate, Value: interval.Start, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: blocking, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func completedFilter(bookerID, itemID string, now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookerID, Value: bookerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldItemID, Value: itemID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			statusFilter(model.StatusApproved),
			gDto.Filter{ArgName: argNow, Field: model.FieldEndDate, Value: now, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func approvedByItemsFilter(itemIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Value: itemIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			statusFilter(model.StatusApproved),
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
