package booking

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	"github.com/m04kA/SMC-ShareIt/pkg/psqlbuilder"
)

// Колонки бронирования вместе с вещью и автором (порядок важен для scan)
var bookingColumns = []string{
	"b.id",
	"b.start_ts",
	"b.end_ts",
	"b.status",
	"i.id",
	"i.name",
	"i.description",
	"i.available",
	"i.owner_id",
	"i.request_id",
	"u.id",
	"u.name",
	"u.email",
}

// selectBookings базовый SELECT бронирований с JOIN вещи и автора
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

// scopeColumn колонка, по которой фильтруется выборка для участника
func scopeColumn(scope domain.BookingScope) string {
	if scope == domain.ScopeOwner {
		return "i.owner_id"
	}
	return "b.booker_id"
}

// statePredicates условия окна выборки относительно now
// ALL не добавляет условий
func statePredicates(state domain.BookingState, now time.Time) ([]squirrel.Sqlizer, error) {
	switch state {
	case domain.StateAll:
		return nil, nil
	case domain.StateCurrent:
		return []squirrel.Sqlizer{
			squirrel.LtOrEq{"b.start_ts": now},
			squirrel.Gt{"b.end_ts": now},
		}, nil
	case domain.StatePast:
		return []squirrel.Sqlizer{squirrel.Lt{"b.end_ts": now}}, nil
	case domain.StateFuture:
		return []squirrel.Sqlizer{squirrel.Gt{"b.start_ts": now}}, nil
	case domain.StateWaiting:
		return []squirrel.Sqlizer{squirrel.Eq{"b.status": string(domain.StatusWaiting)}}, nil
	case domain.StateRejected:
		return []squirrel.Sqlizer{squirrel.Eq{"b.status": string(domain.StatusRejected)}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
}

// buildListQuery один параметризованный запрос для всех окон и обоих участников
func buildListQuery(filter domain.BookingFilter) (squirrel.SelectBuilder, error) {
	predicates, err := statePredicates(filter.State, filter.Now)
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	builder := selectBookings().
		Where(squirrel.Eq{scopeColumn(filter.Scope): filter.UserID})

	for _, p := range predicates {
		builder = builder.Where(p)
	}

	return builder.
		OrderBy("b.start_ts DESC", "b.id DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Limit()), nil
}

// Соседние бронирования вещи: последнее завершившееся и ближайшее будущее.
// Отклонённые не учитываются. DISTINCT ON берёт по одной строке на вещь.

func buildLastQuery(itemIDs []int64, now time.Time) squirrel.SelectBuilder {
	return selectBookings().
		Options("DISTINCT ON (b.item_id)").
		Where(squirrel.Eq{"b.item_id": itemIDs}).
		Where(squirrel.Lt{"b.end_ts": now}).
		Where(squirrel.NotEq{"b.status": string(domain.StatusRejected)}).
		OrderBy("b.item_id", "b.end_ts DESC")
}

func buildNextQuery(itemIDs []int64, now time.Time) squirrel.SelectBuilder {
	return selectBookings().
		Options("DISTINCT ON (b.item_id)").
		Where(squirrel.Eq{"b.item_id": itemIDs}).
		Where(squirrel.Gt{"b.start_ts": now}).
		Where(squirrel.NotEq{"b.status": string(domain.StatusRejected)}).
		OrderBy("b.item_id", "b.start_ts ASC")
}

// buildFinishedQuery завершившееся (не отклонённое) бронирование вещи пользователем
func buildFinishedQuery(itemID, bookerID int64, now time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select("b.id").
		From("bookings b").
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Eq{"b.booker_id": bookerID}).
		Where(squirrel.Lt{"b.end_ts": now}).
		Where(squirrel.NotEq{"b.status": string(domain.StatusRejected)}).
		Limit(1)
}
