package item

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	"github.com/m04kA/SMC-ShareIt/pkg/psqlbuilder"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

func selectItems() squirrel.SelectBuilder {
	return psqlbuilder.Select(itemColumns...).From("items")
}

func buildOwnerQuery(ownerID int64, page domain.Page) squirrel.SelectBuilder {
	return selectItems().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit())
}

// buildSearchQuery доступные вещи, у которых text встречается в названии или описании (без учёта регистра)
func buildSearchQuery(text string, page domain.Page) squirrel.SelectBuilder {
	pattern := "%" + escapeLike(text) + "%"

	return selectItems().
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit())
}

func buildByRequestsQuery(requestIDs []int64) squirrel.SelectBuilder {
	return selectItems().
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("id ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, чтобы поиск был по подстроке
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
