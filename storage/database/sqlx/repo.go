package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

func orderBy(ordering ...core.DBOrdering) string {
	orderList := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		orderList = append(orderList, ord.String())
	}
	return " ORDER BY " + strings.Join(orderList, ", ")
}

// checkAffected returns notFound when res touched no row.
func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading rows affected")
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// queryPage counts `table` and selects one page of it into dest.
func queryPage(ctx context.Context, db core.DBExecutor, dest interface{}, columns, table string, page core.Page, ordering ...core.DBOrdering) (int, error) {
	var total int
	if err := db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, errors.Wrapf(err, "counting %s", table)
	}
	q := "SELECT " + columns + " FROM " + table + orderBy(ordering...) + " LIMIT $1 OFFSET $2"
	if err := db.SelectContext(ctx, dest, q, page.Limit(), page.Offset()); err != nil {
		return 0, errors.Wrapf(err, "querying %s", table)
	}
	return total, nil
}

// insertReturningID runs a named INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, db core.DBExecutor, query string, arg interface{}) (int, error) {
	q, args, err := db.BindNamed(query, arg)
	if err != nil {
		return 0, errors.Wrap(err, "binding named query")
	}
	var id int
	if err = db.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
