package repository

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"
	"tourcrm/infras/localdb"
	"tourcrm/infras/otel"
	"tourcrm/shared/constant"
	"tourcrm/shared/dto"
	"tourcrm/shared/logger"

	"github.com/shopspring/decimal"
)

// Local is the embedded-store twin of Repository. It renders the same named
// parameter queries against the SQLite engine, so a domain repository exposes
// identical behavior no matter which adapter backs it.
type Local[T any] struct {
	store         *localdb.Store
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewLocal[T any](entitasName, tableName, primaryColumn string, store *localdb.Store, otl otel.Otel) Local[T] {
	var zero T

	reflectType := reflect.TypeOf(zero)
	columns, insertColumns := getColumns(tableName, reflectType)

	valueOf := reflect.ValueOf(zero)
	method := valueOf.MethodByName("GetJoinQuery")
	joinQueryStr := ""

	if method.IsValid() {
		joinQuery := method.Call([]reflect.Value{})

		if len(joinQuery) > 0 {
			joinQueryStr = joinQuery[0].String()
		}
	}

	return Local[T]{
		store:         store,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQueryStr,
		InsertColumns: insertColumns,
	}
}

func (repo *Local[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	fields := fieldValues(reflect.ValueOf(model))

	placeholders := []string{}
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.store.Execute(ctx, query, namedArgs(fields)...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Local[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s) AS found", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.store.Query(ctx, query, namedArgs(args)...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return len(rows) > 0 && localdb.Bool(rows[0], "found"), nil
}

func (repo *Local[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	var model T

	where, args := repo.whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectQuery(columns...), repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.store.Query(ctx, query, namedArgs(args)...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	if len(rows) == 0 {
		return model, nil
	}

	decodeRow(rows[0], &model)

	return model, nil
}

func (repo *Local[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.whereClause(filter)

	var ordering, pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	} else if params.Limit > 0 {
		args["limit"] = params.Limit

		pagination = "LIMIT :limit"
	}

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectQuery(columns...), repo.table, repo.join, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.store.Query(ctx, query, namedArgs(args)...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	models := make([]T, len(rows))
	for i, row := range rows {
		decodeRow(row, &models[i])
	}

	return models, nil
}

func (repo *Local[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.whereClause(filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) AS total FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.store.Query(ctx, query, namedArgs(args)...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	if len(rows) == 0 {
		return 0, nil
	}

	return localdb.Int(rows[0], "total"), nil
}

func (repo *Local[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return errRequiredFilter
	}

	updateField := []string{}
	for col := range maps.Keys(mod) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}
	maps.Copy(args, mod)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", repo.table, strings.Join(updateField, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.store.Execute(ctx, query, namedArgs(args)...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Local[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelLocalStoreScopeName, repo.entitas))
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.store.Execute(ctx, query, namedArgs(args)...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Local[T]) whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

func (repo *Local[T]) selectQuery(columnsParam ...string) string {
	columns := []string{}

	for _, col := range repo.columns {
		if len(columnsParam) > 0 && !slices.Contains(columnsParam, col.name) {
			continue
		}

		switch {
		case col.table == "":
			columns = append(columns, col.name)
		case col.alias != "":
			columns = append(columns, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			// Qualified columns come back keyed by bare name, alias them so
			// row decoding finds them under the db tag.
			columns = append(columns, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.name))
		}
	}

	return strings.Join(columns, ", ")
}

func namedArgs(args map[string]any) []any {
	out := make([]any, 0, len(args))
	for name, value := range args {
		out = append(out, sql.Named(name, value))
	}

	return out
}

// fieldValues flattens a model into a db tag keyed map, descending into
// embedded structs the same way getColumns does.
func fieldValues(val reflect.Value) map[string]any {
	out := map[string]any{}

	reflectType := val.Type()
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			maps.Copy(out, fieldValues(val.Field(i)))

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || field.Tag.Get("table") != "" {
			continue
		}

		out[dbTag] = val.Field(i).Interface()
	}

	return out
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf((*time.Time)(nil))
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// decodeRow populates a model from a decoded result row using db tags.
func decodeRow[T any](row localdb.Row, dest *T) {
	decodeValue(row, reflect.ValueOf(dest).Elem())
}

func decodeValue(row localdb.Row, val reflect.Value) {
	reflectType := val.Type()
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			decodeValue(row, val.Field(i))

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}
		if _, ok := row[dbTag]; !ok {
			continue
		}

		target := val.Field(i)
		switch {
		case field.Type == timeType:
			target.Set(reflect.ValueOf(localdb.Time(row, dbTag)))
		case field.Type == timePtrType:
			target.Set(reflect.ValueOf(localdb.TimePtr(row, dbTag)))
		case field.Type == decimalType:
			target.Set(reflect.ValueOf(localdb.Decimal(row, dbTag)))
		case field.Type.Kind() == reflect.String:
			target.SetString(localdb.String(row, dbTag))
		case field.Type.Kind() == reflect.Bool:
			target.SetBool(localdb.Bool(row, dbTag))
		case field.Type.Kind() >= reflect.Int && field.Type.Kind() <= reflect.Int64:
			target.SetInt(int64(localdb.Int(row, dbTag)))
		}
	}
}
