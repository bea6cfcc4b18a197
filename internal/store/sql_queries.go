package store

import (
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-panel/models"
)

var (
	eggVariableColumns = []string{
		"id",
		"egg_id",
		"name",
		"description",
		"env_variable",
		"default_value",
		"user_viewable",
		"user_editable",
		"rules",
		"created_at",
		"updated_at",
	}

	serverColumns = []string{"id", "uuid", "name", "egg_id", "created_at"}

	serverVariableColumns = []string{
		"id",
		"server_id",
		"variable_id",
		"variable_value",
		"created_at",
		"updated_at",
	}
)

func buildFindEggVariablesQuery(b sq.StatementBuilderType, eggID int64) (string, []any, error) {
	return b.Select(eggVariableColumns...).
		From("egg_variables").
		Where(sq.Eq{"egg_id": eggID}).
		OrderBy("id ASC").
		ToSql()
}

func buildInsertEggQuery(b sq.StatementBuilderType, egg models.Egg) (string, []any, error) {
	return b.Insert("eggs").
		Columns("name", "description").
		Values(egg.Name, egg.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildInsertEggVariableQuery(b sq.StatementBuilderType, eggID int64, v models.EggVariable) (string, []any, error) {
	return b.Insert("egg_variables").
		Columns("egg_id", "name", "description", "env_variable", "default_value", "user_viewable", "user_editable", "rules").
		Values(eggID, v.Name, v.Description, v.EnvVariable, v.DefaultValue, v.UserViewable, v.UserEditable, v.Rules).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildInsertServerQuery(b sq.StatementBuilderType, server models.Server) (string, []any, error) {
	return b.Insert("servers").
		Columns("uuid", "name", "egg_id").
		Values(server.UUID, server.Name, server.EggID).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildFindServerQuery(b sq.StatementBuilderType, serverID int64) (string, []any, error) {
	return b.Select(serverColumns...).
		From("servers").
		Where(sq.Eq{"id": serverID}).
		ToSql()
}

// buildUpsertServerVariablesQuery writes all values in one statement. Rows
// are emitted in variable id order so the argument list is deterministic.
func buildUpsertServerVariablesQuery(b sq.StatementBuilderType, serverID int64, values map[int64]string) (string, []any, error) {
	query := b.Insert("server_variables").
		Columns("server_id", "variable_id", "variable_value")

	for _, variableID := range sortedVariableIDs(values) {
		query = query.Values(serverID, variableID, values[variableID])
	}

	return query.
		Suffix("ON CONFLICT (server_id, variable_id) DO UPDATE SET variable_value = excluded.variable_value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildFindServerVariablesQuery(b sq.StatementBuilderType, serverID int64) (string, []any, error) {
	return b.Select(serverVariableColumns...).
		From("server_variables").
		Where(sq.Eq{"server_id": serverID}).
		OrderBy("variable_id ASC").
		ToSql()
}

func sortedVariableIDs(values map[int64]string) []int64 {
	ids := make([]int64, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
