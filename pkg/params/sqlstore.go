package params

import (
	"database/sql"
	"fmt"
)

// SQLStore resolves parameter declarations against a SQL database.
// Operator overrides live in qos_parameter_overrides; each declaration
// records its effective value in qos_parameters so fleet tooling can
// inspect what every endpoint resolved to.
//
// Schema:
//
//	CREATE TABLE qos_parameter_overrides (
//	    name         TEXT PRIMARY KEY,
//	    value_kind   TEXT NOT NULL,           -- 'bool' | 'int' | 'string'
//	    bool_value   BOOLEAN,
//	    int_value    BIGINT,
//	    string_value TEXT
//	);
//
//	CREATE TABLE qos_parameters (
//	    name         TEXT PRIMARY KEY,
//	    value_kind   TEXT NOT NULL,
//	    bool_value   BOOLEAN,
//	    int_value    BIGINT,
//	    string_value TEXT,
//	    description  TEXT NOT NULL,
//	    read_only    BOOLEAN NOT NULL
//	);
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Declare implements Store.
func (s *SQLStore) Declare(name string, def Value, desc Descriptor) (Value, error) {
	effective := def

	override, found, err := s.lookupOverride(name)
	if err != nil {
		return Value{}, err
	}
	if found {
		if override.Kind() != def.Kind() {
			return Value{}, fmt.Errorf(
				"override for %s has type %s, expected %s", name, override.Kind(), def.Kind())
		}
		effective = override
	}

	if err := s.record(name, effective, desc); err != nil {
		return Value{}, err
	}
	return effective, nil
}

func (s *SQLStore) lookupOverride(name string) (Value, bool, error) {
	row := s.db.QueryRow(
		"SELECT value_kind, bool_value, int_value, string_value FROM qos_parameter_overrides WHERE name = $1",
		name)

	var kind string
	var boolVal sql.NullBool
	var intVal sql.NullInt64
	var strVal sql.NullString
	err := row.Scan(&kind, &boolVal, &intVal, &strVal)
	if err == sql.ErrNoRows {
		return Value{}, false, nil
	}
	if err != nil {
		return Value{}, false, fmt.Errorf("lookup override %s: %w", name, err)
	}

	switch kind {
	case "bool":
		return NewBool(boolVal.Bool), true, nil
	case "int":
		return NewInt(intVal.Int64), true, nil
	case "string":
		return NewString(strVal.String), true, nil
	default:
		return Value{}, false, fmt.Errorf("override %s has unknown value kind %q", name, kind)
	}
}

func (s *SQLStore) record(name string, v Value, desc Descriptor) error {
	var boolVal sql.NullBool
	var intVal sql.NullInt64
	var strVal sql.NullString
	switch v.Kind() {
	case KindBool:
		b, _ := v.Bool()
		boolVal = sql.NullBool{Bool: b, Valid: true}
	case KindInt:
		i, _ := v.Int()
		intVal = sql.NullInt64{Int64: i, Valid: true}
	case KindString:
		str, _ := v.Str()
		strVal = sql.NullString{String: str, Valid: true}
	}

	query := `
		INSERT INTO qos_parameters (name, value_kind, bool_value, int_value, string_value, description, read_only)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			value_kind = EXCLUDED.value_kind,
			bool_value = EXCLUDED.bool_value,
			int_value = EXCLUDED.int_value,
			string_value = EXCLUDED.string_value,
			description = EXCLUDED.description,
			read_only = EXCLUDED.read_only
	`
	_, err := s.db.Exec(query, name, v.Kind().String(), boolVal, intVal, strVal, desc.Description, desc.ReadOnly)
	if err != nil {
		return fmt.Errorf("record parameter %s: %w", name, err)
	}
	return nil
}
