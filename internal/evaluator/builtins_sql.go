package evaluator

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/funvibe/poly/internal/expr"
)

func registerSql() {
	wprim("sql/open", primSqlOpen)
	wprim("sql/exec", primSqlExec)
	wprim("sql/query", primSqlQuery)
	wprim("sql/close", primSqlClose)
}

// sqlHandle is the native payload carrying an open database.
type sqlHandle struct {
	dsn string
	db  *sql.DB
}

func (h *sqlHandle) String() string { return "sql " + h.dsn }

func wantSqlHandle(e expr.Expr) (*sqlHandle, error) {
	native, ok := e.(*expr.Native)
	if ok && len(native.Data) == 1 {
		if h, ok := native.Data[0].(*sqlHandle); ok {
			return h, nil
		}
	}
	return nil, &expr.InvalidTypeError{Expr: e, Want: "database handle"}
}

// sqlValue lowers an expression to a driver argument. Nil maps to NULL and
// symbols to their names.
func sqlValue(e expr.Expr) (any, error) {
	switch v := e.(type) {
	case *expr.Nil:
		return nil, nil
	case *expr.Int:
		if v.Value.IsInt64() {
			return v.Value.Int64(), nil
		}
		return v.Value.String(), nil
	case *expr.Float:
		return v.Value, nil
	case *expr.String:
		return v.Value, nil
	case *expr.Symbol:
		return v.Name, nil
	default:
		return nil, &expr.InvalidTypeError{Expr: e, Want: "scalar value"}
	}
}

// exprFromColumn lifts a scanned column back into the value algebra.
func exprFromColumn(v any) expr.Expr {
	switch col := v.(type) {
	case nil:
		return expr.TheNil
	case int64:
		return expr.NewInt(col)
	case float64:
		return &expr.Float{Value: col}
	case string:
		return &expr.String{Value: col}
	case []byte:
		return &expr.String{Value: string(col)}
	case bool:
		if col {
			return &expr.Symbol{Name: "true"}
		}
		return &expr.Symbol{Name: "false"}
	default:
		return expr.NewNative(col)
	}
}

// primSqlOpen opens a sqlite database and returns its handle as a native
// value. The DSN is passed through to the driver, so ":memory:" works.
func primSqlOpen(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	dsn, err := wantString(elems[0])
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn.Value)
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: dsn, Want: "sqlite DSN"}
	}
	return expr.NewNative(&sqlHandle{dsn: dsn.Value, db: db}), nil
}

// primSqlExec runs a statement with positional arguments and returns the
// number of affected rows.
func primSqlExec(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, -1)
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, &expr.InvalidTypeError{Expr: argExpr, Want: "handle and statement"}
	}
	handle, err := wantSqlHandle(elems[0])
	if err != nil {
		return nil, err
	}
	stmt, err := wantString(elems[1])
	if err != nil {
		return nil, err
	}
	sqlArgs, err := sqlValues(elems[2:])
	if err != nil {
		return nil, err
	}

	res, err := handle.db.Exec(stmt.Value, sqlArgs...)
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: stmt, Want: "SQL statement"}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}
	return expr.NewInt(affected), nil
}

// primSqlQuery runs a query and returns a proper list of maps, one per row,
// keyed by column-name symbols.
func primSqlQuery(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, -1)
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, &expr.InvalidTypeError{Expr: argExpr, Want: "handle and query"}
	}
	handle, err := wantSqlHandle(elems[0])
	if err != nil {
		return nil, err
	}
	query, err := wantString(elems[1])
	if err != nil {
		return nil, err
	}
	sqlArgs, err := sqlValues(elems[2:])
	if err != nil {
		return nil, err
	}

	rows, err := handle.db.Query(query.Value, sqlArgs...)
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: query, Want: "SQL query"}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &expr.InvalidTypeError{Expr: query, Want: "SQL query"}
	}

	var out []expr.Expr
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &expr.InvalidTypeError{Expr: query, Want: "SQL query"}
		}
		row := expr.NewMap()
		for i, col := range cols {
			row.Set(&expr.Symbol{Name: col}, exprFromColumn(cells[i]))
		}
		out = append(out, row)
	}
	return expr.MakeList(out, nil), nil
}

func primSqlClose(node expr.Node, env *expr.Env, argExpr expr.Expr) (expr.Expr, error) {
	elems, err := args(argExpr, 1)
	if err != nil {
		return nil, err
	}
	handle, err := wantSqlHandle(elems[0])
	if err != nil {
		return nil, err
	}
	handle.db.Close()
	return nil, nil
}

func sqlValues(elems []expr.Expr) ([]any, error) {
	out := make([]any, len(elems))
	for i, elem := range elems {
		v, err := sqlValue(elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
