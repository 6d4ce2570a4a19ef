package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB que os repositórios usam; *sql.Tx
// também o satisfaz, então um repositório pode rodar dentro de uma
// transação sem mudanças
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
