package db

// GetDBTX returns the underlying database connection interface.
// The readiness check uses it to reach the pool behind the generated queries.
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
