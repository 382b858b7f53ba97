package startup

import (
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/db/memdb"
	"code.cloudfoundry.org/app-perfmon/db/sqldb"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/lager/v3"
)

// DatabaseConnection manages a database connection with cleanup
type DatabaseConnection[T any] struct {
	DB     T
	Closer func() error
	// Status is nil for stores without a connection pool.
	Status healthendpoint.DatabaseStatus
}

// CreatePerfmonDB connects to the configured SQL database, or keeps
// everything in memory when no url is configured.
func CreatePerfmonDB(dbConfig db.DatabaseConfig, sampleHistory int, logger lager.Logger) *DatabaseConnection[db.PerfmonDB] {
	if dbConfig.URL == "" {
		logger.Info("using-in-memory-store", lager.Data{"sampleHistory": sampleHistory})
		memDB := memdb.NewMemDB(sampleHistory, logger.Session("perfmon-memdb"))
		return &DatabaseConnection[db.PerfmonDB]{
			DB:     memDB,
			Closer: memDB.Close,
		}
	}

	perfmonDB, err := sqldb.NewPerfmonSQLDB(dbConfig, logger.Session("perfmon-db"))
	ExitOnError(err, logger, "failed to connect perfmon db", lager.Data{"dbConfig": dbConfig})
	return &DatabaseConnection[db.PerfmonDB]{
		DB:     perfmonDB,
		Closer: perfmonDB.Close,
		Status: perfmonDB,
	}
}
