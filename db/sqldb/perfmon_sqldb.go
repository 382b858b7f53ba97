package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type PerfmonSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.PerfmonDB = &PerfmonSQLDB{}

func NewPerfmonSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*PerfmonSQLDB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-perfmon-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-perfmon-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return NewPerfmonSQLDBWithConnection(dbConfig, sqldb, logger), nil
}

func NewPerfmonSQLDBWithConnection(dbConfig db.DatabaseConfig, sqldb *sqlx.DB, logger lager.Logger) *PerfmonSQLDB {
	return &PerfmonSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}
}

func (pdb *PerfmonSQLDB) Close() error {
	err := pdb.sqldb.Close()
	if err != nil {
		pdb.logger.Error("close-perfmon-db", err, lager.Data{"dbConfig": pdb.dbConfig})
		return err
	}
	return nil
}

func (pdb *PerfmonSQLDB) Ping() error {
	return pdb.sqldb.Ping()
}

func (pdb *PerfmonSQLDB) GetDBStatus() sql.DBStats {
	return pdb.sqldb.Stats()
}

func (pdb *PerfmonSQLDB) SaveSample(ctx context.Context, sample *models.Sample) error {
	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal sample: %w", err)
	}
	query := pdb.sqldb.Rebind("INSERT INTO performance_samples(session_id, user_id, environment, timestamp, payload) VALUES(?, ?, ?, ?, ?)")
	_, err = pdb.sqldb.ExecContext(ctx, query,
		sample.Metadata.SessionID, sample.Metadata.User(), string(sample.Metadata.Environment), sample.Metadata.Timestamp.UTC(), string(payload))
	if err != nil {
		pdb.logger.Error("insert-sample-into-performance-samples-table", err, lager.Data{"query": query, "sessionId": sample.Metadata.SessionID})
	}
	return err
}

func (pdb *PerfmonSQLDB) RetrieveSamples(ctx context.Context, start, end time.Time, limit int, orderType db.OrderType) ([]*models.Sample, error) {
	query := "SELECT payload FROM performance_samples WHERE timestamp >= ? AND timestamp < ? ORDER BY timestamp " + orderType.SQL()
	args := []interface{}{start.UTC(), end.UTC()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query = pdb.sqldb.Rebind(query)

	var payloads []string
	if err := pdb.sqldb.SelectContext(ctx, &payloads, query, args...); err != nil {
		pdb.logger.Error("retrieve-samples-from-performance-samples-table", err, lager.Data{"query": query})
		return nil, err
	}
	samples := make([]*models.Sample, 0, len(payloads))
	for _, payload := range payloads {
		sample := &models.Sample{}
		if err := json.Unmarshal([]byte(payload), sample); err != nil {
			pdb.logger.Error("unmarshal-sample-payload", err)
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (pdb *PerfmonSQLDB) PruneSamples(ctx context.Context, before time.Time) error {
	query := pdb.sqldb.Rebind("DELETE FROM performance_samples WHERE timestamp < ?")
	_, err := pdb.sqldb.ExecContext(ctx, query, before.UTC())
	if err != nil {
		pdb.logger.Error("failed-prune-samples-from-performance-samples-table", err, lager.Data{"query": query, "before": before})
	}
	return err
}

type alertRow struct {
	ID              string    `db:"id"`
	Type            string    `db:"type"`
	Severity        string    `db:"severity"`
	Message         string    `db:"message"`
	Timestamp       time.Time `db:"timestamp"`
	MetricName      string    `db:"metric_name"`
	MetricValue     float64   `db:"metric_value"`
	MetricThreshold float64   `db:"metric_threshold"`
	Metadata        string    `db:"metadata"`
	Status          string    `db:"status"`
}

func (pdb *PerfmonSQLDB) SaveAlerts(ctx context.Context, alerts []*models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	txn, err := pdb.sqldb.BeginTxx(ctx, nil)
	if err != nil {
		pdb.logger.Error("failed-to-start-transaction", err)
		return err
	}
	query := pdb.sqldb.Rebind("INSERT INTO performance_alerts(id, type, severity, message, timestamp, metric_name, metric_value, metric_threshold, metadata, status) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	for _, alert := range alerts {
		metadata, err := json.Marshal(alert.Metadata)
		if err != nil {
			_ = txn.Rollback()
			return fmt.Errorf("marshal alert metadata: %w", err)
		}
		_, err = txn.ExecContext(ctx, query, alert.ID, string(alert.Type), string(alert.Severity), alert.Message, alert.Timestamp.UTC(),
			alert.Metric.Name, alert.Metric.Value, alert.Metric.Threshold, string(metadata), string(alert.Status))
		if err != nil {
			pdb.logger.Error("insert-alert-into-performance-alerts-table", err, lager.Data{"query": query, "alertId": alert.ID})
			_ = txn.Rollback()
			return err
		}
	}
	err = txn.Commit()
	if err != nil {
		pdb.logger.Error("failed-to-commit-transaction", err)
		_ = txn.Rollback()
		return err
	}
	return nil
}

func (pdb *PerfmonSQLDB) RetrieveAlerts(ctx context.Context, start, end time.Time, limit int) ([]*models.Alert, error) {
	query := "SELECT id, type, severity, message, timestamp, metric_name, metric_value, metric_threshold, metadata, status FROM performance_alerts WHERE timestamp >= ? AND timestamp < ? ORDER BY timestamp DESC"
	args := []interface{}{start.UTC(), end.UTC()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query = pdb.sqldb.Rebind(query)

	var rows []alertRow
	if err := pdb.sqldb.SelectContext(ctx, &rows, query, args...); err != nil {
		pdb.logger.Error("retrieve-alerts-from-performance-alerts-table", err, lager.Data{"query": query})
		return nil, err
	}
	alerts := make([]*models.Alert, 0, len(rows))
	for _, row := range rows {
		alert := &models.Alert{
			ID:        row.ID,
			Type:      models.AlertType(row.Type),
			Severity:  models.Severity(row.Severity),
			Message:   row.Message,
			Timestamp: row.Timestamp,
			Metric: models.AlertMetric{
				Name:      row.MetricName,
				Value:     row.MetricValue,
				Threshold: row.MetricThreshold,
			},
			Status: models.AlertStatus(row.Status),
		}
		if row.Metadata != "" {
			if err := json.Unmarshal([]byte(row.Metadata), &alert.Metadata); err != nil {
				pdb.logger.Error("unmarshal-alert-metadata", err, lager.Data{"alertId": row.ID})
				return nil, err
			}
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (pdb *PerfmonSQLDB) UpdateAlertStatus(ctx context.Context, id string, status models.AlertStatus) error {
	query := pdb.sqldb.Rebind("UPDATE performance_alerts SET status = ? WHERE id = ?")
	return pdb.updateStatus(ctx, query, string(status), id)
}

func (pdb *PerfmonSQLDB) PruneAlerts(ctx context.Context, before time.Time) error {
	query := pdb.sqldb.Rebind("DELETE FROM performance_alerts WHERE timestamp < ?")
	_, err := pdb.sqldb.ExecContext(ctx, query, before.UTC())
	if err != nil {
		pdb.logger.Error("failed-prune-alerts-from-performance-alerts-table", err, lager.Data{"query": query, "before": before})
	}
	return err
}

type recommendationRow struct {
	ID             string    `db:"id"`
	Category       string    `db:"category"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Impact         string    `db:"impact"`
	Effort         string    `db:"effort"`
	Metrics        string    `db:"metrics"`
	Implementation string    `db:"implementation"`
	CreatedAt      time.Time `db:"created_at"`
	Status         string    `db:"status"`
}

func (pdb *PerfmonSQLDB) SaveRecommendations(ctx context.Context, recommendations []*models.OptimizationRecommendation) error {
	if len(recommendations) == 0 {
		return nil
	}
	txn, err := pdb.sqldb.BeginTxx(ctx, nil)
	if err != nil {
		pdb.logger.Error("failed-to-start-transaction", err)
		return err
	}
	query := pdb.sqldb.Rebind("INSERT INTO optimization_recommendations(id, category, title, description, impact, effort, metrics, implementation, created_at, status) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	for _, rec := range recommendations {
		metrics, err := json.Marshal(rec.Metrics)
		if err != nil {
			_ = txn.Rollback()
			return fmt.Errorf("marshal recommendation metrics: %w", err)
		}
		implementation, err := json.Marshal(rec.Implementation)
		if err != nil {
			_ = txn.Rollback()
			return fmt.Errorf("marshal recommendation implementation: %w", err)
		}
		_, err = txn.ExecContext(ctx, query, rec.ID, string(rec.Category), rec.Title, rec.Description, string(rec.Impact), string(rec.Effort),
			string(metrics), string(implementation), rec.CreatedAt.UTC(), string(rec.Status))
		if err != nil {
			pdb.logger.Error("insert-recommendation-into-optimization-recommendations-table", err, lager.Data{"query": query, "recommendationId": rec.ID})
			_ = txn.Rollback()
			return err
		}
	}
	err = txn.Commit()
	if err != nil {
		pdb.logger.Error("failed-to-commit-transaction", err)
		_ = txn.Rollback()
		return err
	}
	return nil
}

func (pdb *PerfmonSQLDB) RetrieveRecommendations(ctx context.Context, since time.Time, limit int) ([]*models.OptimizationRecommendation, error) {
	query := "SELECT id, category, title, description, impact, effort, metrics, implementation, created_at, status FROM optimization_recommendations WHERE created_at >= ? ORDER BY created_at DESC"
	args := []interface{}{since.UTC()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	query = pdb.sqldb.Rebind(query)

	var rows []recommendationRow
	if err := pdb.sqldb.SelectContext(ctx, &rows, query, args...); err != nil {
		pdb.logger.Error("retrieve-recommendations-from-optimization-recommendations-table", err, lager.Data{"query": query})
		return nil, err
	}
	recommendations := make([]*models.OptimizationRecommendation, 0, len(rows))
	for _, row := range rows {
		rec := &models.OptimizationRecommendation{
			ID:          row.ID,
			Category:    models.RecommendationCategory(row.Category),
			Title:       row.Title,
			Description: row.Description,
			Impact:      models.Level(row.Impact),
			Effort:      models.Level(row.Effort),
			CreatedAt:   row.CreatedAt,
			Status:      models.RecommendationStatus(row.Status),
		}
		if err := json.Unmarshal([]byte(row.Metrics), &rec.Metrics); err != nil {
			pdb.logger.Error("unmarshal-recommendation-metrics", err, lager.Data{"recommendationId": row.ID})
			return nil, err
		}
		if err := json.Unmarshal([]byte(row.Implementation), &rec.Implementation); err != nil {
			pdb.logger.Error("unmarshal-recommendation-implementation", err, lager.Data{"recommendationId": row.ID})
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations, nil
}

func (pdb *PerfmonSQLDB) UpdateRecommendationStatus(ctx context.Context, id string, status models.RecommendationStatus) error {
	query := pdb.sqldb.Rebind("UPDATE optimization_recommendations SET status = ? WHERE id = ?")
	return pdb.updateStatus(ctx, query, string(status), id)
}

func (pdb *PerfmonSQLDB) updateStatus(ctx context.Context, query string, status string, id string) error {
	result, err := pdb.sqldb.ExecContext(ctx, query, status, id)
	if err != nil {
		pdb.logger.Error("update-status", err, lager.Data{"query": query, "id": id, "status": status})
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return db.ErrDoesNotExist
	}
	return nil
}

func (pdb *PerfmonSQLDB) RetrieveRecentApiHealth(ctx context.Context, n int) ([]*models.ApiHealthRecord, error) {
	query := pdb.sqldb.Rebind("SELECT endpoint, status, response_time, error_rate, checked_at FROM api_health ORDER BY checked_at DESC LIMIT ?")
	records := []*models.ApiHealthRecord{}
	err := pdb.sqldb.SelectContext(ctx, &records, query, n)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		pdb.logger.Error("retrieve-api-health-from-api-health-table", err, lager.Data{"query": query})
		return nil, err
	}
	return records, nil
}
