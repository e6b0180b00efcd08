package dataset

import (
	"context"
	"embed"
	stderrors "errors"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GreenScore-Intelligence/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SourcePostgres labels the database-backed dataset in logs and metrics.
const SourcePostgres = "postgres"

// PostgresRepository loads the capacity dataset from a Postgres table, for
// deployments where the dataset is curated outside the binary.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgresRepository connects, verifies the connection, and applies any
// pending schema migrations.
func NewPostgresRepository(ctx context.Context, dsn string, logger logging.Logger) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "creating connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "pinging database")
	}

	repo := &PostgresRepository{pool: pool, logger: logger.Named("dataset.postgres")}
	if err := repo.migrate(); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

func (r *PostgresRepository) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "opening migration source")
	}
	db := stdlib.OpenDBFromPool(r.pool)
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "creating migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "creating migrator")
	}
	if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "applying migrations")
	}
	r.logger.Info("schema migrations applied")
	return nil
}

// Load reads the full region table.  Row order follows region name so the
// snapshot is deterministic across restarts.
func (r *PostgresRepository) Load(ctx context.Context) ([]region.Region, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, solar_mw, wind_mw, small_hydro_mw, bio_power_mw, large_hydro_mw,
		       dominant, coastal, arid_desert, mountain, high_biomass
		FROM regions
		ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "querying regions")
	}
	defer rows.Close()

	var regions []region.Region
	for rows.Next() {
		var rec region.Region
		if err := rows.Scan(
			&rec.Name, &rec.SolarMW, &rec.WindMW, &rec.SmallHydroMW, &rec.BioMW, &rec.LargeHydroMW,
			&rec.Geography.Dominant, &rec.Geography.Coastal, &rec.Geography.AridDesert,
			&rec.Geography.Mountain, &rec.Geography.HighBiomass,
		); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scanning region row")
		}
		regions = append(regions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterating region rows")
	}
	if err := region.ValidateSet(regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Source identifies this repository in logs and metrics.
func (r *PostgresRepository) Source() string { return SourcePostgres }

// Seed inserts the embedded dataset when the table is empty, so a fresh
// database serves the same baseline as the embedded source.
func (r *PostgresRepository) Seed(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM regions`).Scan(&count); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "counting regions")
	}
	if count > 0 {
		return nil
	}

	regions, err := DecodeRegions(embeddedRegions)
	if err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for _, rec := range regions {
		batch.Queue(`
			INSERT INTO regions (name, solar_mw, wind_mw, small_hydro_mw, bio_power_mw, large_hydro_mw,
			                     dominant, coastal, arid_desert, mountain, high_biomass)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			rec.Name, rec.SolarMW, rec.WindMW, rec.SmallHydroMW, rec.BioMW, rec.LargeHydroMW,
			rec.Geography.Dominant, rec.Geography.Coastal, rec.Geography.AridDesert,
			rec.Geography.Mountain, rec.Geography.HighBiomass)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "seeding regions")
	}
	r.logger.Info("seeded region table", logging.Int("regions", len(regions)))
	return nil
}

// Close releases the connection pool.
func (r *PostgresRepository) Close() {
	r.pool.Close()
}
