package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/SscSPs/trt_portal/internal/models"
	"github.com/SscSPs/trt_portal/internal/utils/mapping"
	"github.com/SscSPs/trt_portal/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const deviceColumns = `device_id::text, nsn, device_type, manufacturer, model, location, end_of_life, status,
	eligible_upgrade, entity_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxDeviceRepository struct {
	BaseRepository
}

func newPgxDeviceRepository(pool *pgxpool.Pool) portsrepo.DeviceRepositoryFacade {
	return &PgxDeviceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeviceRepositoryFacade = (*PgxDeviceRepository)(nil)

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond is replaced by the next placeholder.
func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) next() string {
	return "$" + strconv.Itoa(len(w.args)+1)
}

func scanDevice(row pgx.Row) (models.Device, error) {
	var m models.Device
	err := row.Scan(
		&m.DeviceID,
		&m.NSN,
		&m.DeviceType,
		&m.Manufacturer,
		&m.Model,
		&m.Location,
		&m.EndOfLife,
		&m.Status,
		&m.EligibleUpgrade,
		&m.EntityID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectDevices(rows pgx.Rows) ([]models.Device, error) {
	defer rows.Close()
	out := []models.Device{}
	for rows.Next() {
		m, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device rows: %w", err)
	}
	return out, nil
}

func (r *PgxDeviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE device_id::text = $1;`
	m, err := scanDevice(r.Pool.QueryRow(ctx, query, deviceID))
	if err != nil {
		return nil, mapNotFound(err, "device "+deviceID)
	}
	device := mapping.ToDomainDevice(m)
	return &device, nil
}

// ListDevices retrieves a page of devices using keyset pagination on (end_of_life, device_id).
func (r *PgxDeviceRepository) ListDevices(ctx context.Context, filter domain.DeviceFilter, limit int, nextToken *string) ([]domain.Device, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	w := &whereBuilder{}
	if filter.EntityID != nil {
		w.add("entity_id = ?", *filter.EntityID)
	}
	if filter.Status != nil {
		w.add("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		w.add("device_type = ?", string(*filter.Type))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		w.add("(end_of_life, device_id) > (?::date, ?::uuid)", cursor.SortKey, cursor.ID)
	}

	query := `SELECT ` + deviceColumns + ` FROM devices` + w.clause() +
		` ORDER BY end_of_life ASC, device_id ASC LIMIT ` + w.next() + `;`
	rows, err := r.Pool.Query(ctx, query, append(w.args, fetchLimit)...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query devices: %w", err)
	}
	modelDevices, err := collectDevices(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	results := modelDevices
	if len(modelDevices) > limit {
		last := modelDevices[limit-1]
		token := pagination.EncodeToken(last.EndOfLife, last.DeviceID)
		nextTokenVal = &token
		results = modelDevices[:limit]
	}

	return mapping.ToDomainDeviceSlice(results), nextTokenVal, nil
}

func (r *PgxDeviceRepository) ListDevicesEndingBefore(ctx context.Context, cutoff time.Time, entityID *int64) ([]domain.Device, error) {
	w := &whereBuilder{}
	w.add("status <> ?", string(domain.DeviceRetired))
	w.add("end_of_life < ?::date", cutoff)
	if entityID != nil {
		w.add("entity_id = ?", *entityID)
	}

	query := `SELECT ` + deviceColumns + ` FROM devices` + w.clause() + ` ORDER BY end_of_life ASC, device_id ASC;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices nearing end of life: %w", err)
	}
	modelDevices, err := collectDevices(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainDeviceSlice(modelDevices), nil
}

func (r *PgxDeviceRepository) SummarizeDevices(ctx context.Context, entityID *int64) (domain.DeviceSummary, error) {
	summary := domain.NewDeviceSummary()

	w := &whereBuilder{}
	if entityID != nil {
		w.add("entity_id = ?", *entityID)
	}
	query := `SELECT status, device_type, COUNT(*) FROM devices` + w.clause() + ` GROUP BY status, device_type;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return summary, fmt.Errorf("failed to summarize devices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status, deviceType string
		var count int
		if err := rows.Scan(&status, &deviceType, &count); err != nil {
			return summary, fmt.Errorf("failed to scan device summary row: %w", err)
		}
		summary.Total += count
		summary.ByStatus[domain.DeviceStatus(status)] += count
		summary.ByType[domain.DeviceType(deviceType)] += count
	}
	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("error iterating device summary rows: %w", err)
	}
	return summary, nil
}

func (r *PgxDeviceRepository) SaveDevice(ctx context.Context, device domain.Device) error {
	m := mapping.ToModelDevice(device)
	query := `
		INSERT INTO devices (device_id, nsn, device_type, manufacturer, model, location, end_of_life, status,
			eligible_upgrade, entity_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DeviceID,
		m.NSN,
		m.DeviceType,
		m.Manufacturer,
		m.Model,
		m.Location,
		m.EndOfLife,
		m.Status,
		m.EligibleUpgrade,
		m.EntityID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "device "+m.DeviceID)
	}
	return nil
}

func (r *PgxDeviceRepository) UpdateDevice(ctx context.Context, device domain.Device) error {
	m := mapping.ToModelDevice(device)
	query := `
		UPDATE devices
		SET nsn = $1, device_type = $2, manufacturer = $3, model = $4, location = $5, end_of_life = $6,
			status = $7, eligible_upgrade = $8, entity_id = $9, last_updated_at = $10, last_updated_by = $11
		WHERE device_id::text = $12;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.NSN,
		m.DeviceType,
		m.Manufacturer,
		m.Model,
		m.Location,
		m.EndOfLife,
		m.Status,
		m.EligibleUpgrade,
		m.EntityID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeviceID,
	)
	if err != nil {
		return mapWriteError(err, "device "+m.DeviceID)
	}
	return expectAffected(tag, "device "+m.DeviceID)
}

func (r *PgxDeviceRepository) DeleteDevice(ctx context.Context, deviceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM devices WHERE device_id::text = $1;`, deviceID)
	if err != nil {
		return mapWriteError(err, "device "+deviceID)
	}
	return expectAffected(tag, "device "+deviceID)
}
