package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSearchLimit = 20

// likeEscaper makes LIKE wildcards in user input match literally. '!' is the
// escape character named in the query.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GormTimezoneRepository implements the TimezoneRepository interface
type GormTimezoneRepository struct {
	db *gorm.DB
}

// NewGormTimezoneRepository creates a new GORM timezone repository
func NewGormTimezoneRepository(db *gorm.DB) repository.TimezoneRepository {
	return &GormTimezoneRepository{
		db: db,
	}
}

// Timezonelist GORM model for database mapping
type Timezonelist struct {
	ZoneID        string `gorm:"column:zone_id;primaryKey"`
	Name          string `gorm:"column:name"`
	City          string `gorm:"column:city;index"`
	OffsetMinutes int    `gorm:"column:offset_minutes"`
	CountryCode   string `gorm:"column:country_code;size:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (Timezonelist) TableName() string {
	return "m_timezone_list"
}

func (t Timezonelist) toEntity() entity.TimeZone {
	return entity.TimeZone{
		ID:            t.ZoneID,
		Name:          t.Name,
		City:          t.City,
		OffsetMinutes: t.OffsetMinutes,
		CountryCode:   t.CountryCode,
	}
}

// MigrateTimezones creates the catalog table and inserts any missing catalog rows.
func MigrateTimezones(ctx context.Context, db *gorm.DB, catalog []entity.TimeZone) error {
	if err := db.WithContext(ctx).AutoMigrate(&Timezonelist{}); err != nil {
		return fmt.Errorf("failed to migrate timezone table: %w", err)
	}
	if len(catalog) == 0 {
		return nil
	}

	rows := make([]Timezonelist, 0, len(catalog))
	for _, tz := range catalog {
		rows = append(rows, Timezonelist{
			ZoneID:        tz.ID,
			Name:          tz.Name,
			City:          tz.City,
			OffsetMinutes: tz.OffsetMinutes,
			CountryCode:   tz.CountryCode,
		})
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("failed to seed timezone catalog: %w", result.Error)
	}
	return nil
}

// GetByID finds a timezone by its IANA identifier
func (r *GormTimezoneRepository) GetByID(ctx context.Context, id string) (*entity.TimeZone, error) {
	var timezone Timezonelist
	result := r.db.WithContext(ctx).Where("zone_id = ?", id).First(&timezone)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownTimezone, id)
		}
		return nil, result.Error
	}

	tz := timezone.toEntity()
	return &tz, nil
}

// Search matches the query against city, name, zone id and country code
func (r *GormTimezoneRepository) Search(ctx context.Context, query string, limit int) ([]entity.TimeZone, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	tx := r.db.WithContext(ctx).Model(&Timezonelist{})
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		like := "%" + likeEscaper.Replace(q) + "%"
		tx = tx.Where("LOWER(city) LIKE ? ESCAPE '!' OR LOWER(name) LIKE ? ESCAPE '!' OR LOWER(zone_id) LIKE ? ESCAPE '!' OR LOWER(country_code) = ?", like, like, like, q)
	}

	var rows []Timezonelist
	if err := tx.Order("city ASC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.TimeZone, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// List returns the whole catalog ordered by offset then city
func (r *GormTimezoneRepository) List(ctx context.Context) ([]entity.TimeZone, error) {
	var rows []Timezonelist
	if err := r.db.WithContext(ctx).Order("offset_minutes ASC, city ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.TimeZone, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
