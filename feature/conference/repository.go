package conference

import (
	"context"
	"errors"
	"time"

	"asset-audit/core/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists conferences, participations and items.
type Repository interface {
	Create(ctx context.Context, conf *Conference) error
	FindByID(ctx context.Context, id string) (*Conference, error)
	FindByUser(ctx context.Context, userID uint) ([]Conference, error)
	UpsertParticipation(ctx context.Context, conferenceID string, userID uint, at time.Time) (*Participation, error)
	Participations(ctx context.Context, conferenceID string) ([]Participation, error)
	InsertItem(ctx context.Context, item *Item) error
	Items(ctx context.Context, conferenceID string) ([]Item, error)
	Finalize(ctx context.Context, id string, at time.Time) error
}

// GormRepository is the Repository backed by GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a GORM backed repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) Create(ctx context.Context, conf *Conference) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(conf).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("conference %s already exists", conf.ID)
		}
		return apperror.Dependency("create conference", err)
	}
	return nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*Conference, error) {
	return findConference(r.db.WithContext(ctx), id)
}

// FindByUser returns the conferences userID created or participates in, newest first.
func (r *GormRepository) FindByUser(ctx context.Context, userID uint) ([]Conference, error) {
	joined := r.db.Model(&Participation{}).Select("conference_id").Where("user_id = ?", userID)

	var confs []Conference
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", userID).
		Or("id IN (?)", joined).
		Order("created_at DESC, id DESC").
		Find(&confs).Error
	if err != nil {
		return nil, apperror.Dependency("find conferences by user", err)
	}
	return confs, nil
}

// UpsertParticipation inserts the participation unless it exists and returns the stored row.
func (r *GormRepository) UpsertParticipation(ctx context.Context, conferenceID string, userID uint, at time.Time) (*Participation, error) {
	var stored Participation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOpen(tx, conferenceID); err != nil {
			return err
		}

		row := Participation{UserID: userID, ConferenceID: conferenceID, CreatedAt: at}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "conference_id"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			return apperror.Dependency("upsert participation", err)
		}

		err = tx.Where("user_id = ? AND conference_id = ?", userID, conferenceID).Take(&stored).Error
		if err != nil {
			return apperror.Dependency("read participation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GormRepository) Participations(ctx context.Context, conferenceID string) ([]Participation, error) {
	var rows []Participation
	err := r.db.WithContext(ctx).Where("conference_id = ?", conferenceID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, apperror.Dependency("list participations", err)
	}
	return rows, nil
}

// InsertItem stores item while its conference is open. A second item with the same
// (conference, code, user) fails with a conflict.
func (r *GormRepository) InsertItem(ctx context.Context, item *Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOpen(tx, item.ConferenceID); err != nil {
			return err
		}

		err := tx.Create(item).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("item %s already submitted by user %d", item.Code, item.UserID)
		}
		if err != nil {
			return apperror.Dependency("insert item", err)
		}
		return nil
	})
}

func (r *GormRepository) Items(ctx context.Context, conferenceID string) ([]Item, error) {
	var rows []Item
	err := r.db.WithContext(ctx).Where("conference_id = ?", conferenceID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, apperror.Dependency("list items", err)
	}
	return rows, nil
}

// Finalize moves the conference from CREATED to FINALIZED in a single conditional update.
func (r *GormRepository) Finalize(ctx context.Context, id string, at time.Time) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&Conference{}).
		Where("id = ? AND status = ?", id, StatusCreated).
		Updates(map[string]any{"status": StatusFinalized, "finalized_at": at})
	if res.Error != nil {
		return apperror.Dependency("finalize conference", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	if _, err := findConference(db, id); err != nil {
		return err
	}
	return apperror.InvalidState("conference %s is already finalized", id)
}

// lockOpen locks the conference row for the rest of tx and fails unless it is CREATED.
// Finalize has to wait for the lock, so nothing is added after the report is built.
func lockOpen(tx *gorm.DB, id string) error {
	var conf Conference
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("conference %s not found", id)
	}
	if err != nil {
		return apperror.Dependency("lock conference", err)
	}
	if conf.IsFinalized() {
		return apperror.InvalidState("conference %s is finalized", id)
	}
	return nil
}

func findConference(db *gorm.DB, id string) (*Conference, error) {
	var conf Conference
	err := db.Where("id = ?", id).Take(&conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("conference %s not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency("find conference", err)
	}
	return &conf, nil
}
