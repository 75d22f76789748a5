package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

type GormInstrumentRepository struct {
	db *gorm.DB
}

func NewGormInstrumentRepository(db *gorm.DB) *GormInstrumentRepository {
	return &GormInstrumentRepository{db: db}
}

func (r *GormInstrumentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Instrument{})
}

func (r *GormInstrumentRepository) Create(instrument *domain.Instrument) error {
	var count int64
	if err := r.db.Model(&domain.Instrument{}).Where("id = ?", instrument.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDuplicateSKU
	}
	return r.db.Create(instrument).Error
}

func (r *GormInstrumentRepository) FindByID(id string) (*domain.Instrument, error) {
	var instrument domain.Instrument
	err := r.db.Where("id = ?", id).First(&instrument).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &instrument, nil
}

func (r *GormInstrumentRepository) FindAll() ([]domain.Instrument, error) {
	var instruments []domain.Instrument
	err := r.db.Order("created_at").Find(&instruments).Error
	return instruments, err
}

func (r *GormInstrumentRepository) Update(instrument *domain.Instrument) error {
	return r.db.Save(instrument).Error
}

func (r *GormInstrumentRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Instrument{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormInstrumentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Instrument{}).Count(&count).Error
	return count, err
}

func (r *GormInstrumentRepository) UpdateStock(id string, stock int) error {
	res := r.db.Model(&domain.Instrument{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
