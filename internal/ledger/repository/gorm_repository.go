package repository

import (
	"gorm.io/gorm"

	"github.com/yangliu6605/react-ems/internal/ledger/domain"
)

type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockTransaction{})
}

func (r *GormTransactionRepository) Append(tx *domain.StockTransaction) error {
	return r.db.Create(tx).Error
}

func (r *GormTransactionRepository) FindAll() ([]domain.StockTransaction, error) {
	var transactions []domain.StockTransaction
	err := r.db.Order("created_at").Find(&transactions).Error
	return transactions, err
}

func (r *GormTransactionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.StockTransaction{}).Count(&count).Error
	return count, err
}
