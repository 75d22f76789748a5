package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yangliu6605/react-ems/internal/employee/domain"
)

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Employee{})
}

func (r *GormEmployeeRepository) Create(employee *domain.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) FindByID(id string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) FindAll() ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.Order("created_at").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) Update(employee *domain.Employee) error {
	return r.db.Save(employee).Error
}

func (r *GormEmployeeRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
