package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vjay-git/shivashray/models"
)

// ServiceCatalog lists the hotel's facilities for the guest-facing pages.
type ServiceCatalog struct {
	DB *gorm.DB
}

func NewServiceCatalog(db *gorm.DB) *ServiceCatalog {
	return &ServiceCatalog{DB: db}
}

func (s *ServiceCatalog) List() ([]models.Service, error) {
	var list []models.Service
	if err := s.DB.Where("is_active = ?", true).Order("name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ServiceCatalog) Get(serviceID uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.Where("id = ? AND is_active = ?", serviceID, true).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("service %d not found", serviceID)
		}
		return nil, err
	}
	return &svc, nil
}

type CreateServiceInput struct {
	Name        string
	Description string
	Icon        string
	ImageURL    string
}

func (s *ServiceCatalog) Create(in CreateServiceInput) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("name is required")
	}
	svc := models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Icon:        in.Icon,
		ImageURL:    in.ImageURL,
		IsActive:    true,
	}
	if err := s.DB.Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}
