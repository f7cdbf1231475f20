package interviewstore

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.MockInterview) (id string, err error)
	GetByMockID(mockID string) (*dbmodels.MockInterview, error)
	ListByUser(userEmail string) ([]dbmodels.MockInterview, error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

// Create - только вставка, интервью после создания неизменяемо
func (i impl) Create(rec dbmodels.MockInterview) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByMockID(mockID string) (*dbmodels.MockInterview, error) {
	rec := dbmodels.MockInterview{}
	err := i.db.
		Model(&dbmodels.MockInterview{}).
		Where("mock_id = ?", mockID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByUser(userEmail string) (list []dbmodels.MockInterview, err error) {
	err = i.db.
		Model(&dbmodels.MockInterview{}).
		Where("created_by = ?", userEmail).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
