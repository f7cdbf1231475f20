package answerstore

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.UserAnswer) (id string, err error)
	ListByMockID(mockID string) ([]dbmodels.UserAnswer, error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

// Create - только вставка, ответы не обновляются и не удаляются
func (i impl) Create(rec dbmodels.UserAnswer) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByMockID(mockID string) (list []dbmodels.UserAnswer, err error) {
	err = i.db.
		Model(&dbmodels.UserAnswer{}).
		Where("mock_id_ref = ?", mockID).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
