package recordingfilestore

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.RecordingFile) (id string, err error)
	GetByQuestion(mockID string, questionIndex int) (*dbmodels.RecordingFile, error)
	ListByMockID(mockID string) ([]dbmodels.RecordingFile, error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.RecordingFile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetByQuestion возвращает последнюю загруженную запись по вопросу
func (i impl) GetByQuestion(mockID string, questionIndex int) (*dbmodels.RecordingFile, error) {
	rec := dbmodels.RecordingFile{}
	err := i.db.
		Model(&dbmodels.RecordingFile{}).
		Where("mock_id = ? AND question_index = ?", mockID, questionIndex).
		Order("created_at desc").
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

func (i impl) ListByMockID(mockID string) ([]dbmodels.RecordingFile, error) {
	list := []dbmodels.RecordingFile{}
	err := i.db.
		Model(&dbmodels.RecordingFile{}).
		Where("mock_id = ?", mockID).
		Order("question_index asc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
