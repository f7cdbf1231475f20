package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"ai-interview-backend/config"
	"ai-interview-backend/db"
	recordingfilestore "ai-interview-backend/lib/file-storage/store"
	dbmodels "ai-interview-backend/models/db"
	s3client "ai-interview-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SaveRecording(ctx context.Context, mockID string, questionIndex int, fileName, contentType string, body []byte) (id string, err error)
	GetRecording(ctx context.Context, mockID string, questionIndex int) (body []byte, rec *dbmodels.RecordingFile, err error)
	ListRecordings(mockID string) ([]dbmodels.RecordingFile, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: recordingfilestore.NewInstance(db.DB),
	}
}

type impl struct {
	store recordingfilestore.Provider
}

// SaveRecording кладёт аудиофайл ответа в s3 и сохраняет метаданные в БД
func (i impl) SaveRecording(ctx context.Context, mockID string, questionIndex int, fileName, contentType string, body []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := dbmodels.RecordingFile{
		MockID:        mockID,
		QuestionIndex: questionIndex,
		FileName:      fileName,
		ContentType:   contentType,
		Size:          int64(len(body)),
	}
	id, err := i.store.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения метаданных записи")
	}
	objectName := getObjectName(mockID, questionIndex, id)
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectName, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки записи в s3")
	}
	log.
		WithField("mock_id", mockID).
		WithField("question_index", questionIndex).
		WithField("size", len(body)).
		Info("запись ответа сохранена")
	return id, nil
}

func (i impl) GetRecording(ctx context.Context, mockID string, questionIndex int) ([]byte, *dbmodels.RecordingFile, error) {
	rec, err := i.store.GetByQuestion(mockID, questionIndex)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения метаданных записи")
	}
	if rec == nil {
		return nil, nil, nil
	}
	objectName := getObjectName(mockID, questionIndex, rec.ID)
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения записи из s3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения записи из s3")
	}
	return body, rec, nil
}

func (i impl) ListRecordings(mockID string) ([]dbmodels.RecordingFile, error) {
	return i.store.ListByMockID(mockID)
}

func getObjectName(mockID string, questionIndex int, id string) string {
	return fmt.Sprintf("%v/%v/%v", mockID, questionIndex, id)
}
