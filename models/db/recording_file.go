package dbmodels

type RecordingFile struct {
	BaseModel
	MockID        string `gorm:"type:varchar(36);index" comment:"Идентификатор интервью"`
	QuestionIndex int    `comment:"Номер вопроса, начиная с 0"`
	FileName      string `gorm:"type:varchar(255)" comment:"Имя файла в S3"`
	ContentType   string `gorm:"type:varchar(255)"`
	Size          int64  `comment:"Размер файла в байтах"`
}
