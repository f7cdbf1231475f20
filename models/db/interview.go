package dbmodels

type MockInterview struct {
	BaseModel
	MockID        string `gorm:"type:varchar(36);uniqueIndex" comment:"Публичный идентификатор интервью"`
	JsonMockResp  string `comment:"Сгенерированные вопросы с эталонными ответами, как вернул ИИ"`
	JobPosition   string `gorm:"type:varchar(255)" comment:"Должность"`
	JobDesc       string `comment:"Описание вакансии"`
	JobExperience int    `comment:"Опыт работы в годах"`
	CreatedBy     string `gorm:"type:varchar(255);index" comment:"Email владельца интервью"`
}
