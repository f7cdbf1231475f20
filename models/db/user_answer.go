package dbmodels

type UserAnswer struct {
	BaseModel
	MockIDRef  string `gorm:"type:varchar(36);index" comment:"Идентификатор интервью"`
	Question   string `comment:"Текст вопроса"`
	CorrectAns string `comment:"Эталонный ответ"`
	UserAns    string `comment:"Расшифровка ответа кандидата"`
	Feedback   string `comment:"Рекомендации ИИ"`
	Rating     int    `comment:"Оценка ответа от 0 до 10"`
	UserEmail  string `gorm:"type:varchar(255)" comment:"Email владельца"`
}
