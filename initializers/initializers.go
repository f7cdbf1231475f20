package initializers

import (
	"context"

	"ai-interview-backend/config"
	"ai-interview-backend/fiberlog"
	answerhandler "ai-interview-backend/lib/answer"
	xlsexport "ai-interview-backend/lib/export/xls"
	feedbackhandler "ai-interview-backend/lib/feedback"
	filestorage "ai-interview-backend/lib/file-storage"
	gpthandler "ai-interview-backend/lib/gpt"
	interviewhandler "ai-interview-backend/lib/interview"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	gpthandler.NewHandler()
	interviewhandler.NewHandler(config.Conf.YandexGPT.QuestionCount)
	answerhandler.NewHandler()
	feedbackhandler.NewHandler()
	xlsexport.NewHandler()
	filestorage.NewHandler()
}
