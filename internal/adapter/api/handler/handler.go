package handler

import (
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
)

var (
	diseaseHandler  *DiseaseHandler
	tipHandler      *TipHandler
	expertHandler   *ExpertHandler
	questionHandler *QuestionHandler
	productHandler  *ProductHandler
	noteHandler     *NoteHandler
	userHandler     *UserHandler
	chatHandler     *ChatHandler
	uploadHandler   *UploadHandler
	healthHandler   *HealthHandler
)

func Setup(
	diseaseUseCase *usecase.DiseaseUseCase,
	tipUseCase *usecase.TipUseCase,
	expertUseCase *usecase.ExpertUseCase,
	questionUseCase *usecase.QuestionUseCase,
	productUseCase *usecase.ProductUseCase,
	noteUseCase *usecase.NoteUseCase,
	userUseCase *usecase.UserUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	diseaseHandler = NewDiseaseHandler(diseaseUseCase)
	tipHandler = NewTipHandler(tipUseCase)
	expertHandler = NewExpertHandler(expertUseCase)
	questionHandler = NewQuestionHandler(questionUseCase)
	productHandler = NewProductHandler(productUseCase)
	noteHandler = NewNoteHandler(noteUseCase)
	userHandler = NewUserHandler(userUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	healthHandler = NewHealthHandler()
}

func SetupUploadHandler(uploader usecase.FileUploader) {
	uploadHandler = NewUploadHandler(uploader)
}

func GetDiseaseHandler() *DiseaseHandler   { return diseaseHandler }
func GetTipHandler() *TipHandler           { return tipHandler }
func GetExpertHandler() *ExpertHandler     { return expertHandler }
func GetQuestionHandler() *QuestionHandler { return questionHandler }
func GetProductHandler() *ProductHandler   { return productHandler }
func GetNoteHandler() *NoteHandler         { return noteHandler }
func GetUserHandler() *UserHandler         { return userHandler }
func GetChatHandler() *ChatHandler         { return chatHandler }
func GetUploadHandler() *UploadHandler     { return uploadHandler }
func GetHealthHandler() *HealthHandler     { return healthHandler }
