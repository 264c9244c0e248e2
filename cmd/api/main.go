package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	apimiddleware "github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/router"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/repository"
	"github.com/KODEGAS/vGurad-main-sub000/internal/infrastructure/gemini"
	"github.com/KODEGAS/vGurad-main-sub000/internal/infrastructure/storage"
	"github.com/KODEGAS/vGurad-main-sub000/internal/infrastructure/websocket"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account comes from an env var in production; local runs fall
	// back to a credentials file.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	diseaseRepo := repository.NewFirestoreDiseaseRepository(firestoreClient)
	tipRepo := repository.NewFirestoreTipRepository(firestoreClient)
	expertRepo := repository.NewFirestoreExpertRepository(firestoreClient)
	questionRepo := repository.NewFirestoreQuestionRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	noteRepo := repository.NewFirestoreNoteRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	// Chat stays up without a key; the use case answers 500 until one is set.
	var advisor usecase.ChatAdvisor
	if cfg.GeminiAPIKey != "" {
		geminiAdvisor, err := gemini.NewAdvisor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiAdvisor.Close()
		advisor = geminiAdvisor
	} else {
		log.Printf("GEMINI_API_KEY is not set; chat endpoints will report a configuration error")
	}

	diseaseUseCase := usecase.NewDiseaseUseCase(diseaseRepo)
	tipUseCase := usecase.NewTipUseCase(tipRepo)
	expertUseCase := usecase.NewExpertUseCase(expertRepo)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	noteUseCase := usecase.NewNoteUseCase(noteRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	chatUseCase := usecase.NewChatUseCase(advisor)

	handler.Setup(
		diseaseUseCase,
		tipUseCase,
		expertUseCase,
		questionUseCase,
		productUseCase,
		noteUseCase,
		userUseCase,
		chatUseCase,
	)

	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		handler.SetupUploadHandler(storageClient)
	} else {
		log.Printf("STORAGE_BUCKET is not set; image uploads are disabled")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient, chatUseCase)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
