package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"assetdoor/internal/adapter/api"
	"assetdoor/internal/adapter/api/handler"
	apimiddleware "assetdoor/internal/adapter/api/middleware"
	"assetdoor/internal/adapter/api/router"
	"assetdoor/internal/adapter/repository"
	"assetdoor/internal/infrastructure/firebase"
	"assetdoor/internal/infrastructure/playstore"
	"assetdoor/internal/infrastructure/storage"
	"assetdoor/internal/usecase"
	"assetdoor/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from env (production) or file (local dev)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	playCredentials := []byte(cfg.PlayServiceAccountJSON)
	if len(playCredentials) == 0 && serviceAccountJSON != "" {
		playCredentials = []byte(serviceAccountJSON)
	}
	playClient, err := playstore.NewClient(ctx, cfg.PlayPackageName, playCredentials)
	if err != nil {
		log.Fatalf("Failed to initialize Play Developer API client: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	iapProductRepo := repository.NewFirestoreIapProductRepository(firestoreClient)
	purchaseRepo := repository.NewFirestorePurchaseRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	syncInterval := time.Duration(cfg.SyncIntervalSeconds) * time.Second
	auditInterval := time.Duration(cfg.LinkAuditIntervalSeconds) * time.Second

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient, userRepo)
	iapLinkUseCase := usecase.NewIapLinkUseCase(iapProductRepo, productRepo, auditInterval)
	iapSyncUseCase := usecase.NewIapSyncUseCase(playClient, iapProductRepo, syncInterval)
	iapProductUseCase := usecase.NewIapProductUseCase(iapProductRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, iapProductRepo, iapLinkUseCase)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, productRepo, categoryRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, purchaseRepo, firebaseAuthClient)
	fileUseCase := usecase.NewFileUseCase(storageClient, fileMetadataRepo)

	handler.Setup(
		authUseCase,
		productUseCase,
		categoryUseCase,
		iapProductUseCase,
		iapSyncUseCase,
		purchaseUseCase,
		userUseCase,
		fileUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	iapSyncUseCase.StartScheduledSync(ctx)
	iapLinkUseCase.StartLinkAudit(ctx)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
