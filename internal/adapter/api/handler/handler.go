package handler

import (
	"assetdoor/internal/usecase"
)

var (
	authHandler       *AuthHandler
	productHandler    *ProductHandler
	categoryHandler   *CategoryHandler
	iapProductHandler *IapProductHandler
	purchaseHandler   *PurchaseHandler
	userHandler       *UserHandler
	fileHandler       *FileHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	iapProductUseCase *usecase.IapProductUseCase,
	iapSyncUseCase *usecase.IapSyncUseCase,
	purchaseUseCase *usecase.PurchaseUseCase,
	userUseCase *usecase.UserUseCase,
	fileUseCase *usecase.FileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	iapProductHandler = NewIapProductHandler(iapProductUseCase, iapSyncUseCase)
	purchaseHandler = NewPurchaseHandler(purchaseUseCase)
	userHandler = NewUserHandler(userUseCase)
	fileHandler = NewFileHandler(fileUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetIapProductHandler() *IapProductHandler {
	return iapProductHandler
}

func GetPurchaseHandler() *PurchaseHandler {
	return purchaseHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
