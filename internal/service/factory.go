package service

import (
	"fmt"

	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AppServices struct {
	UserService *UserService
	ItemService *ItemService
}

type FactoryArgs struct {
	UnitOfWork  uow.UOW
	JWTSecret   []byte
	Psswd       PasswordHasher
	PriceClient PriceClient
	ItemsCache  ItemsCache
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UnitOfWork, args.JWTSecret, args.Psswd)

	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	itemService := NewItemService(args.UnitOfWork, args.PriceClient, args.ItemsCache)

	return &AppServices{
		UserService: userService,
		ItemService: itemService,
	}, nil
}
