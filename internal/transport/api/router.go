package api

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	AuthRouteGroup      = "/auth"
	LoginRoute          = "/login"
	ChangePasswordRoute = "/change-password"

	ItemsRouteGroup = "/items"
	MinPricesRoute  = "/min-prices"
	BuyRoute        = "/buy"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	AuthService  AuthServicer
	ItemService  ItemServicer
	JWTSecretKey []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService)
	itemsHandler := NewItemsHandler(args.ItemService)

	auth := r.Group(AuthRouteGroup)
	auth.POST(LoginRoute, authHandler.Login)
	auth.POST(ChangePasswordRoute, authHandler.ChangePassword)

	items := r.Group(ItemsRouteGroup)
	items.GET(MinPricesRoute, itemsHandler.MinPrices)
	items.POST(BuyRoute, itemsHandler.Buy)

	return r
}
