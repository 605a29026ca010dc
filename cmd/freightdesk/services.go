package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/freightdesk/internal/pkg/messaging"
	"github.com/piresc/freightdesk/internal/pkg/models"
	nsqpkg "github.com/piresc/freightdesk/internal/pkg/nsq"
	"github.com/piresc/freightdesk/internal/pkg/otpcache"
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/internal/pkg/storage"

	accountshandler "github.com/piresc/freightdesk/services/accounts/handler"
	accountshttp "github.com/piresc/freightdesk/services/accounts/handler/http"
	accountsrepo "github.com/piresc/freightdesk/services/accounts/repository"
	accountsuc "github.com/piresc/freightdesk/services/accounts/usecase"

	authhandler "github.com/piresc/freightdesk/services/auth/handler"
	authhttp "github.com/piresc/freightdesk/services/auth/handler/http"
	authrepo "github.com/piresc/freightdesk/services/auth/repository"
	authuc "github.com/piresc/freightdesk/services/auth/usecase"

	drivershandler "github.com/piresc/freightdesk/services/drivers/handler"
	drivershttp "github.com/piresc/freightdesk/services/drivers/handler/http"
	driversrepo "github.com/piresc/freightdesk/services/drivers/repository"
	driversuc "github.com/piresc/freightdesk/services/drivers/usecase"

	freightshandler "github.com/piresc/freightdesk/services/freights/handler"
	freightshttp "github.com/piresc/freightdesk/services/freights/handler/http"
	freightsrepo "github.com/piresc/freightdesk/services/freights/repository"
	freightsuc "github.com/piresc/freightdesk/services/freights/usecase"

	locationsnsq "github.com/piresc/freightdesk/services/locations/gateway/nsq"
	locationshandler "github.com/piresc/freightdesk/services/locations/handler"
	locationshttp "github.com/piresc/freightdesk/services/locations/handler/http"
	locationsrepo "github.com/piresc/freightdesk/services/locations/repository"
	locationsuc "github.com/piresc/freightdesk/services/locations/usecase"

	paymentsnsq "github.com/piresc/freightdesk/services/payments/gateway/nsq"
	paymentshandler "github.com/piresc/freightdesk/services/payments/handler"
	paymentshttp "github.com/piresc/freightdesk/services/payments/handler/http"
	paymentsrepo "github.com/piresc/freightdesk/services/payments/repository"
	paymentsuc "github.com/piresc/freightdesk/services/payments/usecase"

	purchaseshandler "github.com/piresc/freightdesk/services/purchases/handler"
	purchaseshttp "github.com/piresc/freightdesk/services/purchases/handler/http"
	purchasesrepo "github.com/piresc/freightdesk/services/purchases/repository"
	purchasesuc "github.com/piresc/freightdesk/services/purchases/usecase"

	receiptsnsq "github.com/piresc/freightdesk/services/receipts/gateway/nsq"
	receiptshandler "github.com/piresc/freightdesk/services/receipts/handler"
	receiptshttp "github.com/piresc/freightdesk/services/receipts/handler/http"
	receiptsrepo "github.com/piresc/freightdesk/services/receipts/repository"
	receiptsuc "github.com/piresc/freightdesk/services/receipts/usecase"
)

// routeRegistrar is implemented by every service's route handler
type routeRegistrar interface {
	RegisterRoutes(groups *server.RouteGroups)
}

// buildServices wires repository, gateway, usecase and handler for each service
func buildServices(
	db *sqlx.DB,
	store storage.FileStore,
	otpStore otpcache.Store,
	sender messaging.Sender,
	publisher nsqpkg.Publisher,
	cfg *models.Config,
) []routeRegistrar {
	authUC := authuc.NewAuthUC(authrepo.NewAccountRepo(db), otpStore, sender, cfg)
	accountUC := accountsuc.NewAccountUC(accountsrepo.NewAccountRepo(db), cfg)
	driverUC := driversuc.NewDriverUC(driversrepo.NewDriverRepo(db), cfg)
	freightUC := freightsuc.NewFreightUC(freightsrepo.NewFreightRepo(db), store, cfg)
	purchaseUC := purchasesuc.NewPurchaseUC(purchasesrepo.NewPurchaseRepo(db), store, cfg)
	paymentUC := paymentsuc.NewPaymentUC(
		paymentsrepo.NewPaymentRepo(db), paymentsnsq.NewNSQGateway(publisher), store, cfg)
	receiptUC := receiptsuc.NewReceiptUC(
		receiptsrepo.NewReceiptRepo(db), receiptsnsq.NewNSQGateway(publisher), store, cfg)
	locationUC := locationsuc.NewLocationUC(
		locationsrepo.NewLocationRepo(db), locationsnsq.NewNSQGateway(publisher), cfg)

	return []routeRegistrar{
		authhandler.NewHandler(authhttp.NewAuthHandler(authUC)),
		accountshandler.NewHandler(accountshttp.NewAccountHandler(accountUC)),
		drivershandler.NewHandler(drivershttp.NewDriverHandler(driverUC)),
		freightshandler.NewHandler(freightshttp.NewFreightHandler(freightUC)),
		purchaseshandler.NewHandler(purchaseshttp.NewPurchaseHandler(purchaseUC)),
		paymentshandler.NewHandler(paymentshttp.NewPaymentHandler(paymentUC)),
		receiptshandler.NewHandler(receiptshttp.NewReceiptHandler(receiptUC)),
		locationshandler.NewHandler(locationshttp.NewLocationHandler(locationUC)),
	}
}
