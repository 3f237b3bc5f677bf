package main

import (
	"context"
	"log"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/app/delivery/http/middlewares"
	"medibook-web/internal/app/delivery/http/routers"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/app/drivers/database"
	"medibook-web/internal/app/drivers/logger"
	"medibook-web/internal/app/services/core/appointments"
	"medibook-web/internal/app/services/core/auth"
	"medibook-web/internal/app/services/core/availability"
	"medibook-web/internal/app/services/core/doctors"
	"medibook-web/internal/app/services/core/patients"
	"medibook-web/internal/app/services/core/payments"
	"medibook-web/internal/app/services/core/session"
	"medibook-web/internal/app/services/shared/backend"
	"medibook-web/internal/app/services/shared/locker"
	"medibook-web/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: internalConfig.App.RequestTimeout(),
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Address+internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(redisRepository, lockerService, bootstrap.InternalConfig, bootstrap.Logger)

	// Backend
	backendClient := backend.NewBackendClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(backendClient, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(backendClient, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(backendClient, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(backendClient, bootstrap.Logger)
	availabilityUsecase := availability.NewAvailabilityUsecase(backendClient, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(backendClient, bootstrap.Logger)

	// Views
	renderer, err := views.NewRenderer(bootstrap.Logger)
	if err != nil {
		return err
	}
	presenter := controllers.NewPresenter(bootstrap.Logger, renderer)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Presenter:    presenter,
		Auth:         controllers.NewAuthController(bootstrap.Logger, presenter, authUsecase),
		Dashboard:    controllers.NewDashboardController(presenter, bootstrap.InternalConfig),
		Appointment:  controllers.NewAppointmentController(bootstrap.Logger, presenter, appointmentUsecase),
		Doctor:       controllers.NewDoctorController(bootstrap.Logger, presenter, doctorUsecase),
		Patient:      controllers.NewPatientController(bootstrap.Logger, presenter, patientUsecase),
		Availability: controllers.NewAvailabilityController(bootstrap.Logger, presenter, availabilityUsecase),
		Payment:      controllers.NewPaymentController(bootstrap.Logger, presenter, paymentUsecase),
	})
	return nil
}
