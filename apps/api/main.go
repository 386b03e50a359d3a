package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	echoapi "github.com/connectingcampuses/backend/apps/api/echo"
	"github.com/connectingcampuses/backend/core"
	"github.com/connectingcampuses/backend/core/attendance"
	"github.com/connectingcampuses/backend/core/carpool"
	"github.com/connectingcampuses/backend/core/lostfound"
	"github.com/connectingcampuses/backend/core/market"
	"github.com/connectingcampuses/backend/core/newsroom"
	"github.com/connectingcampuses/backend/core/user"
	emailsvc "github.com/connectingcampuses/backend/services/email"
	logsvc "github.com/connectingcampuses/backend/services/logger"
	"github.com/connectingcampuses/backend/storage/database"
	sqlxrepos "github.com/connectingcampuses/backend/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	db, err := setUpDB(core.Conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc)
	attSvc := attendance.NewService(sqlxrepos.NewAttendanceRepository(db))
	newsSvc := newsroom.NewService(sqlxrepos.NewNewsroomRepository(db))
	lfSvc := lostfound.NewService(sqlxrepos.NewLostFoundRepository(db))
	cpSvc := carpool.NewService(sqlxrepos.NewCarpoolRepository(db))
	mktSvc := market.NewService(sqlxrepos.NewMarketRepository(db))

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("%s API initializing (env %s)", core.Conf.AppName, core.Conf.Env))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Addr:          fmt.Sprintf(":%d", core.Conf.Server.Port),
		Logger:        logger,
		UserSvc:       usrSvc,
		AttendanceSvc: attSvc,
		NewsroomSvc:   newsSvc,
		LostFoundSvc:  lfSvc,
		CarpoolSvc:    cpSvc,
		MarketSvc:     mktSvc,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
