package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/grandeur/internal/booking"
	"github.com/avstrong/grandeur/internal/catalog"
	"github.com/avstrong/grandeur/internal/config"
	"github.com/avstrong/grandeur/internal/contact"
	"github.com/avstrong/grandeur/internal/idgen/refcode"
	"github.com/avstrong/grandeur/internal/logger"
	"github.com/avstrong/grandeur/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rooms := catalog.New(catalog.Config{L: l})
	if err := catalog.Seed(ctx, l, rooms); err != nil {
		return fmt.Errorf("seed room catalog: %w", err)
	}

	l.LogInfo("Room catalog has been seeded")

	refs := refcode.New(conf.Booking.ReferencePrefix)
	bookManager := booking.New(l, rooms, refs, conf.Booking.ProcessingDelay())
	contactManager := contact.New(l, conf.Contact.ProcessingDelay())

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Web.Host,
		Port:              conf.Web.Port,
		ReadHeaderTimeout: time.Duration(conf.Web.ReadHeaderTimeoutSeconds),
		LivenessEndpoint:  conf.Web.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, rooms, bookManager, contactManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
