package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colorviz/internal/api"
	"colorviz/internal/config"
	"colorviz/internal/display"
	"colorviz/internal/sensor"
	"colorviz/internal/service"
	"colorviz/internal/storage"
	"colorviz/internal/vision"
	"colorviz/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := storage.NewStore(cfg.DataPath, cfg.HistoryLimit)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	ctx, stopLoops := context.WithCancel(context.Background())
	defer stopLoops()

	hub := ws.NewHub()
	go hub.Run(ctx)

	dev, closer, err := openSensor(cfg)
	if err != nil {
		log.Fatalf("init sensor: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	pipeline := vision.NewPipeline(cfg.SampleCount, vision.SleepPacer(time.Duration(cfg.SampleIntervalMS)*time.Millisecond))
	if cfg.CalibrationEnabled {
		cal := vision.DefaultCalibration()
		pipeline.Calibration = &cal
	}

	oled := display.NewOLED()
	svc := service.NewAnalysisService(
		pipeline,
		sensor.AcquirerFor(dev),
		service.NewSharedResult(),
		service.NewMenu(),
		oled,
		store,
		hub,
		time.Duration(cfg.PollIntervalMS)*time.Millisecond,
	)
	svc.Restore()
	go svc.Run(ctx)

	router := api.NewRouter(cfg, svc, store, hub, oled)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s ap=%s sensor=%s", cfg.ListenAddr, cfg.APName, cfg.SensorKind)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	stopLoops()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// openSensor returns the configured sensor and, for real hardware, the bus
// to close on exit.
func openSensor(cfg config.Config) (sensor.Sensor, io.Closer, error) {
	if cfg.SensorKind == config.SensorSimulated {
		// each palette color is held for SimulatedHold full readings
		hold := cfg.SimulatedHold * cfg.SampleCount
		return sensor.NewSimulated(vision.DefaultPalette(), hold, cfg.SimulatedJitter, uint64(time.Now().UnixNano())), nil, nil
	}
	bus, err := sensor.OpenDevice(cfg.I2CDevice, uint16(cfg.SensorAddress))
	if err != nil {
		return nil, nil, err
	}
	dev := sensor.NewTCS34725(bus, uint16(cfg.SensorAddress))
	if err := dev.Init(uint8(cfg.SensorATime), uint8(cfg.SensorGain)); err != nil {
		_ = bus.Close()
		return nil, nil, err
	}
	return dev, bus, nil
}
