package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// HandleTerminationProcess вызывает cleanup при получении SIGINT или SIGTERM
// и завершает процесс. Используется для закрытия пула соединений с базой.
func HandleTerminationProcess(cleanup func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals
		cleanup()
		os.Exit(1)
	}()
}
