package main

import (
	"fmt"
	"os"

	"github.com/villagekeep/villagekeep-backend/internal/app"
	"github.com/villagekeep/villagekeep-backend/internal/platform/envutil"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	addr := ":" + envutil.String("PORT", "8080")
	application.Log.Info("server starting", "addr", addr)
	if err := application.Run(addr); err != nil {
		application.Log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
