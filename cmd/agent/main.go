package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dayflow-hr/dayflow-agent-go/internal/config"
	appHTTP "github.com/dayflow-hr/dayflow-agent-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/gateway"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/poller"
	"github.com/dayflow-hr/dayflow-agent-go/internal/pkg/store"
	notificationService "github.com/dayflow-hr/dayflow-agent-go/internal/service/notification"
	sessionService "github.com/dayflow-hr/dayflow-agent-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	st, err := store.NewSQLiteStore(cfg.State.DBPath)
	if err != nil {
		fmt.Println("Error opening state store:", err)
		return
	}
	defer st.Close()

	gw := gateway.NewClient(cfg.API.BaseURL)

	sessionSvc := sessionService.NewSessionService(gw, st)
	if err := sessionSvc.Restore(context.Background()); err != nil {
		fmt.Println("Error restoring session:", err)
		return
	}

	notifSvc := notificationService.NewNotificationService(gw, st, sessionSvc)

	p := poller.New()
	p.AddJob("notification-refresh", cfg.Notifications.PollInterval, func(ctx context.Context) error {
		// Nothing to aggregate until someone signs in.
		if sessionSvc.CurrentUser() == nil {
			return nil
		}
		return notifSvc.Refresh(ctx)
	})
	p.Start()
	defer p.Stop()

	authHandler := appHTTP.NewAuthHandler(sessionSvc, notifSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifSvc)
	router := appHTTP.NewRouter(authHandler, notificationHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Agent running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
