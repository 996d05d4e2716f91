package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/workshift-app/workshift-go/internal/client"
	"github.com/workshift-app/workshift-go/internal/client/view"
	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/domain/auth"
	"github.com/workshift-app/workshift-go/internal/domain/user"
)

var apiURL string

func main() {
	root := &cobra.Command{
		Use:           "workshift",
		Short:         "Track your work shifts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", defaultAPIURL(), "base URL of the WorkShift API")

	root.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		statusCmd(),
		watchCmd(),
		punchCmd("punch-in", "Punch in for today", client.CommandPunchIn),
		punchCmd("punch-out", "Punch out and close today's shift", client.CommandPunchOut),
		punchCmd("break-start", "Start a break", client.CommandStartBreak),
		punchCmd("break-end", "End the current break", client.CommandEndBreak),
		historyCmd(),
		reportCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func defaultAPIURL() string {
	if v := os.Getenv("WORKSHIFT_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080/api"
}

func sessionStore() (*client.SessionStore, error) {
	if path := os.Getenv("WORKSHIFT_SESSION_FILE"); path != "" {
		return client.NewSessionStoreAt(path), nil
	}
	return client.NewSessionStore()
}

// authedClient loads the saved session and builds a client from it. The
// session file is read once per invocation; there is no client-side expiry
// check, an expired token simply fails at the server.
func authedClient() (*client.Client, client.Session, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, client.Session{}, err
	}
	session, err := store.Load()
	if err != nil {
		return nil, client.Session{}, err
	}
	if !session.IsAuthenticated() {
		return nil, client.Session{}, fmt.Errorf("not logged in, run 'workshift login' first")
	}
	return client.New(apiURL, session.Token), session, nil
}

func registerCmd() *cobra.Command {
	var email, password, name, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(apiURL, "")
			result, err := api.Register(cmd.Context(), auth.RegisterRequest{
				Email:    email,
				Password: password,
				Name:     name,
				Role:     user.Role(role),
			})
			if err != nil {
				return err
			}
			return saveSessionAndGreet(result)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "employee", "account role (employee or employer)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(apiURL, "")
			result, err := api.Login(cmd.Context(), auth.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			return saveSessionAndGreet(result)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func saveSessionAndGreet(result auth.TokenResponse) error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	if err := store.Save(client.Session{Token: result.Token, User: result.User}); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", result.User.Name, result.User.Role)
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := authedClient()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (%s)\n", session.User.Name, session.User.Email, session.User.Role)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's shift status",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := authedClient()
			if err != nil {
				return err
			}
			today, err := api.TodayStatus(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(today, time.Now())
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show today's status with a live elapsed timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := authedClient()
			if err != nil {
				return err
			}
			today, err := api.TodayStatus(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			view.StartTicker(ctx, func(now time.Time) {
				fmt.Print("\033[2J\033[H")
				printStatus(today, now)
				fmt.Println("\nPress Ctrl+C to stop")
			})
			return nil
		},
	}
}

func printStatus(today attendance.TodayStatusResponse, now time.Time) {
	if !today.HasAttendance {
		fmt.Println("No shift today. Punch in to start one.")
		return
	}

	record := today.Attendance
	badge := view.BadgeFor(record.Status)
	fmt.Printf("Status: %s\n", badge.Label)

	if view.IsPunchedIn(record) {
		fmt.Printf("Elapsed: %s\n", view.FormatElapsed(record.PunchIn.UTC(), now.UTC()))
	}
	if view.OnBreak(record) {
		fmt.Println("On break")
	}
	if record.PunchOut != nil && record.TotalHours != nil {
		fmt.Printf("Total hours: %.2f\n", *record.TotalHours)
	}
}

func punchCmd(use, short string, command client.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := authedClient()
			if err != nil {
				return err
			}
			dispatcher := client.NewDispatcher(api)
			if err := dispatcher.Dispatch(cmd.Context(), command); err != nil {
				return err
			}
			printStatus(dispatcher.Today(), time.Now())
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your recent attendance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := authedClient()
			if err != nil {
				return err
			}
			records, err := api.MyHistory(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No attendance records yet.")
				return nil
			}
			printRecords(records)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	now := time.Now().UTC()
	var month, year int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly report across employees (employer only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := authedClient()
			if err != nil {
				return err
			}
			records, err := api.MonthlyReport(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			summary := view.Summarize(records)
			fmt.Printf("%04d-%02d: %d records, %d complete, %d incomplete, %d break exceeded\n",
				year, month, summary.Total, summary.Complete, summary.Incomplete, summary.BreakExceeded)
			if len(records) > 0 {
				fmt.Println()
				printRecords(records)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "report month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "report year")
	return cmd
}

func printRecords(records []attendance.Attendance) {
	for _, record := range records {
		badge := view.BadgeFor(record.Status)
		line := []string{record.Date, record.UserName, badge.Label}
		if record.TotalHours != nil {
			line = append(line, fmt.Sprintf("%.2fh", *record.TotalHours))
		}
		fmt.Println(strings.Join(line, "  "))
	}
}
