package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Mbii55/servio-admin-sub000/core/session"
	redisconn "github.com/Mbii55/servio-admin-sub000/integration/database/redis"
)

// loginCommand returns the login command.
func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in with admin credentials",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Admin account email",
				EnvVars: []string{"SERVIO_ADMIN_EMAIL"},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Admin account password",
				EnvVars: []string{"SERVIO_ADMIN_PASSWORD"},
			},
			&cli.BoolFlag{
				Name:  "password-stdin",
				Usage: "Read the password from stdin",
			},
		},
		Action: loginAction,
	}
}

func loginAction(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}

	email := c.String("email")
	if email == "" {
		fmt.Fprint(c.App.Writer, "Email: ")
		if email, err = readLine(c.App.Reader); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if email == "" {
		return errors.New("email required")
	}

	password := c.String("password")
	if password == "" {
		if !c.Bool("password-stdin") {
			fmt.Fprint(c.App.Writer, "Password: ")
		}
		if password, err = readLine(c.App.Reader); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if password == "" {
		return errors.New("password required")
	}

	sess, err := app.Manager().Login(c.Context, email, password)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return errors.New("login rejected: email or password is incorrect")
	case errors.Is(err, session.ErrNotAdmin):
		return fmt.Errorf("login rejected: %s is not an admin account", email)
	case err != nil:
		return err
	}

	p := newPrinter(c)
	p.Line("Signed in as %s (%s)", sess.User.FullName(), sess.User.Email)
	if p.json {
		return p.JSON(sess.User)
	}
	return nil
}

// logoutCommand returns the logout command.
func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Sign out and discard the stored credential",
		Action: logoutAction,
	}
}

func logoutAction(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}

	app.Manager().Logout(c.Context)
	newPrinter(c).Line("Signed out.")
	return nil
}

// whoamiCommand returns the whoami command.
func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show the signed-in admin account",
		Action: whoamiAction,
	}
}

func whoamiAction(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}

	sess, err := requireSession(c, app)
	if err != nil {
		return err
	}

	user := sess.User
	return newPrinter(c).Details(user, [][2]string{
		{"ID", user.ID.String()},
		{"Email", user.Email},
		{"Name", orDash(user.FullName())},
		{"Role", user.Role},
		{"Phone", orDash(user.Phone)},
	})
}

// statusCommand returns the status command.
func statusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show session and credential store state",
		Action: statusAction,
	}
}

// statusReport is the machine-readable shape of the status command.
type statusReport struct {
	State            string `json:"state"`
	Account          string `json:"account,omitempty"`
	CredentialStored bool   `json:"credential_stored"`
	CookiePresent    bool   `json:"cookie_present"`
	StoreBackend     string `json:"store_backend"`
	StoreHealth      string `json:"store_health,omitempty"`
	APIBaseURL       string `json:"api_base_url"`
	Warning          string `json:"warning,omitempty"`
}

func statusAction(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}

	// Status reports the resolved state whatever it is; only an interrupted
	// wait is an error.
	if _, err := app.Guard().Wait(c.Context); err != nil {
		return err
	}

	sess := app.Manager().Current()
	_, stored := app.Repository().Read(c.Context)

	report := statusReport{
		State:            sess.Status.String(),
		CredentialStored: stored,
		CookiePresent:    app.Repository().CookiePresent(),
		StoreBackend:     app.Config().Credentials.Backend,
		APIBaseURL:       app.Config().API.BaseURL,
	}
	if sess.User != nil {
		report.Account = sess.User.Email
	}
	if client := app.Redis(); client != nil {
		if err := redisconn.Healthcheck(client)(c.Context); err != nil {
			report.StoreHealth = "unreachable"
		} else {
			report.StoreHealth = "ok"
		}
	}
	if initErr := app.Init().Await(); initErr != nil {
		report.Warning = fmt.Sprintf("stored credential could not be validated: %v", initErr)
	}

	pairs := [][2]string{
		{"State", report.State},
		{"Account", orDash(report.Account)},
		{"Credential stored", formatBool(report.CredentialStored)},
		{"Cookie present", formatBool(report.CookiePresent)},
		{"Store backend", report.StoreBackend},
	}
	if report.StoreHealth != "" {
		pairs = append(pairs, [2]string{"Store health", report.StoreHealth})
	}
	pairs = append(pairs, [2]string{"API base URL", report.APIBaseURL})
	if report.Warning != "" {
		pairs = append(pairs, [2]string{"Warning", report.Warning})
	}

	return newPrinter(c).Details(report, pairs)
}
