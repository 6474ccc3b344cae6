package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rayaboutique242-create/raya-console/client"
	"github.com/rayaboutique242-create/raya-console/internal/config"
	"github.com/rayaboutique242-create/raya-console/oauthmodel"
	"github.com/rayaboutique242-create/raya-console/sessions"
	"github.com/rayaboutique242-create/raya-console/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const usage = `usage: console <command> [arguments]

commands:
  login -email <email> -password <password>
  logout
  me
  status
  tenants
  use <tenant id>
  get|post|patch|delete <path> [json body]
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)

	if len(args) == 0 {
		displayAppname(c.GetAppName())
		fmt.Fprint(out, usage)
		return nil
	}

	store, err := storage.Open(c, afero.NewOsFs())
	if err != nil {
		return fmt.Errorf("storage.Open: %w", err)
	}
	session, err := sessions.New(store)
	if err != nil {
		return fmt.Errorf("sessions.New: %w", err)
	}
	api, err := client.New(c, session)
	if err != nil {
		return fmt.Errorf("client.New: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return dispatch(ctx, api, args, out)
}

func dispatch(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return login(ctx, api, rest, out)
	case "logout":
		api.Logout(ctx)
		fmt.Fprintln(out, "logged out")
		return nil
	case "me":
		return printResponse(out)(api.Me(ctx))
	case "status":
		return status(api, out)
	case "tenants":
		return listTenants(ctx, api, out)
	case "use":
		return useTenant(ctx, api, rest, out)
	case "get", "post", "patch", "delete":
		return raw(ctx, api, strings.ToUpper(command), rest, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func login(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	email := flags.String("email", "", "account email")
	password := flags.String("password", os.Getenv("RAYA_PASSWORD"), "account password (or RAYA_PASSWORD)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login requires -email and -password")
	}

	if _, err := api.Login(ctx, oauthmodel.LoginRequest{Email: *email, Password: *password}); err != nil {
		return err
	}
	fmt.Fprintf(out, "logged in as %s\n", *email)
	return nil
}

func status(api *client.Client, out io.Writer) error {
	token, err := api.Session().Token()
	if err != nil {
		fmt.Fprintln(out, "not logged in")
		return nil
	}

	expiry := "unknown"
	if !token.Expiry.IsZero() {
		expiry = token.Expiry.Local().Format(time.RFC1123)
	}
	fmt.Fprintf(out, "logged in, access token expires %s (valid: %t)\n", expiry, token.Valid())
	fmt.Fprintf(out, "refresh token held: %t\n", token.RefreshToken != "")
	if tenant := api.CurrentTenant(); tenant != nil {
		fmt.Fprintf(out, "active tenant: %s (%s)\n", tenant.Name, tenant.Reference())
	}
	return nil
}

func listTenants(ctx context.Context, api *client.Client, out io.Writer) error {
	memberships, err := api.MyTenants(ctx)
	if err != nil {
		return err
	}
	current := api.Session().ActiveTenantID()
	for _, m := range memberships {
		marker := " "
		if m.Reference() == current {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-36s %-24s %s\n", marker, m.Reference(), m.Name, m.Role)
	}
	return nil
}

func useTenant(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("use requires a tenant id")
	}
	memberships, err := api.MyTenants(ctx)
	if err != nil {
		return err
	}
	for i := range memberships {
		if memberships[i].Reference() == args[0] || memberships[i].ID == args[0] {
			if err := api.SelectTenant(&memberships[i]); err != nil {
				return err
			}
			fmt.Fprintf(out, "using %s\n", memberships[i].Name)
			return nil
		}
	}
	return fmt.Errorf("no membership for tenant %q", args[0])
}

func raw(ctx context.Context, api *client.Client, method string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a path", strings.ToLower(method))
	}
	opts := client.Options{Method: method}
	if len(args) > 1 {
		if !json.Valid([]byte(args[1])) {
			return errors.New("body must be valid JSON")
		}
		opts.Body = []byte(args[1])
	}
	path := args[0]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return printResponse(out)(api.Do(ctx, path, opts))
}

func printResponse(out io.Writer) func(*client.Response, error) error {
	return func(res *client.Response, err error) error {
		if err != nil {
			return err
		}
		switch res.Kind {
		case client.KindJSON:
			var pretty strings.Builder
			encoder := json.NewEncoder(&pretty)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(res.JSON); err != nil {
				return err
			}
			fmt.Fprint(out, pretty.String())
		case client.KindText:
			fmt.Fprintln(out, res.Text)
		default:
			fmt.Fprintln(out, http.StatusText(res.StatusCode))
		}
		return nil
	}
}

func setupLogging(c config.EnvConfig) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
