package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/api"
	"github.com/gramudyogai/gramudyog-go/internal/models"
	"github.com/gramudyogai/gramudyog-go/internal/session"
	"github.com/gramudyogai/gramudyog-go/internal/skills"
)

const usage = `Available commands:
  login [phone] [password]       sign in and store the session
  register                       create an account (prompts for details)
  logout                         end the session
  whoami                         show the signed-in account
  profile [user-id]              show your profile or a public one
  jobs [search words]            list jobs
  job <id>                       show one job
  events                         list events
  courses [search words]         list Skill India and CSR courses
  notifications [unread]         list your notifications
  transcribe <file> [language]   convert a voice recording to text
  translate <language> <text>    translate text
  shell                          interactive mode
  version                        print build information`

// jobsPageSize is the number of jobs the jobs command lists.
const jobsPageSize = 20

// app executes commands against one client and session.
type app struct {
	client  *api.Client
	session *session.Manager
	store   *sessionStore
	catalog *skills.Catalog
	prompt  *prompter
	out     io.Writer
	log     *zap.Logger
}

func newApp(client *api.Client, sess *session.Manager, in io.Reader, out io.Writer, log *zap.Logger) *app {
	if log == nil {
		log = zap.NewNop()
	}
	return &app{
		client:  client,
		session: sess,
		catalog: skills.FromClient(client, log),
		prompt:  newPrompter(in, out),
		out:     out,
		log:     log,
	}
}

// run executes a single command.
func (a *app) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "", "help":
		fmt.Fprintln(a.out, usage)
		return nil
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "profile":
		return a.profile(ctx, args)
	case "jobs":
		return a.jobs(ctx, args)
	case "job":
		return a.job(ctx, args)
	case "events":
		return a.events(ctx)
	case "courses":
		return a.courses(ctx, args)
	case "notifications":
		return a.notifications(ctx, args)
	case "transcribe":
		return a.transcribe(ctx, args)
	case "translate":
		return a.translate(ctx, args)
	case "shell":
		return a.shell(ctx)
	case "version":
		fmt.Fprintf(a.out, "Build version: %s\nBuild date: %s\n", buildVersion(), buildTime())
		return nil
	}
	return fmt.Errorf("unknown command %q, try help", name)
}

func (a *app) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *app) login(ctx context.Context, args []string) error {
	phone, err := a.prompt.arg(args, 0, "Phone")
	if err != nil {
		return err
	}
	password, err := a.prompt.arg(args, 1, "Password")
	if err != nil {
		return err
	}

	tok, err := a.client.Auth.Login(ctx, phone, password)
	if err != nil {
		_, msg := api.AuthFailure(api.OpLogin, err)
		return errors.New(msg)
	}
	fmt.Fprintf(a.out, "Logged in as %s (user %d)\n", cmpName(tok.Name, phone), tok.UserID)
	return nil
}

func (a *app) register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error
	if req.Phone, err = a.prompt.ask("Phone"); err != nil {
		return err
	}
	if req.Password, err = a.prompt.ask("Password"); err != nil {
		return err
	}
	if req.ConfirmPassword, err = a.prompt.ask("Confirm password"); err != nil {
		return err
	}
	if req.Name, err = a.prompt.ask("Name"); err != nil {
		return err
	}
	userType, err := a.prompt.askDefault("Account type (individual/company/ngo/investor)", string(models.UserIndividual))
	if err != nil {
		return err
	}
	req.UserType = models.UserType(userType)
	if req.UserType != models.UserIndividual {
		if req.Organization, err = a.prompt.ask("Organization"); err != nil {
			return err
		}
	}

	tok, err := a.client.Auth.Register(ctx, req)
	if err != nil {
		_, msg := api.AuthFailure(api.OpRegister, err)
		return errors.New(msg)
	}
	fmt.Fprintf(a.out, "Registered %s (user %d)\n", cmpName(tok.Name, req.Phone), tok.UserID)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	msg, err := a.client.Auth.Logout(ctx)
	if err != nil {
		// The local session is gone either way.
		a.log.Debug("logout request failed", zap.Error(err))
		fmt.Fprintln(a.out, "Logged out locally")
		return nil
	}
	fmt.Fprintln(a.out, msg.Message)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	me, err := a.client.Auth.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(me)
}

func (a *app) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		p, err := a.client.Users.GetProfile(ctx)
		if err != nil {
			return err
		}
		return a.print(p)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := a.client.Users.GetPublicProfile(ctx, id)
	if err != nil {
		return err
	}
	return a.print(p)
}

func (a *app) jobs(ctx context.Context, args []string) error {
	limit := jobsPageSize
	f := api.JobFilter{Limit: &limit}
	if search := strings.Join(args, " "); search != "" {
		f.Search = &search
	}
	list, err := a.client.Jobs.GetJobs(ctx, f)
	if err != nil {
		return err
	}
	return a.print(list)
}

func (a *app) job(ctx context.Context, args []string) error {
	raw, err := a.prompt.arg(args, 0, "Job id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}
	j, err := a.client.Jobs.GetJob(ctx, id)
	if err != nil {
		return err
	}
	return a.print(j)
}

func (a *app) events(ctx context.Context) error {
	evs, err := a.client.Events.GetEvents(ctx, api.EventFilter{})
	if err != nil {
		return err
	}
	return a.print(evs)
}

func (a *app) courses(ctx context.Context, args []string) error {
	page, err := a.catalog.Fetch(ctx, 1, skills.DefaultPageSize, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if page.Partial() {
		fmt.Fprintln(a.out, "Some courses could not be loaded")
	}
	return a.print(struct {
		Items      []skills.Item `json:"items"`
		TotalCount int           `json:"total_count"`
	}{page.Items, page.TotalCount})
}

func (a *app) notifications(ctx context.Context, args []string) error {
	userID, err := a.session.ActorID(ctx)
	if err != nil {
		return err
	}
	q := api.NotificationQuery{UserID: userID}
	if len(args) > 0 && args[0] == "unread" {
		q.UnreadOnly = true
	}
	list, err := a.client.Notifications.List(ctx, q)
	if err != nil {
		return err
	}
	return a.print(list)
}

func (a *app) transcribe(ctx context.Context, args []string) error {
	path, err := a.prompt.arg(args, 0, "Audio file")
	if err != nil {
		return err
	}
	lang := api.SourceLanguage
	if len(args) > 1 {
		lang = args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	res, err := a.client.Stt.Transcribe(ctx, f, filepath.Base(path), lang)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, res.Text)
	return nil
}

func (a *app) translate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: translate <language> <text>")
	}
	text, err := a.client.Translate.TranslateText(ctx, strings.Join(args[1:], " "), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, text)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func cmpName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
